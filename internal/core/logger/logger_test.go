package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_FileSink(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "kepler.log")
	log, err := Init("debug", "text", logFile, false)
	if err != nil {
		t.Fatal(err)
	}

	log.Debug("hello from test", "key", "value")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file missing entry, got: %s", data)
	}
}

func TestInit_DebugOverridesLevel(t *testing.T) {
	log, err := Init("error", "text", "", true)
	if err != nil {
		t.Fatal(err)
	}
	if !log.Enabled(nil, slog.LevelDebug) {
		t.Error("--debug should force the debug level")
	}
}

func TestNop(t *testing.T) {
	// Must not panic and must accept writes.
	Nop().Info("discarded")
}
