package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := Newf(ErrBandInvalid, "config.bands", "duplicate band name: %q", "LEO").WithResource("LEO")
	msg := err.Error()
	if !strings.Contains(msg, "ERR-BAND-001") || !strings.Contains(msg, "config.bands") {
		t.Errorf("unexpected message: %s", msg)
	}
}

func TestIsCodeAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrConfig, "config.load")

	if !IsCode(err, ErrConfig) {
		t.Error("IsCode should match the wrapped code")
	}
	if IsCode(err, ErrBandInvalid) {
		t.Error("IsCode matched the wrong code")
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause should survive errors.Is")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !IsCode(wrapped, ErrConfig) {
		t.Error("IsCode should see through fmt.Errorf wrapping")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, ErrConfig, "noop") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestUserMessage(t *testing.T) {
	err := Newf(ErrAltitudeNegative, "earth.resolve.altitude", "altitude must not be negative").
		WithAdvice("altitudes are measured above the surface in kilometers")
	msg := err.UserMessage()
	if !strings.Contains(msg, "ERR-ALT-001") || !strings.Contains(msg, "→") {
		t.Errorf("unexpected user message: %s", msg)
	}
}
