// Package pprint provides terminal output styling for the kepler CLI:
// colour palette, section headers, and status lines. Styles degrade to
// plain text when stdout is not a terminal.
package pprint

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ─────────────────────────────────────────────────────────────────────────────
// Colour palette
// ─────────────────────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.Color("#8FA3F2") // Kepler blue
	ColorAccent  = lipgloss.Color("#F2C14E") // Solar amber
	ColorSuccess = lipgloss.Color("#48BB78") // Green
	ColorWarning = lipgloss.Color("#F6AD55") // Amber
	ColorError   = lipgloss.Color("#FC8181") // Red
	ColorMuted   = lipgloss.Color("#4A5568") // Grey
	ColorText    = lipgloss.Color("#E2E8F0") // Off-white
)

// ─────────────────────────────────────────────────────────────────────────────
// Styles
// ─────────────────────────────────────────────────────────────────────────────

var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleAccent  = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleText    = lipgloss.NewStyle().Foreground(ColorText)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Width(14)
)

// ─────────────────────────────────────────────────────────────────────────────
// Output helpers
// ─────────────────────────────────────────────────────────────────────────────

// Success prints a green ✓ success line.
func Success(format string, args ...any) {
	fmt.Println(StyleSuccess.Render("✓ ") + StyleText.Render(fmt.Sprintf(format, args...)))
}

// Warn prints an amber ⚠ warning line.
func Warn(format string, args ...any) {
	fmt.Println(StyleWarning.Render("⚠ ") + StyleText.Render(fmt.Sprintf(format, args...)))
}

// Error prints a red ✗ error line to stderr.
func Error(format string, args ...any) {
	fmt.Fprintln(os.Stderr, StyleError.Render("✗ ")+StyleText.Render(fmt.Sprintf(format, args...)))
}

// Info prints a dimmed info line.
func Info(format string, args ...any) {
	fmt.Println(StyleMuted.Render("  " + fmt.Sprintf(format, args...)))
}

// Header prints a section header with a full-width rule.
func Header(title string) {
	bar := strings.Repeat("─", 60)
	fmt.Println()
	fmt.Println(StylePrimary.Render(bar))
	fmt.Println(StylePrimary.Render(" ◉ " + strings.ToUpper(title)))
	fmt.Println(StylePrimary.Render(bar))
}

// KV prints a labelled key-value pair.
func KV(key, value string) {
	fmt.Println(StyleLabel.Render(key) + StyleText.Render(value))
}

// Rule prints a full-width horizontal rule.
func Rule(w int) {
	fmt.Println(StyleMuted.Render(strings.Repeat("─", w)))
}
