package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must stay readable on both light and dark terminal backgrounds, so
// colors are lipgloss.AdaptiveColor pairs and "faint" styling is applied only
// on dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted lipgloss.TerminalColor = ac("240", "243")

	// Filter chips: exactly one chip is "pressed" at any time.
	colorChipFg        lipgloss.TerminalColor = ac("235", "252")
	colorChipBg        lipgloss.TerminalColor = ac("252", "235")
	colorChipActiveFg  lipgloss.TerminalColor = ac("255", "235")
	colorChipActiveBg  lipgloss.TerminalColor = ac("28", "70") // the gallery accent green
	colorChipFocusedBg lipgloss.TerminalColor = ac("250", "238")

	colorSurfaceBg lipgloss.TerminalColor = ac("255", "235")
	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")

	// Admin chrome (the black edit banner of the original site).
	colorBannerBg lipgloss.TerminalColor = ac("235", "16")
	colorBannerFg lipgloss.TerminalColor = ac("255", "252")

	colorError lipgloss.TerminalColor = ac("160", "203")

	colorModalHeaderBg lipgloss.TerminalColor = ac("252", "236")
	colorModalBorder   lipgloss.TerminalColor = ac("240", "245")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which suits
// non-interactive output but can accidentally strip a TUI of color. Here only
// NO_COLOR is honored; otherwise the terminal's capabilities decide.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures background detection for terminals that
// don't reliably report theirs.
//
// Priority: ATELIER_TUI_THEME=light|dark, then ATELIER_TUI_DARKBG=true|false,
// then the common COLORFGBG "fg;bg" heuristic.
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ATELIER_TUI_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("ATELIER_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
