package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"atelier-cli/internal/nav"
)

// Run starts the interactive gallery. initialLocation is the "URL" the
// session opens with (e.g. "/gallery?category=objets" from the CLI flag); it
// seeds the filter history exactly like opening the original site with a
// query parameter.
func Run(deps Deps, initialLocation string) error {
	applyColorProfilePreference()
	applyThemePreference()

	if deps.Config != nil && deps.Config.DebugLogPath != "" {
		if f, err := tea.LogToFile(deps.Config.DebugLogPath, "atelier"); err == nil {
			defer f.Close()
		}
	}

	m := newGalleryModel(deps, nav.ParseLocation(initialLocation))
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
