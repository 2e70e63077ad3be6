package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

const helpMD = `# Atelier

A terminal client for the portfolio backend.

## Gallery

- **←/→** move over the category filters, **enter** applies one
- **[** and **]** walk the filter history back and forward
- **r** reloads from the backend
- **i** opens the login form (anonymous) / **O** logs out (admin)

## Admin modal (after login)

- **e** opens the photo gallery modal
- **a** switches to the add-photo form, **ctrl+b** goes back
- **x** deletes the selected photo
- **esc** closes the modal

Press any key to close this help.
`

var (
	helpMu       sync.Mutex
	helpRendered map[int]string
)

// renderHelp renders the help markdown at the given wrap width. Renderer
// output is cached per width: building a glamour renderer can probe the
// terminal, which is slow and may block on some setups.
func renderHelp(width int) string {
	if width < 20 {
		width = 20
	}

	helpMu.Lock()
	defer helpMu.Unlock()
	if out, ok := helpRendered[width]; ok {
		return out
	}

	r, err := glamour.NewTermRenderer(
		// Fixed style instead of WithAutoStyle: auto-style queries the
		// terminal background and can hang under test harnesses.
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMD
	}
	out, err := r.Render(helpMD)
	if err != nil {
		return helpMD
	}
	out = strings.TrimRight(out, "\n")

	if helpRendered == nil {
		helpRendered = map[int]string{}
	}
	helpRendered[width] = out
	return out
}
