package motd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// starBorder frames the banner with asterisks on every side.
var starBorder = lipgloss.Border{
	Top:         "*",
	Bottom:      "*",
	Left:        "*",
	Right:       "*",
	TopLeft:     "*",
	TopRight:    "*",
	BottomLeft:  "*",
	BottomRight: "*",
}

type styles struct {
	banner lipgloss.Style
}

// newStyles binds the styles to a renderer without a terminal so that
// sessions never receive escape sequences.
func newStyles() styles {
	renderer := lipgloss.NewRenderer(io.Discard)
	return styles{
		banner: renderer.NewStyle().Border(starBorder),
	}
}
