package course

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// Renderer turns lesson markdown into terminal output.
type Renderer func(markdown string) (string, error)

// NewRenderer builds a markdown renderer. Styled output only appears on
// terminals that can show it; otherwise the raw markdown passes through,
// which keeps lessons pipeable.
func NewRenderer(isTTY bool, width int) Renderer {
	if !isTTY || termenv.EnvColorProfile() == termenv.Ascii {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return r.Render
}
