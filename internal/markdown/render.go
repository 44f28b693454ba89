// Package markdown renders assistant answers for the terminal.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer wraps a glamour terminal renderer with a per-message cache,
// since the chat viewport re-renders the full transcript on every frame.
type Renderer struct {
	glamour *glamour.TermRenderer
	width   int
	cache   map[int]string
}

// NewRenderer creates a renderer wrapping at the given width.
func NewRenderer(width int) (*Renderer, error) {
	gr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		glamour: gr,
		width:   width,
		cache:   map[int]string{},
	}, nil
}

// Render renders markdown content. messageIndex keys the cache; pass -1
// to bypass it. Rendering failures fall back to the raw content.
func (r *Renderer) Render(messageIndex int, content string) string {
	if messageIndex >= 0 {
		if rendered, ok := r.cache[messageIndex]; ok {
			return rendered
		}
	}

	rendered, err := r.glamour.Render(content)
	if err != nil {
		rendered = content
	}
	rendered = strings.Trim(rendered, "\n")

	if messageIndex >= 0 {
		r.cache[messageIndex] = rendered
	}
	return rendered
}

// Reset drops the cache. Call when the transcript it was keyed on is
// replaced, e.g. after switching sessions.
func (r *Renderer) Reset() {
	r.cache = map[int]string{}
}

// SetWidth updates the renderer width, recreating internals if needed.
func (r *Renderer) SetWidth(width int) error {
	if r.width == width {
		return nil
	}
	newRenderer, err := NewRenderer(width)
	if err != nil {
		return err
	}
	*r = *newRenderer
	return nil
}
