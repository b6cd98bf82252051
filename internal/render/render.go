// Package render draws cubes for the terminal with lipgloss.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubecipher"
)

// DefaultPalette colors the usual sticker letters. The face names used by
// cubecipher.NewSolved get the standard scheme: white Up, green Front, red
// Right, blue Back, orange Left, yellow Down.
var DefaultPalette = map[string]string{
	"W": "#ffffff", "Y": "#ffd500", "R": "#c41e3a",
	"O": "#ff5800", "G": "#009e60", "B": "#0051ba",

	"U": "#ffffff", "D": "#ffd500", "F": "#009e60", "L": "#ff5800",
}

// Renderer draws cube nets with one colored cell per facet.
type Renderer struct {
	styles map[string]lipgloss.Style
	plain  lipgloss.Style
}

// New creates a renderer. Entries in palette override DefaultPalette; the
// values are lipgloss colors such as "#ff0000" or "9".
func New(palette map[string]string) *Renderer {
	merged := make(map[string]string, len(DefaultPalette)+len(palette))
	for k, v := range DefaultPalette {
		merged[k] = v
	}
	for k, v := range palette {
		merged[k] = v
	}

	r := &Renderer{
		styles: make(map[string]lipgloss.Style, len(merged)),
		plain:  lipgloss.NewStyle(),
	}
	for sym, color := range merged {
		r.styles[sym] = lipgloss.NewStyle().
			Background(lipgloss.Color(color)).
			Foreground(lipgloss.Color("#000000"))
	}
	return r
}

func (r *Renderer) style(sym string) lipgloss.Style {
	if s, ok := r.styles[sym]; ok {
		return s
	}
	return r.plain
}

// Colors draws the color net, each cell showing its symbol.
func (r *Renderer) Colors(c *cubecipher.Cube) string {
	return r.net(c, func(color, _ string) string { return color })
}

// Payload draws the payload net, each cell on the color of its facet.
// A cube without payload draws as Colors.
func (r *Renderer) Payload(c *cubecipher.Cube) string {
	if !c.HasPayload() {
		return r.Colors(c)
	}
	return r.net(c, func(_, payload string) string { return payload })
}

func (r *Renderer) net(c *cubecipher.Cube, label func(color, payload string) string) string {
	width := 1
	for i := 0; i < cubecipher.Facets; i++ {
		if w := lipgloss.Width(label(c.Facet(i))); w > width {
			width = w
		}
	}
	cellWidth := width + 2
	indent := strings.Repeat(" ", 3*cellWidth)

	cell := func(b *strings.Builder, i int) {
		color, payload := c.Facet(i)
		text := label(color, payload)
		b.WriteString(r.style(color).
			Width(cellWidth).
			Align(lipgloss.Center).
			Render(text))
	}

	var b strings.Builder
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		for col := 0; col < 3; col++ {
			cell(&b, row*3+col)
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 12; col++ {
			cell(&b, 9+row*12+col)
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		for col := 0; col < 3; col++ {
			cell(&b, 45+row*3+col)
		}
		b.WriteString("\n")
	}
	return b.String()
}
