// Package style provides the colors, icons and text styles shared by the CLI and the shell.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Basil   = lipgloss.Color("#3F8F4E")
	Saffron = lipgloss.Color("#F4A300")
	Paprika = lipgloss.Color("#D93025")
	Slate   = lipgloss.Color("#667085")
	Cream   = lipgloss.Color("#FFF8E7")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Folder  = "📁"
	Recipe  = "📝"
	Bullet  = "•"
	Arrow   = "→"
)

// Styles are the text styles used when rendering listings and recipes.
type Styles struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
}

// New builds the styles for the given renderer.
func New(r *lipgloss.Renderer) Styles {
	return Styles{
		Heading: r.NewStyle().Bold(true).Foreground(Basil),
		Label:   r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(Slate),
		Success: r.NewStyle().Foreground(Basil),
	}
}
