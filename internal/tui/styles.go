package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/cascii/cascii-terminal-decorator/internal/config"
)

// Styles holds the lipgloss styles and gradient endpoints derived from the
// configured theme.
type Styles struct {
	Status lipgloss.Style
	Accent lipgloss.Style
	Error  lipgloss.Style
	Text   lipgloss.Style

	progressStart colorful.Color
	progressEnd   colorful.Color
}

// NewStyles builds the style set from the theme section of the config.
func NewStyles(cfg *config.Config) Styles {
	start, err := colorful.Hex(cfg.Theme.ProgressStart)
	if err != nil {
		start, _ = colorful.Hex("#4F4FB7")
	}
	end, err := colorful.Hex(cfg.Theme.ProgressEnd)
	if err != nil {
		end, _ = colorful.Hex("#81A1C1")
	}

	return Styles{
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.StatusFg)),
		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Accent)).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")),
		progressStart: start,
		progressEnd:   end,
	}
}

// ProgressColor blends the gradient endpoints in Lab space at position t
// in [0,1] and returns the lipgloss color for it.
func (s Styles) ProgressColor(t float64) lipgloss.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lipgloss.Color(s.progressStart.BlendLab(s.progressEnd, t).Clamped().Hex())
}

// RGBStyle returns a foreground style for one cframe cell color.
func RGBStyle(r, g, b uint8) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r, g, b)))
}
