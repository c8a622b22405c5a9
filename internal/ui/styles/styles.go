package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/shotsweep/shotsweep/internal/config"
)

// Color chart: https://github.com/muesli/termenv

var (
	AccentColor = lipgloss.ANSIColor(termenv.ANSIBrightBlack)
	DimColor    = lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"}
)

// Styles are the styles of the sweep view outside of the list itself
type Styles struct {
	Status  lipgloss.Style
	Warning lipgloss.Style
	Help    lipgloss.Style
	Empty   lipgloss.Style
	Preview lipgloss.Style
}

func New(cfg config.UI) *Styles {
	return &Styles{
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Style.Selected)).
			Padding(0, 2),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Style.Warning)).
			Bold(true).
			Padding(0, 2),
		Help: lipgloss.NewStyle().
			Margin(1, 2),
		Empty: lipgloss.NewStyle().
			Foreground(AccentColor).
			Padding(1, 2),
		Preview: lipgloss.NewStyle().
			Padding(0, 2),
	}
}
