package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/drills/internal/ui"
)

// Styles are the lipgloss styles of the form, derived from a ui.TUITheme.
type Styles struct {
	Panel   lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Result  lipgloss.Style
	Error   lipgloss.Style
	Dim     lipgloss.Style
}

// NewStyles builds Styles from the current ui theme.
func NewStyles() Styles {
	t := ui.GetCurrentTUITheme()
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Foreground(t.Text).
			Padding(0, 1),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Label:   lipgloss.NewStyle().Foreground(t.Text),
		Focused: lipgloss.NewStyle().Foreground(t.Accent),
		Result:  lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Dim:     lipgloss.NewStyle().Foreground(t.Dim),
	}
}
