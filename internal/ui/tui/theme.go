package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/formdraft/internal/domain"
)

// Theme is the palette applied to every element of the form.
type Theme struct {
	Name domain.Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Alert    lipgloss.Style
	Button   lipgloss.Style
}

// ThemeFor returns the palette for a light/dark preference.
func ThemeFor(t domain.Theme) Theme {
	if t == domain.ThemeDark {
		return darkTheme()
	}
	return lightTheme()
}

func lightTheme() Theme {
	return Theme{
		Name:     domain.ThemeLight,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("236")),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		Alert: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("160")),
		Button: lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("63")),
	}
}

func darkTheme() Theme {
	return Theme{
		Name:     domain.ThemeDark,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("141")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
		Alert: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("203")),
		Button: lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("232")).Background(lipgloss.Color("141")),
	}
}

// toggleLabel names the mode the toggle switches to.
func toggleLabel(t domain.Theme) string {
	if t == domain.ThemeLight {
		return "🌙 Dark Mode"
	}
	return "☀️ Light Mode"
}
