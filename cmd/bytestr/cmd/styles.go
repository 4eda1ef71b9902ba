package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorSuccess = lipgloss.Color("#10B981") // Emerald
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorDimmed  = lipgloss.Color("#374151") // Dark Gray
)

type styles struct {
	title      lipgloss.Style
	label      lipgloss.Style
	value      lipgloss.Style
	terminator lipgloss.Style
	stale      lipgloss.Style
	found      lipgloss.Style
	missing    lipgloss.Style
	panel      lipgloss.Style
}

// newStyles returns the palette, or unstyled text when color is off
func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{
			title:      plain,
			label:      plain.Width(12),
			value:      plain,
			terminator: plain,
			stale:      plain,
			found:      plain,
			missing:    plain,
			panel:      plain,
		}
	}

	return styles{
		title: lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true),
		label: lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(12),
		value: lipgloss.NewStyle().
			Bold(true),
		terminator: lipgloss.NewStyle().
			Foreground(colorWarning),
		stale: lipgloss.NewStyle().
			Foreground(colorDimmed),
		found: lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true),
		missing: lipgloss.NewStyle().
			Foreground(colorError),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDimmed).
			Padding(0, 1),
	}
}

func (s styles) row(label, value string) string {
	return s.label.Render(label) + " " + s.value.Render(value)
}
