package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/tabrest/internal/domain"
)

// Table styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// Version banner styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// StatusStyle returns the style a tab status is rendered with
func StatusStyle(status domain.TabStatus) lipgloss.Style {
	color := ColorBlocked
	switch status {
	case domain.TabStatusNormal:
		color = ColorNormal
	case domain.TabStatusSuspended:
		color = ColorSuspended
	case domain.TabStatusSpecial:
		color = ColorSpecial
	case domain.TabStatusError:
		color = ColorInvalid
	}
	return lipgloss.NewStyle().Foreground(color)
}
