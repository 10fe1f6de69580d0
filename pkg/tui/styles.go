package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/design-estimate/pkg/components"
	"gitlab.com/tinyland/lab/design-estimate/pkg/theme"
)

// tuiStyles is the set of lipgloss styles derived from one theme.
type tuiStyles struct {
	header   lipgloss.Style
	title    lipgloss.Style
	focused  lipgloss.Style
	box      lipgloss.Style
	boxFocus lipgloss.Style
	text     lipgloss.Style
	dim      lipgloss.Style
	selected lipgloss.Style
	cursor   lipgloss.Style
	accent   lipgloss.Style
	rush     lipgloss.Style
	relaxed  lipgloss.Style
	standard lipgloss.Style
	button   lipgloss.Style
	slider   components.SliderStyle
}

func tuiNewStyles(th theme.Theme) tuiStyles {
	c := func(hex string) lipgloss.Color { return lipgloss.Color(hex) }
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c(th.Border)).
		Padding(0, 1)
	return tuiStyles{
		header:   lipgloss.NewStyle().Bold(true).Foreground(c(th.Accent)),
		title:    lipgloss.NewStyle().Bold(true).Foreground(c(th.Title)),
		focused:  lipgloss.NewStyle().Bold(true).Foreground(c(th.BorderFocus)),
		box:      box,
		boxFocus: box.BorderForeground(c(th.BorderFocus)),
		text:     lipgloss.NewStyle().Foreground(c(th.Foreground)),
		dim:      lipgloss.NewStyle().Foreground(c(th.Dim)),
		selected: lipgloss.NewStyle().Bold(true).Foreground(c(th.Selected)),
		cursor:   lipgloss.NewStyle().Foreground(c(th.Cursor)),
		accent:   lipgloss.NewStyle().Bold(true).Foreground(c(th.Accent)),
		rush:     lipgloss.NewStyle().Foreground(c(th.Rush)),
		relaxed:  lipgloss.NewStyle().Foreground(c(th.Relaxed)),
		standard: lipgloss.NewStyle().Foreground(c(th.Standard)),
		button: lipgloss.NewStyle().
			Foreground(c(th.Accent)).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(c(th.Border)).
			Padding(0, 1),
		slider: components.SliderStyle{
			TrackColor:   th.Track,
			RushColor:    th.Rush,
			RelaxedColor: th.Relaxed,
			BaseColor:    th.Standard,
			KnobColor:    th.Knob,
		},
	}
}

func tuiHelpStyles(th theme.Theme) help.Styles {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.HelpKey))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.HelpDesc))
	sep := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim))
	return help.Styles{
		Ellipsis:       sep,
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sep,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sep,
	}
}
