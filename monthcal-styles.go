package monthcal

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/msepp/monthcal/monthgrid"
)

var (
	colorAccent      = lipgloss.AdaptiveColor{Light: "22", Dark: "40"}
	colorFaint       = lipgloss.AdaptiveColor{Light: "250", Dark: "240"}
	colorTodayBG     = lipgloss.AdaptiveColor{Light: "22", Dark: "40"}
	colorTodayFG     = lipgloss.AdaptiveColor{Light: "255", Dark: "16"}
	styleWindow      = lipgloss.NewStyle().Margin(1, 2)
	styleArrow       = lipgloss.NewStyle().Width(arrowWidth).Align(lipgloss.Center).Bold(true).Foreground(colorAccent)
	styleHeader      = lipgloss.NewStyle().Align(lipgloss.Center).Bold(true)
	styleWeekday     = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Right).PaddingRight(1).Foreground(colorAccent)
	styleDay         = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Right).PaddingRight(1)
	styleDayToday    = styleDay.Bold(true).Background(colorTodayBG).Foreground(colorTodayFG)
	styleDayAdjacent = styleDay.Faint(true).Foreground(colorFaint)
	styleShortHelp   = lipgloss.NewStyle().MarginTop(1)
	styleHelp        = help.Styles{
		Ellipsis:       lipgloss.NewStyle().Foreground(colorFaint),
		ShortKey:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "33"}),
		ShortDesc:      lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "238", Dark: "250"}),
		ShortSeparator: lipgloss.NewStyle().Foreground(colorFaint),
		FullKey:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "33"}),
		FullDesc:       lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "238", Dark: "250"}),
		FullSeparator:  lipgloss.NewStyle().Foreground(colorFaint),
	}
)

// cellStyle returns the style for a day cell of given category.
func cellStyle(c monthgrid.Category) lipgloss.Style {
	switch c {
	case monthgrid.CurrentMonthToday:
		return styleDayToday
	case monthgrid.AdjacentMonth:
		return styleDayAdjacent
	default:
		return styleDay
	}
}
