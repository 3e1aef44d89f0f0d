package monthcal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// View renders the current model state.
//
// Provides compatibility with tea.Model.
func (m Calendar) View() string {
	switch {
	case m.state.quitting:
		return ""
	case m.state.showHelp:
		// help replaces the calendar, there's no room for both on small
		// terminals.
		return styleWindow.Render(m.renderHelp())
	default:
		var doc strings.Builder
		doc.WriteString(m.board.render())
		doc.WriteString("\n")
		doc.WriteString(m.renderShortHelp(m.keys.prevMonth, m.keys.nextMonth, m.keys.today, m.keys.openHelp))
		return styleWindow.Render(doc.String())
	}
}

// renderHelp renders the full help for the application.
func (m Calendar) renderHelp() string {
	h := m.help
	h.Width = m.state.screenWidth - styleWindow.GetHorizontalFrameSize()
	return h.FullHelpView([][]key.Binding{
		{m.keys.prevMonth, m.keys.nextMonth, m.keys.today},
		{m.keys.closeHelp, m.keys.quit},
	})
}

// renderShortHelp renders the one line help below the calendar.
func (m Calendar) renderShortHelp(keys ...key.Binding) string {
	h := m.help
	h.Width = m.state.screenWidth - styleWindow.GetHorizontalFrameSize()
	return styleShortHelp.Render(h.ShortHelpView(keys))
}
