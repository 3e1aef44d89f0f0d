package monthcal

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/msepp/monthcal/monthgrid"
)

// Update model state based on the incoming message.
//
// Returns the updated model (Calendar) and command that needs to be executed
// next. Note that the returned command is always the result of tea.Batch,
// meaning multiple commands may be executed as result.
//
// Provides compatibility with tea.Model.
func (m Calendar) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	var commands []tea.Cmd
	switch msg := message.(type) {
	case tea.WindowSizeMsg:
		m.state.screenWidth = msg.Width
	case tea.MouseMsg:
		if m.state.showHelp || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			break
		}
		// board is rendered at the window margin, translate to board coordinates.
		x := msg.X - styleWindow.GetMarginLeft()
		y := msg.Y - styleWindow.GetMarginTop()
		if m.board.click(x, y) {
			commands = append(commands, m.navigated())
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			m.state.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.openHelp, m.keys.closeHelp):
			m.state.showHelp = !m.state.showHelp
			m.keys.openHelp.SetEnabled(!m.state.showHelp)
			m.keys.closeHelp.SetEnabled(m.state.showHelp)
			// no navigating behind the help screen.
			m.keys.prevMonth.SetEnabled(!m.state.showHelp)
			m.keys.nextMonth.SetEnabled(!m.state.showHelp)
			m.keys.today.SetEnabled(!m.state.showHelp)
		case key.Matches(msg, m.keys.prevMonth):
			m.board.header.prev.click()
			commands = append(commands, m.navigated())
		case key.Matches(msg, m.keys.nextMonth):
			m.board.header.next.click()
			commands = append(commands, m.navigated())
		case key.Matches(msg, m.keys.today):
			m.state.today = monthgrid.FromTime(m.clock())
			m.cursor.Reset(m.state.today)
			commands = append(commands, m.navigated())
		}
	}
	var (
		cmd   tea.Cmd
		fired bool
	)
	if m.ticker, cmd, fired = m.ticker.update(message); fired {
		commands = append(commands, cmd)
		if today := monthgrid.FromTime(m.clock()); today != m.state.today {
			m.l.Debug("day changed", slog.String("from", m.state.today.String()), slog.String("to", today.String()))
			m.state.today = today
			m.board.refresh(m.cursor.First(), today)
		}
	}
	return m, tea.Batch(commands...)
}

// navigated refreshes the board after the cursor has moved. Returns command
// that updates the window title to match.
func (m Calendar) navigated() tea.Cmd {
	m.board.refresh(m.cursor.First(), m.state.today)
	m.l.Debug("month changed", slog.String("month", m.cursor.First().String()))
	return tea.SetWindowTitle(m.board.header.label)
}
