package monthcal

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Init performs application initialization.
//
// Starts the ticker that keeps the today highlight current and sets the
// terminal window title to the displayed month.
//
// Provides compatibility with tea.Model.
func (m Calendar) Init() tea.Cmd {
	return tea.Batch(
		m.ticker.tick(),
		tea.SetWindowTitle(m.Title()),
	)
}
