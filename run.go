package monthcal

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the calendar application with given options.
func Run(options ...Option) error {
	// boot-up the bubbletea runtime with our application model. Mouse support
	// is needed for clicking the header arrows.
	prog := tea.NewProgram(New(options...), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("bubbletea.NewProgram().Run(): %w", err)
	}
	return nil
}
