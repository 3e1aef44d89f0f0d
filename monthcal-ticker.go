package monthcal

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func newTicker(interval time.Duration) ticker {
	return ticker{interval: interval}
}

// ticker periodically asks the application to re-check the current date.
type ticker struct {
	interval time.Duration
	tag      int
}

// update ticker state based on messages. Reports whether msg was a tick that
// belongs to this ticker, in which case the next tick is returned as command.
func (t ticker) update(message tea.Msg) (ticker, tea.Cmd, bool) {
	msg, ok := message.(dayTickMsg)
	if !ok {
		return t, nil, false
	}
	// If it's not the tag we expect, reject the message. This prevents more
	// than one tick chain from running.
	if msg.tag != t.tag {
		return t, nil, false
	}
	t.tag++
	return t, t.tick(), true
}

// tick schedules the next tick.
func (t ticker) tick() tea.Cmd {
	return dayTick(t.tag, t.interval)
}

func dayTick(tag int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return dayTickMsg{tag: tag}
	})
}
