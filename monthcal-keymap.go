package monthcal

import (
	"github.com/charmbracelet/bubbles/key"
)

type keymap struct {
	prevMonth key.Binding
	nextMonth key.Binding
	today     key.Binding
	openHelp  key.Binding
	closeHelp key.Binding
	quit      key.Binding
}

func newKeymap() keymap {
	k := keymap{
		prevMonth: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("h, ←", "Previous month"),
		),
		nextMonth: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("l, →", "Next month"),
		),
		today: key.NewBinding(
			key.WithKeys("t", "home"),
			key.WithHelp("t", "Today"),
		),
		openHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
		closeHelp: key.NewBinding(
			key.WithKeys("?", "esc"),
			key.WithHelp("esc", "Close help"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
	}
	k.closeHelp.SetEnabled(false)
	return k
}
