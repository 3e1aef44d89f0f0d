// Package monthcal contains implementation for a bubbletea application showing
// an interactive month calendar: a header with the displayed month and arrows
// to move between months, a row of weekday names and a six week grid of days.
//
// New returns the application model that is ready to be passed into a new
// bubbletea program.
package monthcal

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/msepp/monthcal/locale"
	"github.com/msepp/monthcal/monthgrid"
)

// Clock returns the current time. Only the date part is used.
type Clock func() time.Time

// Locale provides the week-start convention and localized strings.
// *locale.Locale implements it.
type Locale interface {
	// WeekStart returns the day shown in the first grid column.
	WeekStart() time.Weekday
	// MonthYear returns the header label for given month.
	MonthYear(year int, month time.Month) string
	// Weekdays returns the short weekday names in column order, starting with
	// WeekStart.
	Weekdays() [7]string
}

// Option defines a function that configures the application. Use with New.
type Option func(m *Calendar)

// UseLogger sets the logger for application. If nil, a logger based on
// slog.DiscardHandler is used as default.
func UseLogger(l *slog.Logger) Option {
	return func(m *Calendar) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		m.l = l
	}
}

// UseClock sets the source of the current date. Defaults to time.Now.
func UseClock(c Clock) Option {
	return func(m *Calendar) {
		if c != nil {
			m.clock = c
		}
	}
}

// UseLocale sets the locale. Defaults to locale.Default.
func UseLocale(l Locale) Option {
	return func(m *Calendar) {
		if l != nil {
			m.locale = l
		}
	}
}

// UseStartDate sets the month shown first. Defaults to the current month.
func UseStartDate(d monthgrid.Date) Option {
	return func(m *Calendar) {
		m.start = &d
	}
}

// UseTickInterval sets how often the current date is checked so the
// highlight follows midnight. Non-positive values keep the default.
func UseTickInterval(d time.Duration) Option {
	return func(m *Calendar) {
		if d > 0 {
			m.ticker.interval = d
		}
	}
}

// New returns an initialized Calendar model that can be passed into a
// bubbletea program.
//
// To use the returned model, call for example tea.NewProgram(model).Run()
func New(options ...Option) Calendar {
	h := help.New()
	h.Styles = styleHelp

	m := Calendar{
		l:      slog.New(slog.DiscardHandler),
		clock:  time.Now,
		locale: locale.MustNew(locale.Default),
		help:   h,
		keys:   newKeymap(),
		ticker: newTicker(time.Minute),
	}
	// apply options to customize the application.
	for _, opt := range options {
		opt(&m)
	}
	m.state.today = monthgrid.FromTime(m.clock())
	start := m.state.today
	if m.start != nil {
		start = *m.start
	}
	m.cursor = monthgrid.NewCursor(start)
	// the arrows get the cursor transitions directly, the board only needs to
	// be told to refresh afterwards.
	m.board = newBoard(m.locale, m.cursor.First(), m.state.today, navigation{
		prev: m.cursor.Retreat,
		next: m.cursor.Advance,
	})
	return m
}

type state struct {
	screenWidth int
	today       monthgrid.Date
	showHelp    bool
	quitting    bool
}

// Calendar is the calendar application model. Keeps track of the whole
// application state and implements tea.Model.
type Calendar struct {
	l      *slog.Logger
	clock  Clock
	locale Locale
	start  *monthgrid.Date
	cursor *monthgrid.Cursor
	board  *board
	keys   keymap
	state  state
	help   help.Model
	ticker ticker
}

// Displayed returns the first day of the displayed month.
func (m Calendar) Displayed() monthgrid.Date {
	return m.cursor.First()
}

// Title returns the header text of the displayed month.
func (m Calendar) Title() string {
	return m.board.header.label
}
