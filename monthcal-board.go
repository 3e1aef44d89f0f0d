package monthcal

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/msepp/monthcal/monthgrid"
)

const (
	// cellWidth is the width of a single day cell in columns.
	cellWidth = 4
	// arrowWidth is the width of the navigation arrows in the header.
	arrowWidth = cellWidth
	// minLabelWidth keeps the header at least as wide as the grid.
	minLabelWidth = (monthgrid.Columns - 2) * cellWidth
)

// navigation holds the actions fired by the header arrows.
type navigation struct {
	prev func()
	next func()
}

// arrow is a clickable header glyph.
type arrow struct {
	glyph  string
	action func()
}

func (a arrow) click() {
	if a.action != nil {
		a.action()
	}
}

type header struct {
	prev  arrow
	next  arrow
	label string
	// width of the label area. Set once from the widest month of the locale so
	// the arrows stay put while navigating.
	width int
}

// cell is one day in the grid. Only the text and category change when the
// displayed month changes.
type cell struct {
	text     string
	category monthgrid.Category
}

// board binds a month grid to display cells.
type board struct {
	locale   Locale
	first    monthgrid.Date
	header   header
	weekdays [monthgrid.Columns]string
	cells    []cell
}

// hitTarget identifies what was clicked on the board.
type hitTarget int

const (
	hitNone hitTarget = iota
	hitPrev
	hitNext
)

// newBoard builds the board for the month of first. nav is attached to the
// header arrows.
func newBoard(loc Locale, first, today monthgrid.Date, nav navigation) *board {
	b := &board{
		locale: loc,
		header: header{
			prev:  arrow{glyph: "<", action: nav.prev},
			next:  arrow{glyph: ">", action: nav.next},
			width: labelWidth(loc),
		},
		// weekday names don't depend on the month, only on the week start.
		weekdays: loc.Weekdays(),
		cells:    make([]cell, monthgrid.Cells),
	}
	b.refresh(first, today)
	return b
}

// labelWidth returns the width needed by the longest month label of loc.
func labelWidth(loc Locale) int {
	w := minLabelWidth
	for month := time.January; month <= time.December; month++ {
		w = max(w, lipgloss.Width(loc.MonthYear(2000, month)))
	}
	return w
}

// refresh overwrites cell contents and header for the month of first.
func (b *board) refresh(first, today monthgrid.Date) {
	b.first = first.FirstOfMonth()
	grid := monthgrid.Compute(b.first, b.locale.WeekStart())
	for i, d := range grid {
		b.cells[i].text = strconv.Itoa(d.Day())
		b.cells[i].category = monthgrid.Categorize(d, b.first, today)
	}
	b.header.label = b.locale.MonthYear(b.first.Year(), b.first.Month())
}

// target returns what is at x, y relative to the top left corner of the
// rendered board.
func (b *board) target(x, y int) hitTarget {
	if y != 0 {
		return hitNone
	}
	nextAt := arrowWidth + b.header.width
	switch {
	case x >= 0 && x < arrowWidth:
		return hitPrev
	case x >= nextAt && x < nextAt+arrowWidth:
		return hitNext
	default:
		return hitNone
	}
}

// click fires the arrow at x, y, if any. Reports whether an action was fired.
func (b *board) click(x, y int) bool {
	switch b.target(x, y) {
	case hitPrev:
		b.header.prev.click()
	case hitNext:
		b.header.next.click()
	default:
		return false
	}
	return true
}

func (b *board) render() string {
	var doc strings.Builder
	doc.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		styleArrow.Render(b.header.prev.glyph),
		styleHeader.Width(b.header.width).Render(b.header.label),
		styleArrow.Render(b.header.next.glyph),
	))
	doc.WriteString("\n")
	names := make([]string, 0, monthgrid.Columns)
	for _, name := range b.weekdays {
		names = append(names, styleWeekday.Render(name))
	}
	doc.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, names...))
	for row := range monthgrid.Rows {
		doc.WriteString("\n")
		days := make([]string, 0, monthgrid.Columns)
		for _, c := range b.cells[row*monthgrid.Columns : (row+1)*monthgrid.Columns] {
			days = append(days, cellStyle(c.category).Render(c.text))
		}
		doc.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, days...))
	}
	return doc.String()
}
