package monthgrid

import "time"

const (
	// Rows is the number of week rows in a grid.
	Rows = 6
	// Columns is the number of days in a grid row.
	Columns = 7
	// Cells is the total number of dates in a grid.
	Cells = Rows * Columns
)

// Grid holds the dates of a month calendar in display order, row by row.
type Grid [Cells]Date

// Category classifies a grid date for display.
type Category int

const (
	// AdjacentMonth is a date of the previous or next month.
	AdjacentMonth Category = iota
	// CurrentMonth is a date of the displayed month.
	CurrentMonth
	// CurrentMonthToday is today, when today is in the displayed month.
	CurrentMonthToday
)

func (c Category) String() string {
	switch c {
	case AdjacentMonth:
		return "adjacent"
	case CurrentMonth:
		return "current"
	case CurrentMonthToday:
		return "today"
	default:
		return "unknown"
	}
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	// day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekdayOfFirst returns the column of first when weeks start on weekStart.
func WeekdayOfFirst(first Date, weekStart time.Weekday) int {
	return (int(first.Weekday()) - int(weekStart) + Columns) % Columns
}

// Compute returns the grid for the month of first. The month's first day lands
// in the column given by WeekdayOfFirst, the cells before and after it are
// filled with consecutive dates from the adjacent months.
func Compute(first Date, weekStart time.Weekday) Grid {
	first = first.FirstOfMonth()
	shift := WeekdayOfFirst(first, weekStart)
	var g Grid
	for i := range g {
		g[i] = first.AddDays(i - shift)
	}
	return g
}

// Categorize returns the display category for d when the month of displayed
// is shown and the current date is today.
func Categorize(d, displayed, today Date) Category {
	switch {
	case !d.SameMonth(displayed):
		return AdjacentMonth
	case d == today:
		return CurrentMonthToday
	default:
		return CurrentMonth
	}
}
