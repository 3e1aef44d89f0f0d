// Package monthgrid computes the dates shown in a month calendar and keeps
// track of the month being displayed.
//
// All values are plain dates without clock or zone. Day arithmetic goes
// through time.Time so month and year carries never need special handling.
package monthgrid

import "time"

// Date is a Gregorian calendar date. The zero value is not a valid date, use
// NewDate or FromTime.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the date for given year, month and day. Out of range values
// are normalized the way time.Date does, so NewDate(2024, 3, 0) is the last
// day of February 2024.
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the date of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) Year() int { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int { return d.day }
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// Time returns midnight of the date in UTC.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d. n may be negative.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// FirstOfMonth returns the first day of d's month.
func (d Date) FirstOfMonth() Date {
	return Date{year: d.year, month: d.month, day: 1}
}

// SameMonth reports whether d and o are in the same month of the same year.
func (d Date) SameMonth(o Date) bool {
	return d.year == o.year && d.month == o.month
}

func (d Date) String() string {
	return d.Time().Format(time.DateOnly)
}
