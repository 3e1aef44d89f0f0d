package monthgrid

import (
	"testing"
	"time"
)

func TestCursor_Retreat(t *testing.T) {
	tests := []struct {
		name string
		from Date
		want Date
	}{
		{name: "march to leap february", from: NewDate(2024, time.March, 1), want: NewDate(2024, time.February, 1)},
		{name: "january to december", from: NewDate(2024, time.January, 1), want: NewDate(2023, time.December, 1)},
		{name: "mid month reference", from: NewDate(2024, time.August, 20), want: NewDate(2024, time.July, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.from)
			c.Retreat()
			if got := c.First(); got != tt.want {
				t.Errorf("Retreat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCursor_Advance(t *testing.T) {
	tests := []struct {
		name string
		from Date
		want Date
	}{
		{name: "december to january", from: NewDate(2024, time.December, 1), want: NewDate(2025, time.January, 1)},
		{name: "leap february", from: NewDate(2024, time.February, 1), want: NewDate(2024, time.March, 1)},
		{name: "common february", from: NewDate(2023, time.February, 1), want: NewDate(2023, time.March, 1)},
		{name: "thirty day month", from: NewDate(2024, time.April, 1), want: NewDate(2024, time.May, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.from)
			c.Advance()
			if got := c.First(); got != tt.want {
				t.Errorf("Advance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCursor_roundTrip(t *testing.T) {
	c := NewCursor(NewDate(1999, time.January, 1))
	for range 12 * 30 {
		start := c.First()
		c.Retreat()
		c.Advance()
		if got := c.First(); got != start {
			t.Fatalf("Retreat+Advance from %s = %s", start, got)
		}
		c.Advance()
		c.Retreat()
		if got := c.First(); got != start {
			t.Fatalf("Advance+Retreat from %s = %s", start, got)
		}
		if c.First().Day() != 1 {
			t.Fatalf("cursor not on first of month: %s", c.First())
		}
		c.Advance()
	}
}

func TestCursor_Reset(t *testing.T) {
	c := NewCursor(NewDate(2024, time.May, 1))
	c.Advance()
	c.Advance()
	c.Reset(NewDate(2024, time.May, 19))
	if got, want := c.First(), NewDate(2024, time.May, 1); got != want {
		t.Errorf("Reset() = %v, want %v", got, want)
	}
}
