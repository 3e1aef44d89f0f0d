package monthgrid

// Cursor holds the displayed month as its first day.
type Cursor struct {
	first Date
}

// NewCursor returns a cursor at the month of ref.
func NewCursor(ref Date) *Cursor {
	return &Cursor{first: ref.FirstOfMonth()}
}

// First returns the first day of the displayed month.
func (c *Cursor) First() Date {
	return c.first
}

// Retreat moves the cursor to the previous month.
func (c *Cursor) Retreat() {
	c.first = c.first.AddDays(-1).FirstOfMonth()
}

// Advance moves the cursor to the next month.
func (c *Cursor) Advance() {
	c.first = c.first.AddDays(DaysIn(c.first.Year(), c.first.Month()))
}

// Reset moves the cursor to the month of ref.
func (c *Cursor) Reset(ref Date) {
	c.first = ref.FirstOfMonth()
}
