package domain

import "time"

// DateLayout is the storage format for check-in dates.
const DateLayout = "2006-01-02"

// CheckIn is one daily record. Read by the planner, never mutated by it.
type CheckIn struct {
	Date      string // DateLayout, UTC
	Done      bool
	Note      string
	CreatedAt time.Time
}

// Day parses the check-in date. Malformed dates return the zero time.
func (c CheckIn) Day() time.Time {
	t, err := time.Parse(DateLayout, c.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
