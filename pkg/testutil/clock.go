package testutil

import "time"

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }

// ClockAt returns a FixedClock at the given UTC wall time.
func ClockAt(year int, month time.Month, day, hour, min int) FixedClock {
	return FixedClock{At: time.Date(year, month, day, hour, min, 0, 0, time.UTC)}
}
