package domain

import "time"

// Clock supplies the current calendar date. Overdue and expiration checks
// never read the wall clock directly so that date-boundary behavior is
// testable with a fixed clock.
type Clock interface {
	Today() time.Time
}

type systemClock struct{}

func (systemClock) Today() time.Time {
	return Date(time.Now())
}

// SystemClock is the production clock, truncated to whole days in UTC.
var SystemClock Clock = systemClock{}

// Date truncates t to midnight UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b. Negative when
// b is before a.
func DaysBetween(a, b time.Time) int {
	return int(Date(b).Sub(Date(a)).Hours() / 24)
}
