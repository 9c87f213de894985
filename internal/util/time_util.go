package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Day drops the time of day. Scores, snapshots and recommendations are
// keyed by calendar date.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

func Today() time.Time {
	return Day(time.Now())
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(layout, s)
}

func FormatDate(t time.Time) string {
	return t.Format(layout)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}
