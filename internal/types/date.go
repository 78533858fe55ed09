package types

import (
	"time"
)

const day = 24 * time.Hour

// TruncateToDay drops the time of day and moves t to UTC
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays moves a calendar date by n days
func AddDays(t time.Time, n int) time.Time {
	return TruncateToDay(t).AddDate(0, 0, n)
}

// DaysBetween is the number of calendar days from a to b, negative when b is before a
func DaysBetween(a, b time.Time) int {
	return int(TruncateToDay(b).Sub(TruncateToDay(a)) / day)
}

// DaysInMonth returns the length of month in year
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateInYear builds the calendar date year-month-day, clamping the day to the
// month length so a recurring Feb 29 lands on Feb 28 in non leap years
func DateInYear(year int, month time.Month, day int) time.Time {
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// StartDateInYear is DateInYear for the first day of a range. A day past the
// month end rolls forward to the first of the next month, so a range starting
// on Feb 29 begins on Mar 1 in non leap years and never shares Feb 28 with
// a range ending there.
func StartDateInYear(year int, month time.Month, day int) time.Time {
	if last := DaysInMonth(year, month); day > last {
		return time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	}
	return DateInYear(year, month, day)
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// DateRange is an inclusive range of calendar days
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether date falls on or between From and To
func (r DateRange) Contains(date time.Time) bool {
	date = TruncateToDay(date)
	return !date.Before(TruncateToDay(r.From)) && !date.After(TruncateToDay(r.To))
}

// Covers reports whether other lies entirely inside r
func (r DateRange) Covers(other DateRange) bool {
	return r.Contains(other.From) && r.Contains(other.To)
}

func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}
