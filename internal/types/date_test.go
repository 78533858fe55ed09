package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateInYear(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  time.Time
	}{
		{
			name:  "regular date",
			year:  2024,
			month: time.June,
			day:   15,
			want:  time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "feb 29 in leap year",
			year:  2024,
			month: time.February,
			day:   29,
			want:  time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "feb 29 in non leap year is clamped",
			year:  2023,
			month: time.February,
			day:   29,
			want:  time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "day 31 in a 30 day month",
			year:  2023,
			month: time.April,
			day:   31,
			want:  time.Date(2023, time.April, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateInYear(tt.year, tt.month, tt.day))
		})
	}
}

func TestStartDateInYear(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  time.Time
	}{
		{name: "regular date", year: 2023, month: time.June, day: 15, want: time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{name: "feb 29 in leap year", year: 2024, month: time.February, day: 29, want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{name: "feb 29 in non leap year moves to mar 1", year: 2023, month: time.February, day: 29, want: time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{name: "day 31 in a 30 day month", year: 2023, month: time.April, day: 31, want: time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartDateInYear(tt.year, tt.month, tt.day))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	ist := time.FixedZone("IST", 5*60*60+30*60)

	assert.Equal(t, 10, DaysBetween(
		time.Date(2024, time.December, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 7, 0, 0, 0, 0, time.UTC),
	))
	assert.Equal(t, -1, DaysBetween(
		time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	))
	// time of day and zone are ignored
	assert.Equal(t, 1, DaysBetween(
		time.Date(2024, time.March, 1, 23, 59, 0, 0, ist),
		time.Date(2024, time.March, 2, 0, 1, 0, 0, time.UTC),
	))
}

func TestTruncateToDay(t *testing.T) {
	pst := time.FixedZone("PST", -8*60*60)
	got := TruncateToDay(time.Date(2024, time.July, 4, 22, 30, 0, 0, pst))
	assert.Equal(t, time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC), got)
}
