package season

import (
	"fmt"
	"sort"
	"time"

	"github.com/flexprice/rates/internal/types"
)

// SeasonDays is the number of stay days that fall inside one season
type SeasonDays struct {
	Season *Season
	Days   int
}

// RangeIn returns the concrete inclusive range of the occurrence that starts in year.
// Feb 29 starts on Mar 1 and Feb 29 ends on Feb 28 in non leap years.
func (s *Season) RangeIn(year int) (time.Time, time.Time) {
	start := types.StartDateInYear(year, time.Month(s.FromMonth), s.FromDay)
	endYear := year
	if s.Wraps() {
		endYear++
	}
	end := types.DateInYear(endYear, time.Month(s.ToMonth), s.ToDay)
	return start, end
}

// Contains reports whether date falls in the season, evaluated against date's own year
func (s *Season) Contains(date time.Time) bool {
	date = types.TruncateToDay(date)
	year := date.Year()
	from := types.StartDateInYear(year, time.Month(s.FromMonth), s.FromDay)
	to := types.DateInYear(year, time.Month(s.ToMonth), s.ToDay)

	if s.Wraps() {
		return !date.Before(from) || !date.After(to)
	}
	return !date.Before(from) && !date.After(to)
}

// DaysIn counts how many days of the stay [from, from+span) fall inside the season.
// Every occurrence that can touch the stay is checked, so a wrapping season
// that started the previous year still counts.
func (s *Season) DaysIn(from time.Time, span int) int {
	if span <= 0 {
		return 0
	}

	from = types.TruncateToDay(from)
	depart := from.AddDate(0, 0, span)

	total := 0
	for year := from.Year() - 1; year <= depart.Year(); year++ {
		start, end := s.RangeIn(year)
		// the season end is inclusive, the departure day is not
		end = end.AddDate(0, 0, 1)

		lower := from
		if start.After(lower) {
			lower = start
		}
		upper := depart
		if end.Before(upper) {
			upper = end
		}
		if upper.After(lower) {
			total += types.DaysBetween(lower, upper)
		}
	}
	return total
}

// SeasonFor returns the season containing date or nil when none does
func (d *Definition) SeasonFor(date time.Time) *Season {
	if d == nil {
		return nil
	}
	for _, s := range d.Seasons {
		if s.Contains(date) {
			return s
		}
	}
	return nil
}

// SeasonsDays splits the stay [from, from+span) over the seasons it touches.
// Seasons the stay does not touch are left out; the order follows the definition.
func (d *Definition) SeasonsDays(from time.Time, span int) []SeasonDays {
	if d == nil {
		return nil
	}
	result := make([]SeasonDays, 0, len(d.Seasons))
	for _, s := range d.Seasons {
		if days := s.DaysIn(from, span); days > 0 {
			result = append(result, SeasonDays{Season: s, Days: days})
		}
	}
	return result
}

// SortedByDate returns the seasons ordered by start month and day
func (d *Definition) SortedByDate() []*Season {
	sorted := make([]*Season, len(d.Seasons))
	copy(sorted, d.Seasons)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].FromMonth == sorted[j].FromMonth {
			return sorted[i].FromDay < sorted[j].FromDay
		}
		return sorted[i].FromMonth < sorted[j].FromMonth
	})
	return sorted
}

// Violations runs ValidateCoverage over the definition's seasons
func (d *Definition) Violations() []Violation {
	return ValidateCoverage(d.Seasons)
}

// ViolationCode identifies the coverage rule a season set breaks
type ViolationCode string

const (
	ViolationNoSeasons        ViolationCode = "no_seasons_defined"
	ViolationFirstSeasonStart ViolationCode = "first_season_start"
	ViolationSeasonEnd        ViolationCode = "season_end"
	ViolationLastSeasonEnd    ViolationCode = "last_season_end"
)

// Violation is one coverage problem. SeasonID is empty for problems that
// belong to the whole set.
type Violation struct {
	SeasonID      string        `json:"season_id,omitempty"`
	SeasonName    string        `json:"season_name,omitempty"`
	Code          ViolationCode `json:"code"`
	Message       string        `json:"message"`
	ExpectedMonth int           `json:"expected_month,omitempty"`
	ExpectedDay   int           `json:"expected_day,omitempty"`
}

// lastDays is the non leap month length table, Feb 29 is never a boundary
var lastDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ValidateCoverage checks that seasons cover the whole year, starting Jan 1,
// ending Dec 31, with each season ending the day before the next one starts.
func ValidateCoverage(seasons []*Season) []Violation {
	if len(seasons) == 0 {
		return []Violation{{
			Code:    ViolationNoSeasons,
			Message: "no seasons defined",
		}}
	}

	sorted := (&Definition{Seasons: seasons}).SortedByDate()
	violations := make([]Violation, 0)

	first := sorted[0]
	if first.FromMonth != 1 || first.FromDay != 1 {
		violations = append(violations, Violation{
			SeasonID:      first.ID,
			SeasonName:    first.Name,
			Code:          ViolationFirstSeasonStart,
			Message:       fmt.Sprintf("season %s must start on January 1", first.Name),
			ExpectedMonth: 1,
			ExpectedDay:   1,
		})
	}

	for i := 1; i < len(sorted); i++ {
		prev, current := sorted[i-1], sorted[i]
		month, day, ok := previousDay(current.FromMonth, current.FromDay)
		if ok && prev.ToMonth == month && prev.ToDay == day {
			continue
		}
		message := fmt.Sprintf("season %s must end on %s %d", prev.Name, time.Month(month), day)
		if !ok {
			message = fmt.Sprintf("season %s overlaps season %s", prev.Name, current.Name)
		}
		violations = append(violations, Violation{
			SeasonID:      prev.ID,
			SeasonName:    prev.Name,
			Code:          ViolationSeasonEnd,
			Message:       message,
			ExpectedMonth: month,
			ExpectedDay:   day,
		})
	}

	last := sorted[len(sorted)-1]
	if last.ToMonth != 12 || last.ToDay != 31 {
		violations = append(violations, Violation{
			SeasonID:      last.ID,
			SeasonName:    last.Name,
			Code:          ViolationLastSeasonEnd,
			Message:       fmt.Sprintf("season %s must end on December 31", last.Name),
			ExpectedMonth: 12,
			ExpectedDay:   31,
		})
	}

	return violations
}

// previousDay is the month/day before month/day. Jan 1 has no previous day.
func previousDay(month, day int) (int, int, bool) {
	if month == 1 && day == 1 {
		return 0, 0, false
	}
	if day == 1 {
		return month - 1, lastDays[month-2], true
	}
	return month, day - 1, true
}
