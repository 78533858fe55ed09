package season

import (
	"time"

	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
)

// Season is a recurring, year-less calendar range. A season whose start comes
// after its end (ex Dec 15 - Jan 10) wraps the year boundary.
type Season struct {
	ID                 string `db:"id" json:"id"`
	SeasonDefinitionID string `db:"season_definition_id" json:"season_definition_id"`
	Name               string `db:"name" json:"name"`
	FromMonth          int    `db:"from_month" json:"from_month"`
	FromDay            int    `db:"from_day" json:"from_day"`
	ToMonth            int    `db:"to_month" json:"to_month"`
	ToDay              int    `db:"to_day" json:"to_day"`

	// MinDays is the shortest stay bookable in this season
	MinDays int `db:"min_days" json:"min_days"`

	// ApplyDiscountByDays enables the day-count discount for stays priced in this season
	ApplyDiscountByDays bool `db:"apply_discount_by_days" json:"apply_discount_by_days"`

	types.BaseModel
}

// Definition is a named set of seasons owned by one price definition
type Definition struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Seasons     []*Season `db:"-" json:"seasons"`

	types.BaseModel
}

// Validate checks that every month/day pair is a real calendar day.
// Full year coverage is advisory and reported by Violations instead.
func (s *Season) Validate() error {
	if s.Name == "" {
		return ierr.NewError("season name is required").
			WithHint("Every season needs a name").
			Mark(ierr.ErrValidation)
	}
	if !validMonthDay(s.FromMonth, s.FromDay) || !validMonthDay(s.ToMonth, s.ToDay) {
		return ierr.NewError("invalid season range").
			WithHintf("Season %s has an invalid start or end date", s.Name).
			WithReportableDetails(map[string]any{
				"from_month": s.FromMonth,
				"from_day":   s.FromDay,
				"to_month":   s.ToMonth,
				"to_day":     s.ToDay,
			}).
			Mark(ierr.ErrValidation)
	}
	if s.MinDays < 0 {
		return ierr.NewError("min_days must not be negative").
			WithHint("Minimum days must be zero or more").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// validMonthDay accepts Feb 29 since seasons are year-less
func validMonthDay(month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= types.DaysInMonth(2024, time.Month(month))
}

// Wraps reports whether the season crosses Dec 31
func (s *Season) Wraps() bool {
	return s.FromMonth > s.ToMonth || (s.FromMonth == s.ToMonth && s.FromDay > s.ToDay)
}

func (d *Definition) Validate() error {
	if d.Name == "" {
		return ierr.NewError("season definition name is required").
			WithHint("Season definition name is required").
			Mark(ierr.ErrValidation)
	}
	for _, s := range d.Seasons {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Copy returns an unsaved clone with fresh ids, ready to seed a new configuration
func (d *Definition) Copy() *Definition {
	id := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SEASON_DEFINITION)
	return &Definition{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Seasons: lo.Map(d.Seasons, func(s *Season, _ int) *Season {
			clone := *s
			clone.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SEASON)
			clone.SeasonDefinitionID = id
			clone.BaseModel = types.BaseModel{}
			return &clone
		}),
	}
}
