package discountbyday

import (
	"sort"

	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DiscountByDay is a percentage discount for stays of at least FromDays units.
// The upper bound is the next threshold.
type DiscountByDay struct {
	ID                        string          `db:"id" json:"id"`
	DiscountByDayDefinitionID string          `db:"discount_by_day_definition_id" json:"discount_by_day_definition_id"`
	FromDays                  int             `db:"from_days" json:"from_days"`
	Discount                  decimal.Decimal `db:"discount" json:"discount"`

	types.BaseModel
}

type Definition struct {
	ID             string           `db:"id" json:"id"`
	Name           string           `db:"name" json:"name"`
	Description    string           `db:"description" json:"description"`
	DiscountsByDay []*DiscountByDay `db:"-" json:"discounts_by_day"`

	types.BaseModel
}

// Find returns the entry with the highest threshold not above units
func (d *Definition) Find(units int) *DiscountByDay {
	if d == nil {
		return nil
	}

	var found *DiscountByDay
	for _, entry := range d.DiscountsByDay {
		if entry.FromDays > units {
			continue
		}
		if found == nil || entry.FromDays > found.FromDays {
			found = entry
		}
	}
	return found
}

// DiscountFor returns the discount percentage (0-100) for units, 0 when no
// threshold applies
func (d *Definition) DiscountFor(units int) decimal.Decimal {
	if entry := d.Find(units); entry != nil {
		return entry.Discount
	}
	return decimal.Zero
}

// Thresholds returns the entries ordered by ascending FromDays
func (d *Definition) Thresholds() []*DiscountByDay {
	if d == nil {
		return nil
	}
	sorted := make([]*DiscountByDay, len(d.DiscountsByDay))
	copy(sorted, d.DiscountsByDay)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].FromDays < sorted[j].FromDays })
	return sorted
}

func (d *Definition) Validate() error {
	if d.Name == "" {
		return ierr.NewError("discount by day definition name is required").
			WithHint("Discount by day definition name is required").
			Mark(ierr.ErrValidation)
	}

	seen := make(map[int]struct{}, len(d.DiscountsByDay))
	hundred := decimal.NewFromInt(100)
	for _, entry := range d.DiscountsByDay {
		if entry.FromDays < 0 {
			return ierr.NewError("from_days must not be negative").
				WithHint("Discount thresholds start at zero days or more").
				Mark(ierr.ErrValidation)
		}
		if entry.Discount.IsNegative() || entry.Discount.GreaterThan(hundred) {
			return ierr.NewError("discount out of range").
				WithHintf("Discount for %d days must be between 0 and 100", entry.FromDays).
				WithReportableDetails(map[string]any{
					"from_days": entry.FromDays,
					"discount":  entry.Discount.String(),
				}).
				Mark(ierr.ErrValidation)
		}
		if _, ok := seen[entry.FromDays]; ok {
			return ierr.NewError("duplicate threshold").
				WithHintf("Threshold %d days is defined twice", entry.FromDays).
				Mark(ierr.ErrValidation)
		}
		seen[entry.FromDays] = struct{}{}
	}
	return nil
}

// Copy returns an unsaved clone with fresh ids
func (d *Definition) Copy() *Definition {
	id := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DISCOUNT_BY_DAY_DEFINITION)
	return &Definition{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		DiscountsByDay: lo.Map(d.DiscountsByDay, func(entry *DiscountByDay, _ int) *DiscountByDay {
			clone := *entry
			clone.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DISCOUNT_BY_DAY)
			clone.DiscountByDayDefinitionID = id
			clone.BaseModel = types.BaseModel{}
			return &clone
		}),
	}
}
