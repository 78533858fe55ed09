package factor

import (
	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Factor scales a price when the unit count falls in [From, To]
type Factor struct {
	ID                 string          `db:"id" json:"id"`
	FactorDefinitionID string          `db:"factor_definition_id" json:"factor_definition_id"`
	From               int             `db:"from_units" json:"from"`
	To                 int             `db:"to_units" json:"to"`
	Factor             decimal.Decimal `db:"factor" json:"factor"`

	types.BaseModel
}

// Definition is an ordered list of factor ranges
type Definition struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Factors     []*Factor `db:"-" json:"factors"`

	types.BaseModel
}

func (f *Factor) Contains(units int) bool {
	return f.From <= units && units <= f.To
}

// Find returns the first factor, in definition order, whose range contains units
func (d *Definition) Find(units int) *Factor {
	if d == nil {
		return nil
	}
	for _, f := range d.Factors {
		if f.Contains(units) {
			return f
		}
	}
	return nil
}

// FactorFor returns the multiplier for units. A missing definition or an
// uncovered unit count is neutral (1).
func (d *Definition) FactorFor(units int) decimal.Decimal {
	if f := d.Find(units); f != nil {
		return f.Factor
	}
	return decimal.NewFromInt(1)
}

func (d *Definition) Validate() error {
	if d.Name == "" {
		return ierr.NewError("factor definition name is required").
			WithHint("Factor definition name is required").
			Mark(ierr.ErrValidation)
	}
	for _, f := range d.Factors {
		if f.From < 0 || f.To < f.From {
			return ierr.NewError("invalid factor range").
				WithHintf("Factor range %d-%d is invalid", f.From, f.To).
				Mark(ierr.ErrValidation)
		}
		if f.Factor.IsNegative() {
			return ierr.NewError("factor must not be negative").
				WithHint("Factor must be zero or more").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// Copy returns an unsaved clone with fresh ids
func (d *Definition) Copy() *Definition {
	id := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_FACTOR_DEFINITION)
	return &Definition{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Factors: lo.Map(d.Factors, func(f *Factor, _ int) *Factor {
			clone := *f
			clone.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_FACTOR)
			clone.FactorDefinitionID = id
			clone.BaseModel = types.BaseModel{}
			return &clone
		}),
	}
}
