package price

import (
	"fmt"

	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// EXTRA_UNIT is the units key of the row priced per unit beyond the tier ceiling
const EXTRA_UNIT = 0

// Price is one row of a price definition's table
type Price struct {
	ID                string `db:"id" json:"id"`
	PriceDefinitionID string `db:"price_definition_id" json:"price_definition_id"`

	// SeasonID is nil for rows of a non seasonal definition
	SeasonID *string `db:"season_id" json:"season_id,omitempty"`

	// Units is the tier key, EXTRA_UNIT for the extra unit rate
	Units int             `db:"units" json:"units"`
	Price decimal.Decimal `db:"price" json:"price"`

	AdjustOperation types.AdjustOperation `db:"adjust_operation" json:"adjust_operation"`
	AdjustAmount    decimal.Decimal       `db:"adjust_amount" json:"adjust_amount"`

	types.BaseModel
}

// Adjustment is the linear correction carried by a price row
type Adjustment struct {
	Operation types.AdjustOperation
	Amount    decimal.Decimal
}

// Apply runs the adjustment on amount
func (a Adjustment) Apply(amount decimal.Decimal) decimal.Decimal {
	return ApplyAdjustment(amount, a.Operation, a.Amount)
}

// ApplyAdjustment multiplies, adds or subtracts value. Any other operation,
// blank included, returns amount unchanged.
func ApplyAdjustment(amount decimal.Decimal, op types.AdjustOperation, value decimal.Decimal) decimal.Decimal {
	switch op {
	case types.AdjustOperationMultiply:
		return amount.Mul(value)
	case types.AdjustOperationAdd:
		return amount.Add(value)
	case types.AdjustOperationSubtract:
		return amount.Sub(value)
	default:
		return amount
	}
}

func (p *Price) Adjustment() Adjustment {
	if p == nil {
		return Adjustment{}
	}
	return Adjustment{Operation: p.AdjustOperation, Amount: p.AdjustAmount}
}

// ApplyAdjust applies the row adjustment to amount
func (p *Price) ApplyAdjust(amount decimal.Decimal) decimal.Decimal {
	return p.Adjustment().Apply(amount)
}

// AdjustLabel renders the adjustment for display, ex "+ 5.00". Rows without
// an adjustment render as an empty string.
func (p *Price) AdjustLabel() string {
	if p == nil || !IsAdjustOperation(p.AdjustOperation) || p.AdjustOperation == types.AdjustOperationNone {
		return ""
	}
	return fmt.Sprintf("%s %s", p.AdjustOperation, p.AdjustAmount.StringFixed(types.DEFAULT_FLOATING_PRECISION))
}

func (p *Price) GetSeasonID() string {
	return lo.FromPtr(p.SeasonID)
}

func (p *Price) IsExtraUnit() bool {
	return p.Units == EXTRA_UNIT
}

func IsAdjustOperation(op types.AdjustOperation) bool {
	return lo.Contains([]types.AdjustOperation{
		types.AdjustOperationNone,
		types.AdjustOperationAdd,
		types.AdjustOperationSubtract,
		types.AdjustOperationMultiply,
	}, op)
}

func (p *Price) Validate() error {
	if p.Units < 0 {
		return ierr.NewError("units must not be negative").
			WithHint("Price units must be zero (extra unit) or more").
			WithReportableDetails(map[string]any{
				"units": p.Units,
			}).
			Mark(ierr.ErrValidation)
	}
	if p.Price.IsNegative() {
		return ierr.NewError("price must not be negative").
			WithHint("Price must be zero or more").
			Mark(ierr.ErrValidation)
	}
	if !IsAdjustOperation(p.AdjustOperation) {
		return ierr.NewError("invalid adjust operation").
			WithHint("Adjust operation must be blank, +, - or *").
			WithReportableDetails(map[string]any{
				"adjust_operation": p.AdjustOperation,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
