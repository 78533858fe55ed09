package discount

import (
	"time"

	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Discount is a general discount active between DateFrom and DateTo inclusive
type Discount struct {
	ID           string             `db:"id" json:"id"`
	DateFrom     time.Time          `db:"date_from" json:"date_from"`
	DateTo       time.Time          `db:"date_to" json:"date_to"`
	DiscountType types.DiscountType `db:"discount_type" json:"discount_type"`
	Value        decimal.Decimal    `db:"value" json:"value"`

	types.BaseModel
}

func (d *Discount) Window() types.DateRange {
	return types.DateRange{From: d.DateFrom, To: d.DateTo}
}

func (d *Discount) IsActiveAt(date time.Time) bool {
	return d.Window().Contains(date)
}

// Apply discounts amount, never below zero
func (d *Discount) Apply(amount decimal.Decimal) decimal.Decimal {
	return d.DiscountType.Apply(amount, d.Value)
}

// IsActive reports whether any discount window contains date
func IsActive(discounts []*Discount, date time.Time) bool {
	return lo.ContainsBy(discounts, func(d *Discount) bool {
		return d.IsActiveAt(date)
	})
}

// ActiveAt returns the discounts whose window contains date
func ActiveAt(discounts []*Discount, date time.Time) []*Discount {
	return lo.Filter(discounts, func(d *Discount, _ int) bool {
		return d.IsActiveAt(date)
	})
}

func (d *Discount) Validate() error {
	if err := d.DiscountType.Validate(); err != nil {
		return err
	}
	if d.DateFrom.IsZero() || d.DateTo.IsZero() {
		return ierr.NewError("discount window is required").
			WithHint("Discount date from and date to are required").
			Mark(ierr.ErrValidation)
	}
	if d.DateTo.Before(d.DateFrom) {
		return ierr.NewError("invalid discount window").
			WithHint("Discount end date must not be before its start date").
			WithReportableDetails(map[string]any{
				"date_from": types.FormatDate(d.DateFrom),
				"date_to":   types.FormatDate(d.DateTo),
			}).
			Mark(ierr.ErrValidation)
	}
	if d.Value.IsNegative() {
		return ierr.NewError("discount value must not be negative").
			WithHint("Discount value must be zero or more").
			Mark(ierr.ErrValidation)
	}
	return nil
}
