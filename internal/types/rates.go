package types

import (
	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// PriceDefinitionType tells whether prices vary by season
type PriceDefinitionType string

const (
	PriceDefinitionTypeSeason   PriceDefinitionType = "season"
	PriceDefinitionTypeNoSeason PriceDefinitionType = "no_season"
)

func (t PriceDefinitionType) Validate() error {
	allowed := []PriceDefinitionType{
		PriceDefinitionTypeSeason,
		PriceDefinitionTypeNoSeason,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid price definition type").
			WithHint("Invalid price definition type").
			WithReportableDetails(map[string]any{
				"type":          t,
				"allowed_types": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// UnitsManagement is unitary (one price per unit) or detailed (a price per
// unit count up to a ceiling plus an extra unit rate)
type UnitsManagement string

const (
	UnitsManagementUnitary  UnitsManagement = "unitary"
	UnitsManagementDetailed UnitsManagement = "detailed"
)

func (u UnitsManagement) Validate() error {
	allowed := []UnitsManagement{
		UnitsManagementUnitary,
		UnitsManagementDetailed,
	}
	if !lo.Contains(allowed, u) {
		return ierr.NewError("invalid units management").
			WithHint("Invalid units management").
			WithReportableDetails(map[string]any{
				"units_management": u,
				"allowed_values":   allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// TimeMeasurement is the unit a rental is counted in
type TimeMeasurement string

const (
	TimeMeasurementDays  TimeMeasurement = "days"
	TimeMeasurementHours TimeMeasurement = "hours"
)

func (m TimeMeasurement) Validate() error {
	allowed := []TimeMeasurement{
		TimeMeasurementDays,
		TimeMeasurementHours,
	}
	if !lo.Contains(allowed, m) {
		return ierr.NewError("invalid time measurement").
			WithHint("Time measurement must be days or hours").
			WithReportableDetails(map[string]any{
				"time_measurement": m,
				"allowed_values":   allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CalculationMode selects how a seasonal stay is priced
type CalculationMode string

const (
	// CalculationModeFirstSeasonDay prices the whole stay with the season of the first day
	CalculationModeFirstSeasonDay CalculationMode = "first_season_day"
	// CalculationModeSeasonDaysAverage splits the stay over every season it touches
	CalculationModeSeasonDaysAverage CalculationMode = "season_days_average"
)

func (m CalculationMode) Validate() error {
	allowed := []CalculationMode{
		CalculationModeFirstSeasonDay,
		CalculationModeSeasonDaysAverage,
	}
	if !lo.Contains(allowed, m) {
		return ierr.NewError("invalid calculation mode").
			WithHint("Invalid calculation mode").
			WithReportableDetails(map[string]any{
				"mode":           m,
				"allowed_values": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// AdjustOperation is the linear adjustment applied to a looked up price.
// Anything other than +, - or * leaves the amount untouched.
type AdjustOperation string

const (
	AdjustOperationNone     AdjustOperation = ""
	AdjustOperationAdd      AdjustOperation = "+"
	AdjustOperationSubtract AdjustOperation = "-"
	AdjustOperationMultiply AdjustOperation = "*"
)

// DiscountType is how a promotion code or discount window reduces an amount
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeAmount     DiscountType = "amount"
)

func (d DiscountType) Validate() error {
	allowed := []DiscountType{
		DiscountTypePercentage,
		DiscountTypeAmount,
	}
	if !lo.Contains(allowed, d) {
		return ierr.NewError("invalid discount type").
			WithHint("Discount type must be percentage or amount").
			WithReportableDetails(map[string]any{
				"discount_type":  d,
				"allowed_values": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Apply reduces amount by value, a percentage (0-100) or a fixed amount.
// The result never goes below zero.
func (d DiscountType) Apply(amount, value decimal.Decimal) decimal.Decimal {
	var discounted decimal.Decimal
	switch d {
	case DiscountTypePercentage:
		discounted = amount.Sub(amount.Mul(value).Div(decimal.NewFromInt(100)))
	case DiscountTypeAmount:
		discounted = amount.Sub(value)
	default:
		return amount
	}
	if discounted.IsNegative() {
		return decimal.Zero
	}
	return discounted.Round(DEFAULT_FLOATING_PRECISION)
}

const (
	// DEFAULT_FLOATING_PRECISION is the number of decimals every rate amount is rounded to
	DEFAULT_FLOATING_PRECISION = 2
)
