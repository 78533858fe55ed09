package promotioncode

import (
	"strings"
	"time"

	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/types"
	"github.com/shopspring/decimal"
)

// PromotionCode is a code redeemable while today falls in [DateFrom, DateTo].
// When a source window is set the booking being priced must also fall inside it.
type PromotionCode struct {
	ID             string             `db:"id" json:"id"`
	Code           string             `db:"code" json:"code"`
	DateFrom       time.Time          `db:"date_from" json:"date_from"`
	DateTo         time.Time          `db:"date_to" json:"date_to"`
	SourceDateFrom *time.Time         `db:"source_date_from" json:"source_date_from,omitempty"`
	SourceDateTo   *time.Time         `db:"source_date_to" json:"source_date_to,omitempty"`
	DiscountType   types.DiscountType `db:"discount_type" json:"discount_type"`
	Value          decimal.Decimal    `db:"value" json:"value"`

	types.BaseModel
}

func (p *PromotionCode) Window() types.DateRange {
	return types.DateRange{From: p.DateFrom, To: p.DateTo}
}

// SourceWindow returns the booking window the code is restricted to, if any
func (p *PromotionCode) SourceWindow() (types.DateRange, bool) {
	if p.SourceDateFrom == nil || p.SourceDateTo == nil {
		return types.DateRange{}, false
	}
	return types.DateRange{From: *p.SourceDateFrom, To: *p.SourceDateTo}, true
}

// IsValidAt reports whether the code can be redeemed on today for a booking
// spanning source. A nil source, or a code without a source window, only
// checks today.
func (p *PromotionCode) IsValidAt(today time.Time, source *types.DateRange) bool {
	if p == nil || !p.Window().Contains(today) {
		return false
	}
	if source == nil {
		return true
	}
	window, ok := p.SourceWindow()
	if !ok {
		return true
	}
	return window.Covers(*source)
}

// Apply discounts amount, never below zero
func (p *PromotionCode) Apply(amount decimal.Decimal) decimal.Decimal {
	return p.DiscountType.Apply(amount, p.Value)
}

// NormalizeCode is the form codes are stored and looked up in
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (p *PromotionCode) Validate() error {
	if NormalizeCode(p.Code) == "" {
		return ierr.NewError("promotion code is required").
			WithHint("Promotion code is required").
			Mark(ierr.ErrValidation)
	}
	if err := p.DiscountType.Validate(); err != nil {
		return err
	}
	if p.DateTo.Before(p.DateFrom) {
		return ierr.NewError("invalid promotion code window").
			WithHint("Promotion code end date must not be before its start date").
			WithReportableDetails(map[string]any{
				"date_from": types.FormatDate(p.DateFrom),
				"date_to":   types.FormatDate(p.DateTo),
			}).
			Mark(ierr.ErrValidation)
	}
	if (p.SourceDateFrom == nil) != (p.SourceDateTo == nil) {
		return ierr.NewError("incomplete source window").
			WithHint("Source date from and to must be set together").
			Mark(ierr.ErrValidation)
	}
	if p.SourceDateFrom != nil && p.SourceDateTo.Before(*p.SourceDateFrom) {
		return ierr.NewError("invalid source window").
			WithHint("Source end date must not be before the source start date").
			Mark(ierr.ErrValidation)
	}
	if p.Value.IsNegative() {
		return ierr.NewError("promotion value must not be negative").
			WithHint("Promotion value must be zero or more").
			Mark(ierr.ErrValidation)
	}
	if p.DiscountType == types.DiscountTypePercentage && p.Value.GreaterThan(decimal.NewFromInt(100)) {
		return ierr.NewError("percentage above 100").
			WithHint("A percentage promotion cannot exceed 100").
			Mark(ierr.ErrValidation)
	}
	return nil
}
