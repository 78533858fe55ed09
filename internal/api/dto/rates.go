package dto

import (
	"time"

	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/pricing"
	"github.com/flexprice/rates/internal/types"
	"github.com/flexprice/rates/internal/validator"
	"github.com/shopspring/decimal"
)

// CalculatePriceRequest asks for the price of a stay of Units units starting on Date
type CalculatePriceRequest struct {
	PriceDefinitionID string                `json:"price_definition_id" validate:"required"`
	Date              string                `json:"date" validate:"required,datetime=2006-01-02"`
	Units             int                   `json:"units" validate:"min=0"`
	Mode              types.CalculationMode `json:"mode,omitempty" validate:"omitempty,calculation_mode"`

	// PromotionCode is applied to the calculated price when it is valid today
	PromotionCode string `json:"promotion_code,omitempty" validate:"omitempty,max=64"`
	// SourceWindow is the booking window checked against the code's source window
	SourceWindow *DateWindow `json:"source_window,omitempty"`
}

func (r *CalculatePriceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if _, err := r.StartDate(); err != nil {
		return err
	}
	if r.SourceWindow != nil {
		if err := validator.ValidateRequest(r.SourceWindow); err != nil {
			return err
		}
		if r.PromotionCode == "" {
			return ierr.NewError("source window requires a promotion code").
				WithHint("Source window is only used together with a promotion code").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *CalculatePriceRequest) StartDate() (time.Time, error) {
	return parseDate("date", r.Date)
}

// CalculatePriceResponse carries the engine price and, when a promotion code
// was sent, whether it applied
type CalculatePriceResponse struct {
	PriceDefinitionID string                `json:"price_definition_id"`
	Date              string                `json:"date"`
	Units             int                   `json:"units"`
	Mode              types.CalculationMode `json:"mode"`
	Price             decimal.Decimal       `json:"price"`

	PromotionCode      string `json:"promotion_code,omitempty"`
	PromotionCodeValid *bool  `json:"promotion_code_valid,omitempty"`

	// FinalPrice is Price after the promotion code, equal to Price otherwise
	FinalPrice decimal.Decimal `json:"final_price"`
}

// CalculateMultiplePricesRequest asks for the prices of 1..Units units
type CalculateMultiplePricesRequest struct {
	PriceDefinitionID string                `json:"price_definition_id" validate:"required"`
	Date              string                `json:"date" validate:"required,datetime=2006-01-02"`
	Units             int                   `json:"units" validate:"min=0"`
	Mode              types.CalculationMode `json:"mode,omitempty" validate:"omitempty,calculation_mode"`
}

func (r *CalculateMultiplePricesRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	_, err := r.StartDate()
	return err
}

func (r *CalculateMultiplePricesRequest) StartDate() (time.Time, error) {
	return parseDate("date", r.Date)
}

type CalculateMultiplePricesResponse struct {
	PriceDefinitionID string                `json:"price_definition_id"`
	Date              string                `json:"date"`
	Mode              types.CalculationMode `json:"mode"`
	Prices            []pricing.UnitPrice   `json:"prices"`
}

// BatchQuoteRequest prices several independent stays in one call
type BatchQuoteRequest struct {
	Quotes []*CalculatePriceRequest `json:"quotes" validate:"required,min=1,max=500,dive,required"`
}

func (r *BatchQuoteRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	for i, quote := range r.Quotes {
		if err := quote.Validate(); err != nil {
			return ierr.WithError(err).
				WithReportableDetails(map[string]any{
					"index": i,
				}).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// BatchQuoteResponse holds one quote per request, in request order
type BatchQuoteResponse struct {
	Quotes []*CalculatePriceResponse `json:"quotes"`
}
