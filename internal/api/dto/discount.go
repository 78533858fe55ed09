package dto

import (
	"context"
	"time"

	"github.com/flexprice/rates/internal/domain/discount"
	"github.com/flexprice/rates/internal/types"
	"github.com/flexprice/rates/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateDiscountRequest struct {
	DateFrom     string             `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo       string             `json:"date_to" validate:"required,datetime=2006-01-02"`
	DiscountType types.DiscountType `json:"discount_type" validate:"required"`
	Value        decimal.Decimal    `json:"value"`
}

func (r *CreateDiscountRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	d, err := r.ToDiscount(context.Background())
	if err != nil {
		return err
	}
	return d.Validate()
}

func (r *CreateDiscountRequest) ToDiscount(ctx context.Context) (*discount.Discount, error) {
	dateFrom, err := parseDate("date_from", r.DateFrom)
	if err != nil {
		return nil, err
	}
	dateTo, err := parseDate("date_to", r.DateTo)
	if err != nil {
		return nil, err
	}
	return &discount.Discount{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DISCOUNT),
		DateFrom:     dateFrom,
		DateTo:       dateTo,
		DiscountType: r.DiscountType,
		Value:        r.Value,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}, nil
}

type DiscountResponse struct {
	*discount.Discount
}

// ActiveDiscountsResponse lists the discounts active on Date
type ActiveDiscountsResponse struct {
	Date      string              `json:"date"`
	Active    bool                `json:"active"`
	Discounts []*DiscountResponse `json:"discounts"`
}

// ActiveDiscountsRequest is bound from the query string, an empty date means today
type ActiveDiscountsRequest struct {
	Date string `form:"date"`
}

func (r *ActiveDiscountsRequest) DateOr(today time.Time) (time.Time, error) {
	if r.Date == "" {
		return types.TruncateToDay(today), nil
	}
	return parseDate("date", r.Date)
}
