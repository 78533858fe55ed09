package dto

import (
	"context"

	"github.com/flexprice/rates/internal/domain/promotioncode"
	"github.com/flexprice/rates/internal/types"
	"github.com/flexprice/rates/internal/validator"
	"github.com/shopspring/decimal"
)

type CreatePromotionCodeRequest struct {
	Code           string             `json:"code" validate:"required,max=64"`
	DateFrom       string             `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo         string             `json:"date_to" validate:"required,datetime=2006-01-02"`
	SourceDateFrom *string            `json:"source_date_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SourceDateTo   *string            `json:"source_date_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DiscountType   types.DiscountType `json:"discount_type" validate:"required"`
	Value          decimal.Decimal    `json:"value"`
}

func (r *CreatePromotionCodeRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	code, err := r.ToPromotionCode(context.Background())
	if err != nil {
		return err
	}
	return code.Validate()
}

func (r *CreatePromotionCodeRequest) ToPromotionCode(ctx context.Context) (*promotioncode.PromotionCode, error) {
	dateFrom, err := parseDate("date_from", r.DateFrom)
	if err != nil {
		return nil, err
	}
	dateTo, err := parseDate("date_to", r.DateTo)
	if err != nil {
		return nil, err
	}
	sourceFrom, err := parseOptionalDate("source_date_from", r.SourceDateFrom)
	if err != nil {
		return nil, err
	}
	sourceTo, err := parseOptionalDate("source_date_to", r.SourceDateTo)
	if err != nil {
		return nil, err
	}

	return &promotioncode.PromotionCode{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROMOTION_CODE),
		Code:           promotioncode.NormalizeCode(r.Code),
		DateFrom:       dateFrom,
		DateTo:         dateTo,
		SourceDateFrom: sourceFrom,
		SourceDateTo:   sourceTo,
		DiscountType:   r.DiscountType,
		Value:          r.Value,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}, nil
}

type PromotionCodeResponse struct {
	*promotioncode.PromotionCode
}

type ListPromotionCodesResponse = types.ListResponse[*PromotionCodeResponse]

// ValidatePromotionCodeRequest checks a code against today and an optional booking window
type ValidatePromotionCodeRequest struct {
	Code         string      `json:"code" validate:"required,max=64"`
	SourceWindow *DateWindow `json:"source_window,omitempty"`
}

func (r *ValidatePromotionCodeRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.SourceWindow != nil {
		if err := validator.ValidateRequest(r.SourceWindow); err != nil {
			return err
		}
	}
	return nil
}

type ValidatePromotionCodeResponse struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}
