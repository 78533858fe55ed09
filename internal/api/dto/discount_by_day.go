package dto

import (
	"context"

	"github.com/flexprice/rates/internal/domain/discountbyday"
	"github.com/flexprice/rates/internal/types"
	"github.com/flexprice/rates/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type CreateDiscountByDayDefinitionRequest struct {
	Name           string                       `json:"name" validate:"required,max=255"`
	Description    string                       `json:"description,omitempty"`
	DiscountsByDay []CreateDiscountByDayRequest `json:"discounts_by_day" validate:"omitempty,dive"`
}

type CreateDiscountByDayRequest struct {
	FromDays int             `json:"from_days" validate:"min=0"`
	Discount decimal.Decimal `json:"discount"`
}

func (r *CreateDiscountByDayDefinitionRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.ToDiscountByDayDefinition(context.Background()).Validate()
}

func (r *CreateDiscountByDayDefinitionRequest) ToDiscountByDayDefinition(ctx context.Context) *discountbyday.Definition {
	id := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DISCOUNT_BY_DAY_DEFINITION)
	baseModel := types.GetDefaultBaseModel(ctx)
	return &discountbyday.Definition{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		DiscountsByDay: lo.Map(r.DiscountsByDay, func(d CreateDiscountByDayRequest, _ int) *discountbyday.DiscountByDay {
			return &discountbyday.DiscountByDay{
				ID:                        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DISCOUNT_BY_DAY),
				DiscountByDayDefinitionID: id,
				FromDays:                  d.FromDays,
				Discount:                  d.Discount,
				BaseModel:                 baseModel,
			}
		}),
		BaseModel: baseModel,
	}
}

type DiscountByDayDefinitionResponse struct {
	*discountbyday.Definition
}
