package dto

import (
	"context"

	"github.com/flexprice/rates/internal/domain/factor"
	"github.com/flexprice/rates/internal/types"
	"github.com/flexprice/rates/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type CreateFactorDefinitionRequest struct {
	Name        string                `json:"name" validate:"required,max=255"`
	Description string                `json:"description,omitempty"`
	Factors     []CreateFactorRequest `json:"factors" validate:"omitempty,dive"`
}

type CreateFactorRequest struct {
	From   int             `json:"from" validate:"min=0"`
	To     int             `json:"to" validate:"min=0"`
	Factor decimal.Decimal `json:"factor" validate:"required"`
}

func (r *CreateFactorDefinitionRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.ToFactorDefinition(context.Background()).Validate()
}

// ToFactorDefinition keeps the request order, which is the lookup order
func (r *CreateFactorDefinitionRequest) ToFactorDefinition(ctx context.Context) *factor.Definition {
	id := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_FACTOR_DEFINITION)
	baseModel := types.GetDefaultBaseModel(ctx)
	return &factor.Definition{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Factors: lo.Map(r.Factors, func(f CreateFactorRequest, _ int) *factor.Factor {
			return &factor.Factor{
				ID:                 types.GenerateUUIDWithPrefix(types.UUID_PREFIX_FACTOR),
				FactorDefinitionID: id,
				From:               f.From,
				To:                 f.To,
				Factor:             f.Factor,
				BaseModel:          baseModel,
			}
		}),
		BaseModel: baseModel,
	}
}

type FactorDefinitionResponse struct {
	*factor.Definition
}
