package dto

import (
	"context"

	"github.com/flexprice/rates/internal/domain/season"
	"github.com/flexprice/rates/internal/types"
	"github.com/flexprice/rates/internal/validator"
	"github.com/samber/lo"
)

type CreateSeasonDefinitionRequest struct {
	Name        string                `json:"name" validate:"required,max=255"`
	Description string                `json:"description,omitempty"`
	Seasons     []CreateSeasonRequest `json:"seasons" validate:"omitempty,dive"`
}

type CreateSeasonRequest struct {
	Name                string `json:"name" validate:"required,max=255"`
	FromMonth           int    `json:"from_month" validate:"required,min=1,max=12"`
	FromDay             int    `json:"from_day" validate:"required,min=1,max=31"`
	ToMonth             int    `json:"to_month" validate:"required,min=1,max=12"`
	ToDay               int    `json:"to_day" validate:"required,min=1,max=31"`
	MinDays             int    `json:"min_days" validate:"min=0"`
	ApplyDiscountByDays bool   `json:"apply_discount_by_days"`
}

func (r *CreateSeasonDefinitionRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.ToSeasonDefinition(context.Background()).Validate()
}

func (r *CreateSeasonDefinitionRequest) ToSeasonDefinition(ctx context.Context) *season.Definition {
	id := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SEASON_DEFINITION)
	baseModel := types.GetDefaultBaseModel(ctx)
	return &season.Definition{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Seasons: lo.Map(r.Seasons, func(s CreateSeasonRequest, _ int) *season.Season {
			return &season.Season{
				ID:                  types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SEASON),
				SeasonDefinitionID:  id,
				Name:                s.Name,
				FromMonth:           s.FromMonth,
				FromDay:             s.FromDay,
				ToMonth:             s.ToMonth,
				ToDay:               s.ToDay,
				MinDays:             s.MinDays,
				ApplyDiscountByDays: s.ApplyDiscountByDays,
				BaseModel:           baseModel,
			}
		}),
		BaseModel: baseModel,
	}
}

// CopyDefinitionRequest names the clone produced by a copy endpoint.
// The source name is kept when Name is empty.
type CopyDefinitionRequest struct {
	Name string `json:"name,omitempty" validate:"omitempty,max=255"`
}

func (r *CopyDefinitionRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type SeasonDefinitionResponse struct {
	*season.Definition
}

type ListSeasonDefinitionsResponse = types.ListResponse[*SeasonDefinitionResponse]

// SeasonCoverageResponse reports whether the seasons cover the whole year
// without gaps
type SeasonCoverageResponse struct {
	SeasonDefinitionID string             `json:"season_definition_id"`
	Valid              bool               `json:"valid"`
	Violations         []season.Violation `json:"violations"`
}
