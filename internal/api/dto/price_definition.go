package dto

import (
	"context"

	"github.com/flexprice/rates/internal/domain/price"
	"github.com/flexprice/rates/internal/domain/pricedefinition"
	"github.com/flexprice/rates/internal/types"
	"github.com/flexprice/rates/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type CreatePriceDefinitionRequest struct {
	Name        string                    `json:"name" validate:"required,max=255"`
	Description string                    `json:"description,omitempty"`
	Type        types.PriceDefinitionType `json:"type" validate:"required"`
	BasePrice   decimal.Decimal           `json:"base_price"`
	MaxPrice    decimal.Decimal           `json:"max_price"`

	// TimeMeasurement defaults to days
	TimeMeasurement types.TimeMeasurement `json:"time_measurement,omitempty"`

	UnitsManagement                  types.UnitsManagement `json:"units_management" validate:"required"`
	UnitsManagementValue             int                   `json:"units_management_value" validate:"min=0"`
	UnitsManagementValueHoursList    string                `json:"units_management_value_hours_list,omitempty"`
	UnitsManagementValueHoursHalfDay int                   `json:"units_management_value_hours_half_day" validate:"min=0"`

	FactorDefinitionID        *string `json:"factor_definition_id,omitempty"`
	SeasonDefinitionID        *string `json:"season_definition_id,omitempty"`
	DiscountByDayDefinitionID *string `json:"discount_by_day_definition_id,omitempty"`
	ApplyDiscountByDays       bool    `json:"apply_discount_by_days"`

	DailyUsageUnitsDays  int             `json:"daily_usage_units_days" validate:"min=0"`
	DailyUsageUnitsLimit int             `json:"daily_usage_units_limit" validate:"min=0"`
	DailyUsageUnitsPrice decimal.Decimal `json:"daily_usage_units_price"`

	Prices []CreatePriceRequest `json:"prices,omitempty" validate:"omitempty,dive"`
}

// CreatePriceRequest is one row of a price table
type CreatePriceRequest struct {
	SeasonID        *string               `json:"season_id,omitempty"`
	Units           int                   `json:"units" validate:"min=0"`
	Price           decimal.Decimal       `json:"price"`
	AdjustOperation types.AdjustOperation `json:"adjust_operation,omitempty"`
	AdjustAmount    decimal.Decimal       `json:"adjust_amount"`
}

func (r *CreatePriceDefinitionRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.ToPriceDefinition(context.Background()).Validate()
}

func (r *CreatePriceDefinitionRequest) ToPriceDefinition(ctx context.Context) *pricedefinition.PriceDefinition {
	timeMeasurement := r.TimeMeasurement
	if timeMeasurement == "" {
		timeMeasurement = types.TimeMeasurementDays
	}
	return &pricedefinition.PriceDefinition{
		ID:                               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRICE_DEFINITION),
		Name:                             r.Name,
		Description:                      r.Description,
		Type:                             r.Type,
		BasePrice:                        r.BasePrice,
		MaxPrice:                         r.MaxPrice,
		TimeMeasurement:                  timeMeasurement,
		UnitsManagement:                  r.UnitsManagement,
		UnitsManagementValue:             r.UnitsManagementValue,
		UnitsManagementValueHoursList:    r.UnitsManagementValueHoursList,
		UnitsManagementValueHoursHalfDay: r.UnitsManagementValueHoursHalfDay,
		FactorDefinitionID:               emptyToNil(r.FactorDefinitionID),
		SeasonDefinitionID:               emptyToNil(r.SeasonDefinitionID),
		DiscountByDayDefinitionID:        emptyToNil(r.DiscountByDayDefinitionID),
		ApplyDiscountByDays:              r.ApplyDiscountByDays,
		DailyUsageUnitsDays:              r.DailyUsageUnitsDays,
		DailyUsageUnitsLimit:             r.DailyUsageUnitsLimit,
		DailyUsageUnitsPrice:             r.DailyUsageUnitsPrice,
		BaseModel:                        types.GetDefaultBaseModel(ctx),
	}
}

func (r *CreatePriceRequest) ToPrice(ctx context.Context, priceDefinitionID string) *price.Price {
	return &price.Price{
		ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRICE),
		PriceDefinitionID: priceDefinitionID,
		SeasonID:          emptyToNil(r.SeasonID),
		Units:             r.Units,
		Price:             r.Price,
		AdjustOperation:   r.AdjustOperation,
		AdjustAmount:      r.AdjustAmount,
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
}

// ToPrices converts the rows and validates each of them
func ToPrices(ctx context.Context, priceDefinitionID string, rows []CreatePriceRequest) ([]*price.Price, error) {
	prices := make([]*price.Price, 0, len(rows))
	for i := range rows {
		p := rows[i].ToPrice(ctx, priceDefinitionID)
		if err := p.Validate(); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, nil
}

// ReplacePricesRequest replaces the whole price table of a definition
type ReplacePricesRequest struct {
	Prices []CreatePriceRequest `json:"prices" validate:"required,dive"`
}

func (r *ReplacePricesRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type PriceDefinitionResponse struct {
	*pricedefinition.PriceDefinition
	Prices []*price.Price `json:"prices,omitempty"`
}

type ListPriceDefinitionsResponse = types.ListResponse[*PriceDefinitionResponse]

// PriceTableResponse is the display view of a price table grouped by season
type PriceTableResponse struct {
	PriceDefinitionID string                `json:"price_definition_id"`
	UnitsManagement   types.UnitsManagement `json:"units_management"`
	Seasons           []PriceTableSeason    `json:"seasons"`
}

type PriceTableSeason struct {
	SeasonID  string             `json:"season_id,omitempty"`
	Basic     []PriceRowResponse `json:"basic"`
	ExtraUnit *PriceRowResponse  `json:"extra_unit,omitempty"`
}

type PriceRowResponse struct {
	Units           int                   `json:"units"`
	Price           decimal.Decimal       `json:"price"`
	AdjustOperation types.AdjustOperation `json:"adjust_operation,omitempty"`
	AdjustAmount    decimal.Decimal       `json:"adjust_amount"`
	AdjustLabel     string                `json:"adjust_label,omitempty"`
}

func NewPriceRowResponse(p *price.Price) PriceRowResponse {
	return PriceRowResponse{
		Units:           p.Units,
		Price:           p.Price,
		AdjustOperation: p.AdjustOperation,
		AdjustAmount:    p.AdjustAmount,
		AdjustLabel:     p.AdjustLabel(),
	}
}

// NewPriceTableResponse groups the table rows by season into basic unit rows
// and the extra unit row
func NewPriceTableResponse(def *pricedefinition.PriceDefinition, table *price.Table) *PriceTableResponse {
	seasons := lo.Map(table.SeasonIDs(), func(seasonID string, _ int) PriceTableSeason {
		season := PriceTableSeason{
			SeasonID: seasonID,
			Basic:    lo.Map(table.BasicUnits(seasonID), func(p *price.Price, _ int) PriceRowResponse { return NewPriceRowResponse(p) }),
		}
		if extra := table.ExtraUnit(seasonID); extra != nil {
			season.ExtraUnit = lo.ToPtr(NewPriceRowResponse(extra))
		}
		return season
	})
	return &PriceTableResponse{
		PriceDefinitionID: def.ID,
		UnitsManagement:   def.UnitsManagement,
		Seasons:           seasons,
	}
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
