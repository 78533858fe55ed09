package pricedefinition

import (
	"sort"
	"strconv"
	"strings"

	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// PriceDefinition is the pricing configuration of a rentable product
type PriceDefinition struct {
	ID          string                    `db:"id" json:"id"`
	Name        string                    `db:"name" json:"name"`
	Description string                    `db:"description" json:"description"`
	Type        types.PriceDefinitionType `db:"type" json:"type"`

	// BasePrice is always added to the calculated amount
	BasePrice decimal.Decimal `db:"base_price" json:"base_price"`
	// MaxPrice caps the calculated amount, zero disables the cap
	MaxPrice decimal.Decimal `db:"max_price" json:"max_price"`

	TimeMeasurement types.TimeMeasurement `db:"time_measurement" json:"time_measurement"`

	UnitsManagement types.UnitsManagement `db:"units_management" json:"units_management"`
	// UnitsManagementValue is the tier ceiling of a detailed definition
	UnitsManagementValue int `db:"units_management_value" json:"units_management_value"`
	// UnitsManagementValueHoursList is a comma separated list of hour tiers
	UnitsManagementValueHoursList string `db:"units_management_value_hours_list" json:"units_management_value_hours_list"`
	UnitsManagementValueHoursHalfDay int `db:"units_management_value_hours_half_day" json:"units_management_value_hours_half_day"`

	FactorDefinitionID        *string `db:"factor_definition_id" json:"factor_definition_id,omitempty"`
	SeasonDefinitionID        *string `db:"season_definition_id" json:"season_definition_id,omitempty"`
	DiscountByDayDefinitionID *string `db:"discount_by_day_definition_id" json:"discount_by_day_definition_id,omitempty"`

	// ApplyDiscountByDays enables the day-count discount on non seasonal paths
	ApplyDiscountByDays bool `db:"apply_discount_by_days" json:"apply_discount_by_days"`

	// Usage allowance for transport products: stays shorter than
	// DailyUsageUnitsDays that exceed DailyUsageUnitsLimit km/miles pay
	// DailyUsageUnitsPrice per extra km/mile. Stored for the booking side,
	// the calculator does not read it.
	DailyUsageUnitsDays  int             `db:"daily_usage_units_days" json:"daily_usage_units_days"`
	DailyUsageUnitsLimit int             `db:"daily_usage_units_limit" json:"daily_usage_units_limit"`
	DailyUsageUnitsPrice decimal.Decimal `db:"daily_usage_units_price" json:"daily_usage_units_price"`

	types.BaseModel
}

func (p *PriceDefinition) IsSeason() bool {
	return p.Type == types.PriceDefinitionTypeSeason
}

func (p *PriceDefinition) IsDetailed() bool {
	return p.UnitsManagement == types.UnitsManagementDetailed
}

// HourTiers parses the hour tier list, ignoring blank and invalid entries,
// and returns the tiers sorted and deduplicated
func (p *PriceDefinition) HourTiers() []int {
	tiers := lo.FilterMap(strings.Split(p.UnitsManagementValueHoursList, ","), func(item string, _ int) (int, bool) {
		value, err := strconv.Atoi(strings.TrimSpace(item))
		if err != nil || value <= 0 {
			return 0, false
		}
		return value, true
	})
	tiers = lo.Uniq(tiers)
	sort.Ints(tiers)
	return tiers
}

func (p *PriceDefinition) Validate() error {
	if p.Name == "" {
		return ierr.NewError("price definition name is required").
			WithHint("Price definition name is required").
			Mark(ierr.ErrValidation)
	}
	if err := p.Type.Validate(); err != nil {
		return err
	}
	if err := p.UnitsManagement.Validate(); err != nil {
		return err
	}
	if err := p.TimeMeasurement.Validate(); err != nil {
		return err
	}
	if p.BasePrice.IsNegative() || p.MaxPrice.IsNegative() {
		return ierr.NewError("base and max price must not be negative").
			WithHint("Base price and max price must be zero or more").
			WithReportableDetails(map[string]any{
				"base_price": p.BasePrice.String(),
				"max_price":  p.MaxPrice.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if p.DailyUsageUnitsDays < 0 || p.DailyUsageUnitsLimit < 0 || p.DailyUsageUnitsPrice.IsNegative() {
		return ierr.NewError("daily usage allowance must not be negative").
			WithHint("Daily usage days, limit and price must be zero or more").
			WithReportableDetails(map[string]any{
				"daily_usage_units_days":  p.DailyUsageUnitsDays,
				"daily_usage_units_limit": p.DailyUsageUnitsLimit,
				"daily_usage_units_price": p.DailyUsageUnitsPrice.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if p.IsDetailed() && p.UnitsManagementValue < 1 {
		return ierr.NewError("units management value is required for detailed prices").
			WithHint("Detailed price definitions need a tier ceiling of at least one unit").
			WithReportableDetails(map[string]any{
				"units_management_value": p.UnitsManagementValue,
			}).
			Mark(ierr.ErrValidation)
	}
	if p.IsSeason() && lo.FromPtr(p.SeasonDefinitionID) == "" {
		return ierr.NewError("season definition is required for season prices").
			WithHint("Seasonal price definitions must reference a season definition").
			Mark(ierr.ErrValidation)
	}
	if p.TimeMeasurement == types.TimeMeasurementHours && len(p.HourTiers()) == 0 {
		return ierr.NewError("hour tiers are required").
			WithHint("Hourly price definitions need at least one hour tier").
			Mark(ierr.ErrValidation)
	}
	return nil
}
