package pricing

import (
	"time"

	"github.com/flexprice/rates/internal/domain/season"
	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/types"
	"github.com/shopspring/decimal"
)

// UnitPrice is the price of a stay of Units units
type UnitPrice struct {
	Units int             `json:"units"`
	Price decimal.Decimal `json:"price"`
}

// Calculator prices stays against a Snapshot. It performs no I/O and is
// safe for concurrent use.
type Calculator struct {
	snapshot *Snapshot
}

func NewCalculator(snapshot *Snapshot) (*Calculator, error) {
	if snapshot == nil || snapshot.Definition == nil {
		return nil, ierr.NewError("price definition is required").
			WithHint("A price definition is required to calculate prices").
			Mark(ierr.ErrValidation)
	}
	return &Calculator{snapshot: snapshot}, nil
}

// CalculatePrice prices a stay of units starting on date
func (c *Calculator) CalculatePrice(date time.Time, units int, mode types.CalculationMode) decimal.Decimal {
	if units < 0 {
		units = 0
	}
	date = types.TruncateToDay(date)
	mode = c.EffectiveMode(mode)

	var amount decimal.Decimal
	switch {
	case c.definitionIsSeason() && c.snapshot.Definition.IsDetailed():
		amount = c.seasonDetailed(date, units, mode)
	case c.definitionIsSeason():
		amount = c.seasonUnitary(date, units, mode)
	case c.snapshot.Definition.IsDetailed():
		amount = c.noSeasonDetailed(units)
	default:
		amount = c.noSeasonUnitary(units)
	}

	return amount.Round(types.DEFAULT_FLOATING_PRECISION)
}

// CalculateMultiplePrices prices stays of 1..units units. Unitary definitions
// scale the one unit price linearly, detailed definitions price every count.
func (c *Calculator) CalculateMultiplePrices(date time.Time, units int, mode types.CalculationMode) []UnitPrice {
	if units < 1 {
		return []UnitPrice{}
	}

	result := make([]UnitPrice, 0, units)
	if !c.snapshot.Definition.IsDetailed() {
		unitary := c.CalculatePrice(date, 1, mode)
		for i := 1; i <= units; i++ {
			result = append(result, UnitPrice{
				Units: i,
				Price: unitary.Mul(decimal.NewFromInt(int64(i))).Round(types.DEFAULT_FLOATING_PRECISION),
			})
		}
		return result
	}

	for i := 1; i <= units; i++ {
		result = append(result, UnitPrice{Units: i, Price: c.CalculatePrice(date, i, mode)})
	}
	return result
}

// EffectiveMode is the calculation mode CalculatePrice applies for mode.
// Unknown modes and hourly definitions price by the first season day.
func (c *Calculator) EffectiveMode(mode types.CalculationMode) types.CalculationMode {
	// hours never span more than the start day's season
	if c.snapshot.Definition.TimeMeasurement == types.TimeMeasurementHours {
		return types.CalculationModeFirstSeasonDay
	}
	if mode.Validate() != nil {
		return types.CalculationModeFirstSeasonDay
	}
	return mode
}

func (c *Calculator) definitionIsSeason() bool {
	return c.snapshot.Definition.IsSeason()
}

func (c *Calculator) ceiling() int {
	return c.snapshot.Definition.UnitsManagementValue
}

// applyDefinition scales by the unit factor, adds the base price and caps at
// the max price when one is set
func (c *Calculator) applyDefinition(amount decimal.Decimal, units int) decimal.Decimal {
	definition := c.snapshot.Definition

	total := amount.Mul(c.snapshot.Factors.FactorFor(units)).Add(definition.BasePrice)
	if definition.MaxPrice.IsPositive() {
		total = decimal.Min(total, definition.MaxPrice)
	}
	return total
}

// applyDiscountByDays takes the day-count discount for units off amount
func (c *Calculator) applyDiscountByDays(amount decimal.Decimal, units int) decimal.Decimal {
	discount := c.snapshot.DiscountsByDay.DiscountFor(units)
	if !discount.IsPositive() {
		return amount
	}
	hundred := decimal.NewFromInt(100)
	return amount.Mul(hundred.Sub(discount).Div(hundred)).Round(types.DEFAULT_FLOATING_PRECISION)
}

func (c *Calculator) noSeasonUnitary(units int) decimal.Decimal {
	return c.unitaryPrice("", units, units, c.snapshot.Definition.ApplyDiscountByDays)
}

func (c *Calculator) noSeasonDetailed(units int) decimal.Decimal {
	if units == 0 {
		return c.applyDefinition(decimal.Zero, units)
	}

	amount, adjustment := c.snapshot.Prices.Lookup("", units, c.ceiling())
	amount = adjustment.Apply(amount)
	if c.snapshot.Definition.ApplyDiscountByDays {
		amount = c.applyDiscountByDays(amount, units)
	}
	return c.applyDefinition(amount, units)
}

func (c *Calculator) seasonUnitary(date time.Time, units int, mode types.CalculationMode) decimal.Decimal {
	if mode == types.CalculationModeSeasonDaysAverage {
		chunks := c.snapshot.Seasons.SeasonsDays(date, units)
		if len(chunks) == 0 {
			return c.applyDefinition(decimal.Zero, units)
		}

		total := decimal.Zero
		for _, chunk := range chunks {
			total = total.Add(c.unitaryPrice(chunk.Season.ID, chunk.Days, units, chunk.Season.ApplyDiscountByDays))
		}
		return total
	}

	s := c.snapshot.Seasons.SeasonFor(date)
	if s == nil {
		return c.applyDefinition(decimal.Zero, units)
	}
	return c.unitaryPrice(s.ID, units, units, s.ApplyDiscountByDays)
}

// unitaryPrice prices days units of a season (or of no season when seasonID
// is empty). The discount threshold is looked up with the stay's total units.
func (c *Calculator) unitaryPrice(seasonID string, days, totalUnits int, discountByDays bool) decimal.Decimal {
	row := c.snapshot.Prices.Find(seasonID, 1)
	if row == nil {
		return c.applyDefinition(decimal.Zero, days)
	}

	amount := row.ApplyAdjust(row.Price.Mul(decimal.NewFromInt(int64(days))))
	if discountByDays {
		amount = c.applyDiscountByDays(amount, totalUnits)
	}
	return c.applyDefinition(amount, days)
}

func (c *Calculator) seasonDetailed(date time.Time, units int, mode types.CalculationMode) decimal.Decimal {
	if mode == types.CalculationModeSeasonDaysAverage {
		chunks := c.snapshot.Seasons.SeasonsDays(date, units)
		if len(chunks) == 0 {
			return c.applyDefinition(decimal.Zero, units)
		}

		total := decimal.Zero
		unitsDecimal := decimal.NewFromInt(int64(units))
		for _, chunk := range chunks {
			seasonPrice := c.detailedPrice(chunk.Season, units)
			total = total.Add(seasonPrice.Div(unitsDecimal).Mul(decimal.NewFromInt(int64(chunk.Days))))
		}
		return total
	}

	s := c.snapshot.Seasons.SeasonFor(date)
	if s == nil {
		return c.applyDefinition(decimal.Zero, units)
	}
	return c.detailedPrice(s, units)
}

// detailedPrice is the tiered price of units in season s, discounted after
// the definition is applied
func (c *Calculator) detailedPrice(s *season.Season, units int) decimal.Decimal {
	if units == 0 {
		return c.applyDefinition(decimal.Zero, units)
	}

	amount, adjustment := c.snapshot.Prices.Lookup(s.ID, units, c.ceiling())
	amount = c.applyDefinition(adjustment.Apply(amount), units)
	if s.ApplyDiscountByDays {
		amount = c.applyDiscountByDays(amount, units)
	}
	return amount
}
