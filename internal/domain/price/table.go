package price

import (
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type tableKey struct {
	seasonID string
	units    int
}

// Table indexes the price rows of one definition by (season, units).
// An empty season id addresses the rows of a non seasonal definition.
type Table struct {
	rows  []*Price
	index map[tableKey]*Price
}

func NewTable(rows []*Price) *Table {
	t := &Table{
		rows:  rows,
		index: make(map[tableKey]*Price, len(rows)),
	}
	for _, row := range rows {
		key := tableKey{seasonID: row.GetSeasonID(), units: row.Units}
		// the first row stored for a key wins
		if _, ok := t.index[key]; !ok {
			t.index[key] = row
		}
	}
	return t
}

// Rows returns every row in the table
func (t *Table) Rows() []*Price {
	if t == nil {
		return nil
	}
	return t.rows
}

// Find returns the row for (seasonID, units) or nil
func (t *Table) Find(seasonID string, units int) *Price {
	if t == nil {
		return nil
	}
	return t.index[tableKey{seasonID: seasonID, units: units}]
}

// PriceOf returns the row price, zero when the row is missing
func (t *Table) PriceOf(seasonID string, units int) decimal.Decimal {
	if row := t.Find(seasonID, units); row != nil {
		return row.Price
	}
	return decimal.Zero
}

// Lookup returns the tiered amount for units and the adjustment to apply to it.
// Up to the ceiling the row keyed by units is used. Above it the ceiling row
// is combined with (units - ceiling) extra units and carries the ceiling
// row's adjustment. Missing rows contribute zero.
func (t *Table) Lookup(seasonID string, units, ceiling int) (decimal.Decimal, Adjustment) {
	if units <= ceiling {
		row := t.Find(seasonID, units)
		return t.PriceOf(seasonID, units), row.Adjustment()
	}

	ceilingRow := t.Find(seasonID, ceiling)
	extra := t.PriceOf(seasonID, EXTRA_UNIT).Mul(decimal.NewFromInt(int64(units - ceiling)))
	return t.PriceOf(seasonID, ceiling).Add(extra), ceilingRow.Adjustment()
}

// BasicUnits returns the tier rows (units >= 1) of a season ordered by units
func (t *Table) BasicUnits(seasonID string) []*Price {
	rows := lo.Filter(t.Rows(), func(row *Price, _ int) bool {
		return row.GetSeasonID() == seasonID && !row.IsExtraUnit()
	})
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Units < rows[j].Units })
	return rows
}

// ExtraUnit returns the extra unit row of a season or nil
func (t *Table) ExtraUnit(seasonID string) *Price {
	return t.Find(seasonID, EXTRA_UNIT)
}

// SeasonIDs lists the distinct season ids present in the table, in row order
func (t *Table) SeasonIDs() []string {
	return lo.Uniq(lo.Map(t.Rows(), func(row *Price, _ int) string {
		return row.GetSeasonID()
	}))
}
