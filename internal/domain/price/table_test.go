package price

import (
	"testing"

	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func row(seasonID string, units int, amount string) *Price {
	p := &Price{Units: units, Price: dec(amount)}
	if seasonID != "" {
		p.SeasonID = lo.ToPtr(seasonID)
	}
	return p
}

func TestApplyAdjustment(t *testing.T) {
	tests := []struct {
		name string
		op   types.AdjustOperation
		want string
	}{
		{name: "multiply", op: types.AdjustOperationMultiply, want: "25"},
		{name: "add", op: types.AdjustOperationAdd, want: "12.5"},
		{name: "subtract", op: types.AdjustOperationSubtract, want: "7.5"},
		{name: "blank", op: types.AdjustOperationNone, want: "10"},
		{name: "unknown", op: types.AdjustOperation("/"), want: "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyAdjustment(dec("10"), tt.op, dec("2.5"))
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestLookup(t *testing.T) {
	high := row("high", 1, "50")
	high.AdjustOperation = types.AdjustOperationAdd
	high.AdjustAmount = dec("5")

	ceiling := row("", 3, "75")
	ceiling.AdjustOperation = types.AdjustOperationMultiply
	ceiling.AdjustAmount = dec("2")

	table := NewTable([]*Price{
		row("", 1, "30"),
		row("", 2, "55"),
		ceiling,
		row("", EXTRA_UNIT, "20"),
		high,
		row("", 1, "999"),
	})

	t.Run("within the ceiling", func(t *testing.T) {
		amount, adjustment := table.Lookup("", 2, 3)
		assert.True(t, dec("55").Equal(amount))
		assert.Equal(t, types.AdjustOperationNone, adjustment.Operation)
	})

	t.Run("above the ceiling combines the extra unit rate", func(t *testing.T) {
		amount, adjustment := table.Lookup("", 5, 3)
		assert.True(t, dec("115").Equal(amount), "got %s", amount)
		assert.True(t, dec("230").Equal(adjustment.Apply(amount)))
	})

	t.Run("season rows are separate", func(t *testing.T) {
		amount, adjustment := table.Lookup("high", 1, 3)
		assert.True(t, dec("50").Equal(amount))
		assert.True(t, dec("55").Equal(adjustment.Apply(amount)))
	})

	t.Run("missing rows are zero", func(t *testing.T) {
		amount, adjustment := table.Lookup("low", 2, 3)
		assert.True(t, amount.IsZero())
		assert.True(t, dec("7").Equal(adjustment.Apply(dec("7"))))

		amount, _ = table.Lookup("high", 4, 3)
		assert.True(t, amount.IsZero())
	})

	t.Run("first stored row wins", func(t *testing.T) {
		assert.True(t, dec("30").Equal(table.PriceOf("", 1)))
	})
}

func TestLookup_NilTable(t *testing.T) {
	var table *Table
	amount, adjustment := table.Lookup("", 4, 2)
	assert.True(t, amount.IsZero())
	assert.Equal(t, Adjustment{}, adjustment)
	assert.Empty(t, table.BasicUnits(""))
}

func TestBasicUnitsAndExtraUnit(t *testing.T) {
	table := NewTable([]*Price{
		row("s1", 3, "70"),
		row("s1", EXTRA_UNIT, "15"),
		row("s1", 1, "30"),
		row("s2", 1, "40"),
		row("s1", 2, "50"),
	})

	basic := table.BasicUnits("s1")
	require.Len(t, basic, 3)
	assert.Equal(t, []int{1, 2, 3}, lo.Map(basic, func(p *Price, _ int) int { return p.Units }))

	extra := table.ExtraUnit("s1")
	require.NotNil(t, extra)
	assert.True(t, dec("15").Equal(extra.Price))
	assert.Nil(t, table.ExtraUnit("s2"))

	assert.Equal(t, []string{"s1", "s2"}, table.SeasonIDs())
}

func TestAdjustLabel(t *testing.T) {
	p := row("", 1, "10")
	assert.Equal(t, "", p.AdjustLabel())

	p.AdjustOperation = types.AdjustOperationAdd
	p.AdjustAmount = dec("5")
	assert.Equal(t, "+ 5.00", p.AdjustLabel())

	p.AdjustOperation = types.AdjustOperationMultiply
	p.AdjustAmount = dec("1.1")
	assert.Equal(t, "* 1.10", p.AdjustLabel())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, row("", 1, "10").Validate())
	assert.Error(t, row("", -1, "10").Validate())
	assert.Error(t, row("", 1, "-1").Validate())

	bad := row("", 1, "10")
	bad.AdjustOperation = "/"
	assert.Error(t, bad.Validate())
}
