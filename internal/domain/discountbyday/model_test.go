package discountbyday

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefinition() *Definition {
	return &Definition{
		Name: "general",
		DiscountsByDay: []*DiscountByDay{
			{ID: "d14", FromDays: 14, Discount: decimal.NewFromInt(15)},
			{ID: "d7", FromDays: 7, Discount: decimal.NewFromInt(10)},
			{ID: "d30", FromDays: 30, Discount: decimal.NewFromInt(25)},
		},
	}
}

func TestDiscountFor(t *testing.T) {
	definition := newDefinition()

	tests := []struct {
		units int
		want  int64
	}{
		{units: 0, want: 0},
		{units: 6, want: 0},
		{units: 7, want: 10},
		{units: 13, want: 10},
		{units: 14, want: 15},
		{units: 29, want: 15},
		{units: 30, want: 25},
		{units: 365, want: 25},
	}

	for _, tt := range tests {
		got := definition.DiscountFor(tt.units)
		assert.True(t, decimal.NewFromInt(tt.want).Equal(got), "units %d: got %s", tt.units, got)
	}
}

func TestDiscountFor_Monotonic(t *testing.T) {
	definition := newDefinition()
	previous := decimal.Zero
	for units := 0; units <= 60; units++ {
		current := definition.DiscountFor(units)
		assert.False(t, current.LessThan(previous), "discount decreased at %d units", units)
		previous = current
	}
}

func TestDiscountFor_NoDefinition(t *testing.T) {
	var definition *Definition
	assert.True(t, decimal.Zero.Equal(definition.DiscountFor(10)))
	assert.Nil(t, definition.Thresholds())
}

func TestThresholds(t *testing.T) {
	thresholds := newDefinition().Thresholds()
	require.Len(t, thresholds, 3)
	assert.Equal(t, []int{7, 14, 30}, []int{thresholds[0].FromDays, thresholds[1].FromDays, thresholds[2].FromDays})
}

func TestValidate(t *testing.T) {
	assert.NoError(t, newDefinition().Validate())

	over := newDefinition()
	over.DiscountsByDay[0].Discount = decimal.NewFromInt(101)
	assert.Error(t, over.Validate())

	duplicate := newDefinition()
	duplicate.DiscountsByDay[1].FromDays = 14
	assert.Error(t, duplicate.Validate())
}

func TestCopy(t *testing.T) {
	original := newDefinition()
	clone := original.Copy()
	require.Len(t, clone.DiscountsByDay, 3)
	for i, entry := range clone.DiscountsByDay {
		assert.Equal(t, clone.ID, entry.DiscountByDayDefinitionID)
		assert.NotEqual(t, original.DiscountsByDay[i].ID, entry.ID)
		assert.Equal(t, original.DiscountsByDay[i].FromDays, entry.FromDays)
	}
}
