package factor

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorFor(t *testing.T) {
	definition := &Definition{
		Name: "volume",
		Factors: []*Factor{
			{ID: "f1", From: 1, To: 3, Factor: decimal.RequireFromString("1.00")},
			{ID: "f2", From: 4, To: 7, Factor: decimal.RequireFromString("0.90")},
			{ID: "f3", From: 7, To: 30, Factor: decimal.RequireFromString("0.80")},
		},
	}

	tests := []struct {
		name  string
		units int
		want  string
	}{
		{name: "lower bound inclusive", units: 4, want: "0.9"},
		{name: "upper bound inclusive", units: 30, want: "0.8"},
		{name: "first range wins on overlap", units: 7, want: "0.9"},
		{name: "later range", units: 10, want: "0.8"},
		{name: "uncovered is neutral", units: 31, want: "1"},
		{name: "zero units is neutral", units: 0, want: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, decimal.RequireFromString(tt.want).Equal(definition.FactorFor(tt.units)),
				"got %s", definition.FactorFor(tt.units))
		})
	}
}

func TestFactorFor_NoDefinition(t *testing.T) {
	var definition *Definition
	for units := 0; units <= 100; units++ {
		assert.True(t, decimal.NewFromInt(1).Equal(definition.FactorFor(units)))
	}
	assert.Nil(t, definition.Find(3))
}

func TestDefinitionCopy(t *testing.T) {
	original := &Definition{
		ID:      "fdef_1",
		Name:    "volume",
		Factors: []*Factor{{ID: "f1", FactorDefinitionID: "fdef_1", From: 1, To: 3, Factor: decimal.NewFromInt(1)}},
	}
	clone := original.Copy()
	require.Len(t, clone.Factors, 1)
	assert.NotEqual(t, "fdef_1", clone.ID)
	assert.Equal(t, clone.ID, clone.Factors[0].FactorDefinitionID)
	assert.Equal(t, "fdef_1", original.Factors[0].FactorDefinitionID)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Definition{Name: "ok", Factors: []*Factor{{From: 1, To: 1, Factor: decimal.NewFromInt(2)}}}).Validate())
	assert.Error(t, (&Definition{Name: "bad", Factors: []*Factor{{From: 3, To: 1, Factor: decimal.NewFromInt(2)}}}).Validate())
	assert.Error(t, (&Definition{Name: "bad", Factors: []*Factor{{From: 1, To: 1, Factor: decimal.NewFromInt(-1)}}}).Validate())
	assert.Error(t, (&Definition{}).Validate())
}
