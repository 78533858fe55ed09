package pricedefinition

import (
	"testing"

	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validDefinition() *PriceDefinition {
	return &PriceDefinition{
		Name:                 "bikes",
		Type:                 types.PriceDefinitionTypeNoSeason,
		UnitsManagement:      types.UnitsManagementUnitary,
		UnitsManagementValue: 1,
		TimeMeasurement:      types.TimeMeasurementDays,
		BasePrice:            decimal.Zero,
		MaxPrice:             decimal.Zero,
	}
}

func TestHourTiers(t *testing.T) {
	tests := []struct {
		list string
		want []int
	}{
		{list: "1", want: []int{1}},
		{list: "4, 1,2,,x,2", want: []int{1, 2, 4}},
		{list: "", want: []int{}},
		{list: "0,-3", want: []int{}},
	}

	for _, tt := range tests {
		definition := validDefinition()
		definition.UnitsManagementValueHoursList = tt.list
		assert.Equal(t, tt.want, definition.HourTiers(), "list %q", tt.list)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *PriceDefinition)
		wantErr bool
	}{
		{name: "valid", mutate: func(p *PriceDefinition) {}},
		{name: "missing name", mutate: func(p *PriceDefinition) { p.Name = "" }, wantErr: true},
		{name: "unknown type", mutate: func(p *PriceDefinition) { p.Type = "weekly" }, wantErr: true},
		{name: "negative max", mutate: func(p *PriceDefinition) { p.MaxPrice = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "negative usage price", mutate: func(p *PriceDefinition) { p.DailyUsageUnitsPrice = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "negative usage limit", mutate: func(p *PriceDefinition) { p.DailyUsageUnitsLimit = -100 }, wantErr: true},
		{
			name: "usage allowance",
			mutate: func(p *PriceDefinition) {
				p.DailyUsageUnitsDays = 3
				p.DailyUsageUnitsLimit = 200
				p.DailyUsageUnitsPrice = decimal.RequireFromString("0.25")
			},
		},
		{
			name: "detailed without ceiling",
			mutate: func(p *PriceDefinition) {
				p.UnitsManagement = types.UnitsManagementDetailed
				p.UnitsManagementValue = 0
			},
			wantErr: true,
		},
		{name: "season without definition", mutate: func(p *PriceDefinition) { p.Type = types.PriceDefinitionTypeSeason }, wantErr: true},
		{
			name: "season with definition",
			mutate: func(p *PriceDefinition) {
				p.Type = types.PriceDefinitionTypeSeason
				p.SeasonDefinitionID = lo.ToPtr("sdef_1")
			},
		},
		{
			name: "hours without tiers",
			mutate: func(p *PriceDefinition) {
				p.TimeMeasurement = types.TimeMeasurementHours
				p.UnitsManagementValueHoursList = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			definition := validDefinition()
			tt.mutate(definition)
			err := definition.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
