package service

import (
	"testing"

	"github.com/flexprice/rates/internal/api/dto"
	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/testutil"
	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type PriceDefinitionServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PriceDefinitionService
	seasons SeasonDefinitionService
	factors FactorDefinitionService
}

func TestPriceDefinitionService(t *testing.T) {
	suite.Run(t, new(PriceDefinitionServiceSuite))
}

func (s *PriceDefinitionServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewPriceDefinitionService(params, NewRateService(params))
	s.seasons = NewSeasonDefinitionService(params)
	s.factors = NewFactorDefinitionService(params)
}

func (s *PriceDefinitionServiceSuite) detailedRequest() dto.CreatePriceDefinitionRequest {
	return dto.CreatePriceDefinitionRequest{
		Name:                 "Canoes",
		Type:                 types.PriceDefinitionTypeNoSeason,
		UnitsManagement:      types.UnitsManagementDetailed,
		UnitsManagementValue: 2,
		Prices: []dto.CreatePriceRequest{
			{Units: 2, Price: dec("55"), AdjustOperation: types.AdjustOperationAdd, AdjustAmount: dec("5")},
			{Units: 1, Price: dec("30")},
			{Units: 0, Price: dec("20")},
		},
	}
}

func (s *PriceDefinitionServiceSuite) TestCreatePriceDefinition() {
	resp, err := s.service.CreatePriceDefinition(s.GetContext(), s.detailedRequest())
	s.Require().NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal(types.TimeMeasurementDays, resp.TimeMeasurement)
	s.Len(resp.Prices, 3)
	s.Equal(types.DefaultTenantID, resp.TenantID)

	got, err := s.service.GetPriceDefinition(s.GetContext(), resp.ID)
	s.Require().NoError(err)
	s.Equal(resp.ID, got.ID)
	s.Len(got.Prices, 3)
}

func (s *PriceDefinitionServiceSuite) TestCreatePriceDefinition_DailyUsage() {
	req := s.detailedRequest()
	req.DailyUsageUnitsDays = 3
	req.DailyUsageUnitsLimit = 200
	req.DailyUsageUnitsPrice = dec("0.25")

	resp, err := s.service.CreatePriceDefinition(s.GetContext(), req)
	s.Require().NoError(err)

	got, err := s.service.GetPriceDefinition(s.GetContext(), resp.ID)
	s.Require().NoError(err)
	s.Equal(3, got.DailyUsageUnitsDays)
	s.Equal(200, got.DailyUsageUnitsLimit)
	s.True(dec("0.25").Equal(got.DailyUsageUnitsPrice))
}

func (s *PriceDefinitionServiceSuite) TestCreatePriceDefinition_Validation() {
	ctx := s.GetContext()

	tests := []struct {
		name   string
		mutate func(req *dto.CreatePriceDefinitionRequest)
	}{
		{
			name:   "missing name",
			mutate: func(req *dto.CreatePriceDefinitionRequest) { req.Name = "" },
		},
		{
			name:   "unknown type",
			mutate: func(req *dto.CreatePriceDefinitionRequest) { req.Type = "weekly" },
		},
		{
			name:   "detailed without ceiling",
			mutate: func(req *dto.CreatePriceDefinitionRequest) { req.UnitsManagementValue = 0 },
		},
		{
			name: "invalid adjust operation",
			mutate: func(req *dto.CreatePriceDefinitionRequest) {
				req.Prices[0].AdjustOperation = "/"
			},
		},
		{
			name: "negative price",
			mutate: func(req *dto.CreatePriceDefinitionRequest) {
				req.Prices[1].Price = dec("-1")
			},
		},
		{
			name: "season on a non seasonal price",
			mutate: func(req *dto.CreatePriceDefinitionRequest) {
				req.Prices[1].SeasonID = lo.ToPtr("season_x")
			},
		},
		{
			name: "missing factor definition",
			mutate: func(req *dto.CreatePriceDefinitionRequest) {
				req.FactorDefinitionID = lo.ToPtr("fdef_missing")
			},
		},
		{
			name: "seasonal without season definition",
			mutate: func(req *dto.CreatePriceDefinitionRequest) {
				req.Type = types.PriceDefinitionTypeSeason
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := s.detailedRequest()
			tt.mutate(&req)
			_, err := s.service.CreatePriceDefinition(ctx, req)
			s.Require().Error(err)
			s.True(ierr.IsValidation(err), "got %v", err)
		})
	}
}

func (s *PriceDefinitionServiceSuite) TestCreatePriceDefinition_SeasonalPricesMustMatchSeasons() {
	ctx := s.GetContext()
	seasons, err := s.seasons.CreateSeasonDefinition(ctx, dto.CreateSeasonDefinitionRequest{
		Name:    "Year",
		Seasons: []dto.CreateSeasonRequest{{Name: "All", FromMonth: 1, FromDay: 1, ToMonth: 12, ToDay: 31}},
	})
	s.Require().NoError(err)

	req := dto.CreatePriceDefinitionRequest{
		Name:               "Seasonal",
		Type:               types.PriceDefinitionTypeSeason,
		UnitsManagement:    types.UnitsManagementUnitary,
		SeasonDefinitionID: lo.ToPtr(seasons.ID),
		Prices:             []dto.CreatePriceRequest{{SeasonID: lo.ToPtr("season_other"), Units: 1, Price: dec("10")}},
	}
	_, err = s.service.CreatePriceDefinition(ctx, req)
	s.True(ierr.IsValidation(err))

	req.Prices[0].SeasonID = lo.ToPtr(seasons.Seasons[0].ID)
	_, err = s.service.CreatePriceDefinition(ctx, req)
	s.NoError(err)
}

func (s *PriceDefinitionServiceSuite) TestGetPriceTable() {
	created, err := s.service.CreatePriceDefinition(s.GetContext(), s.detailedRequest())
	s.Require().NoError(err)

	table, err := s.service.GetPriceTable(s.GetContext(), created.ID)
	s.Require().NoError(err)
	s.Equal(types.UnitsManagementDetailed, table.UnitsManagement)
	s.Require().Len(table.Seasons, 1)

	season := table.Seasons[0]
	s.Empty(season.SeasonID)
	s.Require().Len(season.Basic, 2)
	s.Equal(1, season.Basic[0].Units)
	s.Equal(2, season.Basic[1].Units)
	s.Equal("+ 5.00", season.Basic[1].AdjustLabel)
	s.Require().NotNil(season.ExtraUnit)
	s.True(dec("20").Equal(season.ExtraUnit.Price))
}

func (s *PriceDefinitionServiceSuite) TestReplacePrices() {
	ctx := s.GetContext()
	created, err := s.service.CreatePriceDefinition(ctx, s.detailedRequest())
	s.Require().NoError(err)

	resp, err := s.service.ReplacePrices(ctx, created.ID, dto.ReplacePricesRequest{
		Prices: []dto.CreatePriceRequest{{Units: 1, Price: dec("40")}},
	})
	s.Require().NoError(err)
	s.Len(resp.Prices, 1)

	got, err := s.service.GetPriceDefinition(ctx, created.ID)
	s.Require().NoError(err)
	s.Require().Len(got.Prices, 1)
	s.True(dec("40").Equal(got.Prices[0].Price))

	_, err = s.service.ReplacePrices(ctx, "pdef_missing", dto.ReplacePricesRequest{Prices: []dto.CreatePriceRequest{}})
	s.True(ierr.IsNotFound(err))
}

func (s *PriceDefinitionServiceSuite) TestListAndDelete() {
	ctx := s.GetContext()
	first, err := s.service.CreatePriceDefinition(ctx, s.detailedRequest())
	s.Require().NoError(err)
	_, err = s.service.CreatePriceDefinition(ctx, s.detailedRequest())
	s.Require().NoError(err)

	list, err := s.service.ListPriceDefinitions(ctx, types.NewDefaultQueryFilter())
	s.Require().NoError(err)
	s.Len(list.Items, 2)

	s.Require().NoError(s.service.DeletePriceDefinition(ctx, first.ID))

	_, err = s.service.GetPriceDefinition(ctx, first.ID)
	s.True(ierr.IsNotFound(err))

	list, err = s.service.ListPriceDefinitions(ctx, nil)
	s.Require().NoError(err)
	s.Len(list.Items, 1)
}
