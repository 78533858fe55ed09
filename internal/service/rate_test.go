package service

import (
	"testing"

	"github.com/flexprice/rates/internal/api/dto"
	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/testutil"
	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RateServiceSuite struct {
	testutil.BaseServiceTestSuite
	service       RateService
	definitions   PriceDefinitionService
	seasons       SeasonDefinitionService
	promotions    PromotionCodeService
	discountByDay DiscountByDayDefinitionService
	testData      struct {
		seasonDefinition *dto.SeasonDefinitionResponse
		lowSeasonID      string
		highSeasonID     string
		seasonal         *dto.PriceDefinitionResponse
		flat             *dto.PriceDefinitionResponse
	}
}

func TestRateService(t *testing.T) {
	suite.Run(t, new(RateServiceSuite))
}

func (s *RateServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewRateService(params)
	s.definitions = NewPriceDefinitionService(params, s.service)
	s.seasons = NewSeasonDefinitionService(params)
	s.promotions = NewPromotionCodeService(params)
	s.discountByDay = NewDiscountByDayDefinitionService(params)
	s.setupTestData()
}

func (s *RateServiceSuite) setupTestData() {
	ctx := s.GetContext()

	seasonDefinition, err := s.seasons.CreateSeasonDefinition(ctx, dto.CreateSeasonDefinitionRequest{
		Name: "Halves",
		Seasons: []dto.CreateSeasonRequest{
			{Name: "Low", FromMonth: 1, FromDay: 1, ToMonth: 6, ToDay: 30},
			{Name: "High", FromMonth: 7, FromDay: 1, ToMonth: 12, ToDay: 31},
		},
	})
	s.Require().NoError(err)
	s.testData.seasonDefinition = seasonDefinition
	s.testData.lowSeasonID = seasonDefinition.Seasons[0].ID
	s.testData.highSeasonID = seasonDefinition.Seasons[1].ID

	seasonal, err := s.definitions.CreatePriceDefinition(ctx, dto.CreatePriceDefinitionRequest{
		Name:                 "Seasonal bikes",
		Type:                 types.PriceDefinitionTypeSeason,
		UnitsManagement:      types.UnitsManagementUnitary,
		UnitsManagementValue: 1,
		SeasonDefinitionID:   lo.ToPtr(seasonDefinition.ID),
		Prices: []dto.CreatePriceRequest{
			{SeasonID: lo.ToPtr(s.testData.lowSeasonID), Units: 1, Price: dec("10")},
			{SeasonID: lo.ToPtr(s.testData.highSeasonID), Units: 1, Price: dec("20")},
		},
	})
	s.Require().NoError(err)
	s.testData.seasonal = seasonal

	flat, err := s.definitions.CreatePriceDefinition(ctx, dto.CreatePriceDefinitionRequest{
		Name:            "Flat kayaks",
		Type:            types.PriceDefinitionTypeNoSeason,
		UnitsManagement: types.UnitsManagementUnitary,
		BasePrice:       dec("5"),
		Prices: []dto.CreatePriceRequest{
			{Units: 1, Price: dec("12")},
		},
	})
	s.Require().NoError(err)
	s.testData.flat = flat

	_, err = s.promotions.CreatePromotionCode(ctx, dto.CreatePromotionCodeRequest{
		Code:         "summer",
		DateFrom:     "2025-06-01",
		DateTo:       "2025-08-31",
		DiscountType: types.DiscountTypePercentage,
		Value:        dec("10"),
	})
	s.Require().NoError(err)

	_, err = s.promotions.CreatePromotionCode(ctx, dto.CreatePromotionCodeRequest{
		Code:           "JULYONLY",
		DateFrom:       "2025-06-01",
		DateTo:         "2025-08-31",
		SourceDateFrom: lo.ToPtr("2025-07-01"),
		SourceDateTo:   lo.ToPtr("2025-07-31"),
		DiscountType:   types.DiscountTypeAmount,
		Value:          dec("15"),
	})
	s.Require().NoError(err)

	_, err = s.promotions.CreatePromotionCode(ctx, dto.CreatePromotionCodeRequest{
		Code:         "SPRING",
		DateFrom:     "2025-03-01",
		DateTo:       "2025-05-31",
		DiscountType: types.DiscountTypePercentage,
		Value:        dec("50"),
	})
	s.Require().NoError(err)
}

func (s *RateServiceSuite) assertAmount(want string, got decimal.Decimal) {
	s.True(dec(want).Equal(got), "want %s got %s", want, got.String())
}

func (s *RateServiceSuite) TestCalculatePrice() {
	tests := []struct {
		name string
		req  dto.CalculatePriceRequest
		want string
	}{
		{
			name: "high season",
			req:  dto.CalculatePriceRequest{PriceDefinitionID: s.testData.seasonal.ID, Date: "2025-07-05", Units: 3},
			want: "60",
		},
		{
			name: "low season",
			req:  dto.CalculatePriceRequest{PriceDefinitionID: s.testData.seasonal.ID, Date: "2025-02-10", Units: 3},
			want: "30",
		},
		{
			name: "stay across seasons averaged",
			req: dto.CalculatePriceRequest{
				PriceDefinitionID: s.testData.seasonal.ID,
				Date:              "2025-06-29",
				Units:             4,
				Mode:              types.CalculationModeSeasonDaysAverage,
			},
			want: "60",
		},
		{
			name: "no season with base price",
			req:  dto.CalculatePriceRequest{PriceDefinitionID: s.testData.flat.ID, Date: "2025-07-05", Units: 2},
			want: "29",
		},
		{
			name: "zero units is the base price",
			req:  dto.CalculatePriceRequest{PriceDefinitionID: s.testData.flat.ID, Date: "2025-07-05", Units: 0},
			want: "5",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			resp, err := s.service.CalculatePrice(s.GetContext(), tt.req)
			s.Require().NoError(err)
			s.assertAmount(tt.want, resp.Price)
			s.assertAmount(tt.want, resp.FinalPrice)
			s.Nil(resp.PromotionCodeValid)
			s.Equal(tt.req.Date, resp.Date)
		})
	}
}

func (s *RateServiceSuite) TestCalculatePrice_DefaultMode() {
	resp, err := s.service.CalculatePrice(s.GetContext(), dto.CalculatePriceRequest{
		PriceDefinitionID: s.testData.seasonal.ID,
		Date:              "2025-06-29",
		Units:             4,
	})
	s.Require().NoError(err)
	s.Equal(types.CalculationModeFirstSeasonDay, resp.Mode)
	// the whole stay is priced with the low season of the first day
	s.assertAmount("40", resp.Price)
}

func (s *RateServiceSuite) TestCalculatePrice_HoursReportAppliedMode() {
	ctx := s.GetContext()
	hourly, err := s.definitions.CreatePriceDefinition(ctx, dto.CreatePriceDefinitionRequest{
		Name:                          "Hourly boats",
		Type:                          types.PriceDefinitionTypeSeason,
		TimeMeasurement:               types.TimeMeasurementHours,
		UnitsManagement:               types.UnitsManagementUnitary,
		UnitsManagementValue:          1,
		UnitsManagementValueHoursList: "1,2,4,8",
		SeasonDefinitionID:            lo.ToPtr(s.testData.seasonDefinition.ID),
		Prices: []dto.CreatePriceRequest{
			{SeasonID: lo.ToPtr(s.testData.lowSeasonID), Units: 1, Price: dec("10")},
			{SeasonID: lo.ToPtr(s.testData.highSeasonID), Units: 1, Price: dec("20")},
		},
	})
	s.Require().NoError(err)

	resp, err := s.service.CalculatePrice(ctx, dto.CalculatePriceRequest{
		PriceDefinitionID: hourly.ID,
		Date:              "2025-06-30",
		Units:             4,
		Mode:              types.CalculationModeSeasonDaysAverage,
	})
	s.Require().NoError(err)
	s.Equal(types.CalculationModeFirstSeasonDay, resp.Mode)
	s.assertAmount("40", resp.Price)

	multiple, err := s.service.CalculateMultiplePrices(ctx, dto.CalculateMultiplePricesRequest{
		PriceDefinitionID: hourly.ID,
		Date:              "2025-06-30",
		Units:             2,
		Mode:              types.CalculationModeSeasonDaysAverage,
	})
	s.Require().NoError(err)
	s.Equal(types.CalculationModeFirstSeasonDay, multiple.Mode)

	// day based definitions keep the requested mode
	resp, err = s.service.CalculatePrice(ctx, dto.CalculatePriceRequest{
		PriceDefinitionID: s.testData.seasonal.ID,
		Date:              "2025-06-29",
		Units:             4,
		Mode:              types.CalculationModeSeasonDaysAverage,
	})
	s.Require().NoError(err)
	s.Equal(types.CalculationModeSeasonDaysAverage, resp.Mode)
	// Jun 29, 30 low and Jul 1, 2 high
	s.assertAmount("60", resp.Price)
}

func (s *RateServiceSuite) TestCalculatePrice_PromotionCode() {
	tests := []struct {
		name       string
		code       string
		source     *dto.DateWindow
		wantValid  bool
		wantAmount string
	}{
		{
			name:       "valid percentage code, lookup ignores case",
			code:       "Summer",
			wantValid:  true,
			wantAmount: "54",
		},
		{
			name:       "code outside its redemption window",
			code:       "SPRING",
			wantValid:  false,
			wantAmount: "60",
		},
		{
			name:       "unknown code",
			code:       "NOPE",
			wantValid:  false,
			wantAmount: "60",
		},
		{
			name:       "booking inside the source window",
			code:       "JULYONLY",
			source:     &dto.DateWindow{From: "2025-07-05", To: "2025-07-07"},
			wantValid:  true,
			wantAmount: "45",
		},
		{
			name:       "booking outside the source window",
			code:       "JULYONLY",
			source:     &dto.DateWindow{From: "2025-08-01", To: "2025-08-03"},
			wantValid:  false,
			wantAmount: "60",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			resp, err := s.service.CalculatePrice(s.GetContext(), dto.CalculatePriceRequest{
				PriceDefinitionID: s.testData.seasonal.ID,
				Date:              "2025-07-05",
				Units:             3,
				PromotionCode:     tt.code,
				SourceWindow:      tt.source,
			})
			s.Require().NoError(err)
			s.Require().NotNil(resp.PromotionCodeValid)
			s.Equal(tt.wantValid, *resp.PromotionCodeValid)
			s.assertAmount("60", resp.Price)
			s.assertAmount(tt.wantAmount, resp.FinalPrice)
		})
	}
}

func (s *RateServiceSuite) TestCalculatePrice_Errors() {
	ctx := s.GetContext()

	_, err := s.service.CalculatePrice(ctx, dto.CalculatePriceRequest{PriceDefinitionID: "pdef_missing", Date: "2025-07-05", Units: 1})
	s.True(ierr.IsNotFound(err))

	_, err = s.service.CalculatePrice(ctx, dto.CalculatePriceRequest{PriceDefinitionID: s.testData.flat.ID, Date: "05/07/2025", Units: 1})
	s.True(ierr.IsValidation(err))

	_, err = s.service.CalculatePrice(ctx, dto.CalculatePriceRequest{PriceDefinitionID: s.testData.flat.ID, Date: "2025-07-05", Units: -1})
	s.True(ierr.IsValidation(err))

	_, err = s.service.CalculatePrice(ctx, dto.CalculatePriceRequest{PriceDefinitionID: s.testData.flat.ID, Date: "2025-07-05", Units: s.GetConfig().Rates.MaxUnits + 1})
	s.True(ierr.IsValidation(err))

	_, err = s.service.CalculatePrice(ctx, dto.CalculatePriceRequest{PriceDefinitionID: s.testData.flat.ID, Date: "2025-07-05", Units: 1, Mode: "weekly"})
	s.True(ierr.IsValidation(err))
}

func (s *RateServiceSuite) TestLoadSnapshot_CachedAndInvalidated() {
	ctx := s.GetContext()

	snapshot, err := s.service.LoadSnapshot(ctx, s.testData.seasonal.ID)
	s.Require().NoError(err)
	s.NotNil(snapshot.Seasons)
	s.Nil(snapshot.Factors)
	s.Nil(snapshot.DiscountsByDay)

	again, err := s.service.LoadSnapshot(ctx, s.testData.seasonal.ID)
	s.Require().NoError(err)
	s.Same(snapshot, again)

	_, err = s.definitions.ReplacePrices(ctx, s.testData.seasonal.ID, dto.ReplacePricesRequest{
		Prices: []dto.CreatePriceRequest{
			{SeasonID: lo.ToPtr(s.testData.lowSeasonID), Units: 1, Price: dec("10")},
			{SeasonID: lo.ToPtr(s.testData.highSeasonID), Units: 1, Price: dec("30")},
		},
	})
	s.Require().NoError(err)

	resp, err := s.service.CalculatePrice(ctx, dto.CalculatePriceRequest{PriceDefinitionID: s.testData.seasonal.ID, Date: "2025-07-05", Units: 3})
	s.Require().NoError(err)
	s.assertAmount("90", resp.Price)
}

func (s *RateServiceSuite) TestLoadSnapshot_MissingReferenceIsNeutral() {
	ctx := s.GetContext()

	dbd, err := s.discountByDay.CreateDiscountByDayDefinition(ctx, dto.CreateDiscountByDayDefinitionRequest{
		Name:           "Long stays",
		DiscountsByDay: []dto.CreateDiscountByDayRequest{{FromDays: 2, Discount: dec("50")}},
	})
	s.Require().NoError(err)

	def, err := s.definitions.CreatePriceDefinition(ctx, dto.CreatePriceDefinitionRequest{
		Name:                      "Discounted",
		Type:                      types.PriceDefinitionTypeNoSeason,
		UnitsManagement:           types.UnitsManagementUnitary,
		DiscountByDayDefinitionID: lo.ToPtr(dbd.ID),
		ApplyDiscountByDays:       true,
		Prices:                    []dto.CreatePriceRequest{{Units: 1, Price: dec("10")}},
	})
	s.Require().NoError(err)

	resp, err := s.service.CalculatePrice(ctx, dto.CalculatePriceRequest{PriceDefinitionID: def.ID, Date: "2025-07-05", Units: 4})
	s.Require().NoError(err)
	s.assertAmount("20", resp.Price)

	s.Require().NoError(s.discountByDay.DeleteDiscountByDayDefinition(ctx, dbd.ID))

	resp, err = s.service.CalculatePrice(ctx, dto.CalculatePriceRequest{PriceDefinitionID: def.ID, Date: "2025-07-05", Units: 4})
	s.Require().NoError(err)
	s.assertAmount("40", resp.Price)
}

func (s *RateServiceSuite) TestCalculateMultiplePrices() {
	resp, err := s.service.CalculateMultiplePrices(s.GetContext(), dto.CalculateMultiplePricesRequest{
		PriceDefinitionID: s.testData.seasonal.ID,
		Date:              "2025-07-05",
		Units:             3,
	})
	s.Require().NoError(err)
	s.Require().Len(resp.Prices, 3)
	for i, want := range []string{"20", "40", "60"} {
		s.Equal(i+1, resp.Prices[i].Units)
		s.assertAmount(want, resp.Prices[i].Price)
	}

	resp, err = s.service.CalculateMultiplePrices(s.GetContext(), dto.CalculateMultiplePricesRequest{
		PriceDefinitionID: s.testData.seasonal.ID,
		Date:              "2025-07-05",
		Units:             0,
	})
	s.Require().NoError(err)
	s.Empty(resp.Prices)
}

func (s *RateServiceSuite) TestQuoteBatch() {
	req := dto.BatchQuoteRequest{}
	for units := 1; units <= 20; units++ {
		req.Quotes = append(req.Quotes, &dto.CalculatePriceRequest{
			PriceDefinitionID: s.testData.flat.ID,
			Date:              "2025-07-05",
			Units:             units,
		})
	}

	resp, err := s.service.QuoteBatch(s.GetContext(), req)
	s.Require().NoError(err)
	s.Require().Len(resp.Quotes, 20)
	for i, quote := range resp.Quotes {
		s.Equal(i+1, quote.Units)
		s.assertAmount(decimal.NewFromInt(int64(12*(i+1)+5)).String(), quote.Price)
	}
}

func (s *RateServiceSuite) TestQuoteBatch_FirstErrorFails() {
	_, err := s.service.QuoteBatch(s.GetContext(), dto.BatchQuoteRequest{
		Quotes: []*dto.CalculatePriceRequest{
			{PriceDefinitionID: s.testData.flat.ID, Date: "2025-07-05", Units: 1},
			{PriceDefinitionID: "pdef_missing", Date: "2025-07-05", Units: 1},
		},
	})
	s.Require().Error(err)
	s.True(ierr.IsNotFound(err))

	_, err = s.service.QuoteBatch(s.GetContext(), dto.BatchQuoteRequest{})
	s.True(ierr.IsValidation(err))
}
