package service

import (
	"time"

	"github.com/flexprice/rates/internal/testutil"
	"github.com/shopspring/decimal"
)

// newTestServiceParams wires the suite's in-memory stores with the clock pinned to the suite's now
func newTestServiceParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	stores := s.GetStores()
	params := NewServiceParams(
		s.GetLogger(),
		s.GetConfig(),
		s.GetDB(),
		s.GetCache(),
		stores.PriceDefinitionRepo,
		stores.PriceRepo,
		stores.SeasonRepo,
		stores.FactorRepo,
		stores.DiscountByDayRepo,
		stores.PromotionCodeRepo,
		stores.DiscountRepo,
	)
	params.Clock = func() time.Time { return s.GetNow() }
	return params
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
