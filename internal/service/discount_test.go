package service

import (
	"testing"

	"github.com/flexprice/rates/internal/api/dto"
	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/testutil"
	"github.com/flexprice/rates/internal/types"
	"github.com/stretchr/testify/suite"
)

type DiscountServiceSuite struct {
	testutil.BaseServiceTestSuite
	service DiscountService
}

func TestDiscountService(t *testing.T) {
	suite.Run(t, new(DiscountServiceSuite))
}

func (s *DiscountServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewDiscountService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *DiscountServiceSuite) TestHasActiveDiscount() {
	ctx := s.GetContext()
	day, err := types.ParseDate("2025-07-10")
	s.Require().NoError(err)

	active, err := s.service.HasActiveDiscount(ctx, day)
	s.Require().NoError(err)
	s.False(active)

	_, err = s.service.CreateDiscount(ctx, dto.CreateDiscountRequest{
		DateFrom:     "2025-07-01",
		DateTo:       "2025-07-10",
		DiscountType: types.DiscountTypePercentage,
		Value:        dec("10"),
	})
	s.Require().NoError(err)

	// creating a discount drops the cached answer
	active, err = s.service.HasActiveDiscount(ctx, day)
	s.Require().NoError(err)
	s.True(active)

	resp, err := s.service.GetActiveDiscounts(ctx, day.AddDate(0, 0, 1))
	s.Require().NoError(err)
	s.False(resp.Active)
	s.Empty(resp.Discounts)
	s.Equal("2025-07-11", resp.Date)
}

func (s *DiscountServiceSuite) TestCreateDiscount_Validation() {
	_, err := s.service.CreateDiscount(s.GetContext(), dto.CreateDiscountRequest{
		DateFrom:     "2025-07-10",
		DateTo:       "2025-07-01",
		DiscountType: types.DiscountTypeAmount,
		Value:        dec("10"),
	})
	s.True(ierr.IsValidation(err))
}
