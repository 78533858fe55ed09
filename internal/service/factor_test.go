package service

import (
	"testing"

	"github.com/flexprice/rates/internal/api/dto"
	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type DefinitionCopyServiceSuite struct {
	testutil.BaseServiceTestSuite
	factors       FactorDefinitionService
	discountByDay DiscountByDayDefinitionService
}

func TestDefinitionCopyService(t *testing.T) {
	suite.Run(t, new(DefinitionCopyServiceSuite))
}

func (s *DefinitionCopyServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.factors = NewFactorDefinitionService(params)
	s.discountByDay = NewDiscountByDayDefinitionService(params)
}

func (s *DefinitionCopyServiceSuite) TestFactorDefinition() {
	ctx := s.GetContext()
	created, err := s.factors.CreateFactorDefinition(ctx, dto.CreateFactorDefinitionRequest{
		Name: "Group sizes",
		Factors: []dto.CreateFactorRequest{
			{From: 1, To: 7, Factor: dec("0.9")},
			{From: 8, To: 30, Factor: dec("0.8")},
		},
	})
	s.Require().NoError(err)
	s.Len(created.Factors, 2)

	got, err := s.factors.GetFactorDefinition(ctx, created.ID)
	s.Require().NoError(err)
	s.True(dec("0.8").Equal(got.FactorFor(10)))

	clone, err := s.factors.CopyFactorDefinition(ctx, created.ID, dto.CopyDefinitionRequest{})
	s.Require().NoError(err)
	s.NotEqual(created.ID, clone.ID)
	s.Equal(created.Name, clone.Name)
	s.Require().Len(clone.Factors, 2)
	s.Equal(clone.ID, clone.Factors[0].FactorDefinitionID)

	s.Require().NoError(s.factors.DeleteFactorDefinition(ctx, created.ID))
	_, err = s.factors.GetFactorDefinition(ctx, created.ID)
	s.True(ierr.IsNotFound(err))

	_, err = s.factors.GetFactorDefinition(ctx, clone.ID)
	s.NoError(err)
}

func (s *DefinitionCopyServiceSuite) TestFactorDefinition_Validation() {
	_, err := s.factors.CreateFactorDefinition(s.GetContext(), dto.CreateFactorDefinitionRequest{
		Name:    "Inverted",
		Factors: []dto.CreateFactorRequest{{From: 10, To: 2, Factor: dec("0.5")}},
	})
	s.True(ierr.IsValidation(err))
}

func (s *DefinitionCopyServiceSuite) TestDiscountByDayDefinition() {
	ctx := s.GetContext()
	created, err := s.discountByDay.CreateDiscountByDayDefinition(ctx, dto.CreateDiscountByDayDefinitionRequest{
		Name: "Week discounts",
		DiscountsByDay: []dto.CreateDiscountByDayRequest{
			{FromDays: 7, Discount: dec("15")},
			{FromDays: 3, Discount: dec("5")},
		},
	})
	s.Require().NoError(err)

	got, err := s.discountByDay.GetDiscountByDayDefinition(ctx, created.ID)
	s.Require().NoError(err)
	s.True(dec("5").Equal(got.DiscountFor(4)))
	s.True(dec("15").Equal(got.DiscountFor(10)))

	clone, err := s.discountByDay.CopyDiscountByDayDefinition(ctx, created.ID, dto.CopyDefinitionRequest{Name: "Copy"})
	s.Require().NoError(err)
	s.Equal("Copy", clone.Name)
	s.Len(clone.DiscountsByDay, 2)

	_, err = s.discountByDay.CreateDiscountByDayDefinition(ctx, dto.CreateDiscountByDayDefinitionRequest{
		Name:           "Too much",
		DiscountsByDay: []dto.CreateDiscountByDayRequest{{FromDays: 1, Discount: dec("120")}},
	})
	s.True(ierr.IsValidation(err))
}
