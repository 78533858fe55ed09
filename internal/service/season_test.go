package service

import (
	"testing"

	"github.com/flexprice/rates/internal/api/dto"
	"github.com/flexprice/rates/internal/domain/season"
	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type SeasonDefinitionServiceSuite struct {
	testutil.BaseServiceTestSuite
	service SeasonDefinitionService
}

func TestSeasonDefinitionService(t *testing.T) {
	suite.Run(t, new(SeasonDefinitionServiceSuite))
}

func (s *SeasonDefinitionServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewSeasonDefinitionService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *SeasonDefinitionServiceSuite) create(seasons ...dto.CreateSeasonRequest) *dto.SeasonDefinitionResponse {
	resp, err := s.service.CreateSeasonDefinition(s.GetContext(), dto.CreateSeasonDefinitionRequest{
		Name:    "Summer and winter",
		Seasons: seasons,
	})
	s.Require().NoError(err)
	return resp
}

func (s *SeasonDefinitionServiceSuite) TestCreateSeasonDefinition_Validation() {
	_, err := s.service.CreateSeasonDefinition(s.GetContext(), dto.CreateSeasonDefinitionRequest{
		Name:    "Broken",
		Seasons: []dto.CreateSeasonRequest{{Name: "Feb", FromMonth: 2, FromDay: 1, ToMonth: 2, ToDay: 30}},
	})
	s.True(ierr.IsValidation(err))

	_, err = s.service.CreateSeasonDefinition(s.GetContext(), dto.CreateSeasonDefinitionRequest{})
	s.True(ierr.IsValidation(err))
}

func (s *SeasonDefinitionServiceSuite) TestValidateCoverage() {
	covered := s.create(
		dto.CreateSeasonRequest{Name: "High", FromMonth: 7, FromDay: 1, ToMonth: 12, ToDay: 31},
		dto.CreateSeasonRequest{Name: "Low", FromMonth: 1, FromDay: 1, ToMonth: 6, ToDay: 30},
	)
	resp, err := s.service.ValidateCoverage(s.GetContext(), covered.ID)
	s.Require().NoError(err)
	s.True(resp.Valid)
	s.Empty(resp.Violations)

	// coverage gaps are reported, not rejected at creation
	gap := s.create(
		dto.CreateSeasonRequest{Name: "Low", FromMonth: 1, FromDay: 1, ToMonth: 6, ToDay: 29},
		dto.CreateSeasonRequest{Name: "High", FromMonth: 7, FromDay: 1, ToMonth: 12, ToDay: 31},
	)
	resp, err = s.service.ValidateCoverage(s.GetContext(), gap.ID)
	s.Require().NoError(err)
	s.False(resp.Valid)
	s.Require().Len(resp.Violations, 1)
	s.Equal(season.ViolationSeasonEnd, resp.Violations[0].Code)
	s.Equal("Low", resp.Violations[0].SeasonName)
	s.Equal(6, resp.Violations[0].ExpectedMonth)
	s.Equal(30, resp.Violations[0].ExpectedDay)

	_, err = s.service.ValidateCoverage(s.GetContext(), "sdef_missing")
	s.True(ierr.IsNotFound(err))
}

func (s *SeasonDefinitionServiceSuite) TestCopySeasonDefinition() {
	source := s.create(
		dto.CreateSeasonRequest{Name: "All year", FromMonth: 1, FromDay: 1, ToMonth: 12, ToDay: 31, MinDays: 2},
	)

	clone, err := s.service.CopySeasonDefinition(s.GetContext(), source.ID, dto.CopyDefinitionRequest{Name: "All year 2026"})
	s.Require().NoError(err)
	s.NotEqual(source.ID, clone.ID)
	s.Equal("All year 2026", clone.Name)
	s.Require().Len(clone.Seasons, 1)
	s.NotEqual(source.Seasons[0].ID, clone.Seasons[0].ID)
	s.Equal(clone.ID, clone.Seasons[0].SeasonDefinitionID)
	s.Equal(2, clone.Seasons[0].MinDays)

	stored, err := s.service.GetSeasonDefinition(s.GetContext(), clone.ID)
	s.Require().NoError(err)
	s.Equal("All year 2026", stored.Name)

	kept, err := s.service.CopySeasonDefinition(s.GetContext(), source.ID, dto.CopyDefinitionRequest{})
	s.Require().NoError(err)
	s.Equal(source.Name, kept.Name)
}

func (s *SeasonDefinitionServiceSuite) TestListAndDelete() {
	first := s.create(dto.CreateSeasonRequest{Name: "All", FromMonth: 1, FromDay: 1, ToMonth: 12, ToDay: 31})
	s.create(dto.CreateSeasonRequest{Name: "All", FromMonth: 1, FromDay: 1, ToMonth: 12, ToDay: 31})

	list, err := s.service.ListSeasonDefinitions(s.GetContext(), nil)
	s.Require().NoError(err)
	s.Len(list.Items, 2)

	s.Require().NoError(s.service.DeleteSeasonDefinition(s.GetContext(), first.ID))
	_, err = s.service.GetSeasonDefinition(s.GetContext(), first.ID)
	s.True(ierr.IsNotFound(err))
}
