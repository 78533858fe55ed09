package service

import (
	"context"

	"github.com/flexprice/rates/internal/api/dto"
	"github.com/flexprice/rates/internal/cache"
	"github.com/flexprice/rates/internal/domain/season"
	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
)

type SeasonDefinitionService interface {
	CreateSeasonDefinition(ctx context.Context, req dto.CreateSeasonDefinitionRequest) (*dto.SeasonDefinitionResponse, error)
	GetSeasonDefinition(ctx context.Context, id string) (*dto.SeasonDefinitionResponse, error)
	ListSeasonDefinitions(ctx context.Context, filter *types.QueryFilter) (*dto.ListSeasonDefinitionsResponse, error)
	DeleteSeasonDefinition(ctx context.Context, id string) error
	// CopySeasonDefinition stores a clone of the definition with fresh ids
	CopySeasonDefinition(ctx context.Context, id string, req dto.CopyDefinitionRequest) (*dto.SeasonDefinitionResponse, error)
	// ValidateCoverage reports gaps and overlaps in the year covered by the seasons
	ValidateCoverage(ctx context.Context, id string) (*dto.SeasonCoverageResponse, error)
}

type seasonDefinitionService struct {
	ServiceParams
}

func NewSeasonDefinitionService(params ServiceParams) SeasonDefinitionService {
	return &seasonDefinitionService{
		ServiceParams: params,
	}
}

func (s *seasonDefinitionService) CreateSeasonDefinition(ctx context.Context, req dto.CreateSeasonDefinitionRequest) (*dto.SeasonDefinitionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	def := req.ToSeasonDefinition(ctx)
	if err := s.SeasonRepo.Create(ctx, def); err != nil {
		return nil, err
	}

	// coverage problems are advisory, the definition is stored anyway
	if violations := def.Violations(); len(violations) > 0 {
		s.Logger.WithContext(ctx).Warnw("season definition does not cover the whole year",
			"season_definition_id", def.ID,
			"violations", len(violations))
	}

	return &dto.SeasonDefinitionResponse{Definition: def}, nil
}

func (s *seasonDefinitionService) GetSeasonDefinition(ctx context.Context, id string) (*dto.SeasonDefinitionResponse, error) {
	def, err := s.SeasonRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SeasonDefinitionResponse{Definition: def}, nil
}

func (s *seasonDefinitionService) ListSeasonDefinitions(ctx context.Context, filter *types.QueryFilter) (*dto.ListSeasonDefinitionsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	defs, err := s.SeasonRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := types.NewListResponse(lo.Map(defs, func(def *season.Definition, _ int) *dto.SeasonDefinitionResponse {
		return &dto.SeasonDefinitionResponse{Definition: def}
	}), filter)
	return &resp, nil
}

func (s *seasonDefinitionService) DeleteSeasonDefinition(ctx context.Context, id string) error {
	if err := s.SeasonRepo.Delete(ctx, id); err != nil {
		return err
	}
	// any cached snapshot may reference the deleted seasons
	s.Cache.DeleteByPrefix(ctx, cache.PrefixRateSnapshot)
	return nil
}

func (s *seasonDefinitionService) CopySeasonDefinition(ctx context.Context, id string, req dto.CopyDefinitionRequest) (*dto.SeasonDefinitionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	source, err := s.SeasonRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	clone := source.Copy()
	if req.Name != "" {
		clone.Name = req.Name
	}
	clone.BaseModel = types.GetDefaultBaseModel(ctx)
	for _, ss := range clone.Seasons {
		ss.BaseModel = clone.BaseModel
	}

	if err := s.SeasonRepo.Create(ctx, clone); err != nil {
		return nil, err
	}

	s.Logger.WithContext(ctx).Infow("copied season definition",
		"source_id", source.ID,
		"season_definition_id", clone.ID)

	return &dto.SeasonDefinitionResponse{Definition: clone}, nil
}

func (s *seasonDefinitionService) ValidateCoverage(ctx context.Context, id string) (*dto.SeasonCoverageResponse, error) {
	def, err := s.SeasonRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	violations := def.Violations()
	return &dto.SeasonCoverageResponse{
		SeasonDefinitionID: def.ID,
		Valid:              len(violations) == 0,
		Violations:         violations,
	}, nil
}
