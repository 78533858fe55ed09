package service

import (
	"context"

	"github.com/flexprice/rates/internal/api/dto"
	"github.com/flexprice/rates/internal/cache"
	"github.com/flexprice/rates/internal/types"
)

type FactorDefinitionService interface {
	CreateFactorDefinition(ctx context.Context, req dto.CreateFactorDefinitionRequest) (*dto.FactorDefinitionResponse, error)
	GetFactorDefinition(ctx context.Context, id string) (*dto.FactorDefinitionResponse, error)
	DeleteFactorDefinition(ctx context.Context, id string) error
	CopyFactorDefinition(ctx context.Context, id string, req dto.CopyDefinitionRequest) (*dto.FactorDefinitionResponse, error)
}

type factorDefinitionService struct {
	ServiceParams
}

func NewFactorDefinitionService(params ServiceParams) FactorDefinitionService {
	return &factorDefinitionService{
		ServiceParams: params,
	}
}

func (s *factorDefinitionService) CreateFactorDefinition(ctx context.Context, req dto.CreateFactorDefinitionRequest) (*dto.FactorDefinitionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	def := req.ToFactorDefinition(ctx)
	if err := s.FactorRepo.Create(ctx, def); err != nil {
		return nil, err
	}
	return &dto.FactorDefinitionResponse{Definition: def}, nil
}

func (s *factorDefinitionService) GetFactorDefinition(ctx context.Context, id string) (*dto.FactorDefinitionResponse, error) {
	def, err := s.FactorRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.FactorDefinitionResponse{Definition: def}, nil
}

func (s *factorDefinitionService) DeleteFactorDefinition(ctx context.Context, id string) error {
	if err := s.FactorRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.Cache.DeleteByPrefix(ctx, cache.PrefixRateSnapshot)
	return nil
}

func (s *factorDefinitionService) CopyFactorDefinition(ctx context.Context, id string, req dto.CopyDefinitionRequest) (*dto.FactorDefinitionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	source, err := s.FactorRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	clone := source.Copy()
	if req.Name != "" {
		clone.Name = req.Name
	}
	clone.BaseModel = types.GetDefaultBaseModel(ctx)
	for _, f := range clone.Factors {
		f.BaseModel = clone.BaseModel
	}

	if err := s.FactorRepo.Create(ctx, clone); err != nil {
		return nil, err
	}
	return &dto.FactorDefinitionResponse{Definition: clone}, nil
}
