package service

import (
	"context"

	"github.com/flexprice/rates/internal/api/dto"
	"github.com/flexprice/rates/internal/cache"
	"github.com/flexprice/rates/internal/types"
)

type DiscountByDayDefinitionService interface {
	CreateDiscountByDayDefinition(ctx context.Context, req dto.CreateDiscountByDayDefinitionRequest) (*dto.DiscountByDayDefinitionResponse, error)
	GetDiscountByDayDefinition(ctx context.Context, id string) (*dto.DiscountByDayDefinitionResponse, error)
	DeleteDiscountByDayDefinition(ctx context.Context, id string) error
	CopyDiscountByDayDefinition(ctx context.Context, id string, req dto.CopyDefinitionRequest) (*dto.DiscountByDayDefinitionResponse, error)
}

type discountByDayDefinitionService struct {
	ServiceParams
}

func NewDiscountByDayDefinitionService(params ServiceParams) DiscountByDayDefinitionService {
	return &discountByDayDefinitionService{
		ServiceParams: params,
	}
}

func (s *discountByDayDefinitionService) CreateDiscountByDayDefinition(ctx context.Context, req dto.CreateDiscountByDayDefinitionRequest) (*dto.DiscountByDayDefinitionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	def := req.ToDiscountByDayDefinition(ctx)
	if err := s.DiscountByDayRepo.Create(ctx, def); err != nil {
		return nil, err
	}
	return &dto.DiscountByDayDefinitionResponse{Definition: def}, nil
}

func (s *discountByDayDefinitionService) GetDiscountByDayDefinition(ctx context.Context, id string) (*dto.DiscountByDayDefinitionResponse, error) {
	def, err := s.DiscountByDayRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.DiscountByDayDefinitionResponse{Definition: def}, nil
}

func (s *discountByDayDefinitionService) DeleteDiscountByDayDefinition(ctx context.Context, id string) error {
	if err := s.DiscountByDayRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.Cache.DeleteByPrefix(ctx, cache.PrefixRateSnapshot)
	return nil
}

func (s *discountByDayDefinitionService) CopyDiscountByDayDefinition(ctx context.Context, id string, req dto.CopyDefinitionRequest) (*dto.DiscountByDayDefinitionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	source, err := s.DiscountByDayRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	clone := source.Copy()
	if req.Name != "" {
		clone.Name = req.Name
	}
	clone.BaseModel = types.GetDefaultBaseModel(ctx)
	for _, d := range clone.DiscountsByDay {
		d.BaseModel = clone.BaseModel
	}

	if err := s.DiscountByDayRepo.Create(ctx, clone); err != nil {
		return nil, err
	}
	return &dto.DiscountByDayDefinitionResponse{Definition: clone}, nil
}
