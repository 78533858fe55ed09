package service

import (
	"context"

	"github.com/flexprice/rates/internal/api/dto"
	"github.com/flexprice/rates/internal/domain/promotioncode"
	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
)

type PromotionCodeService interface {
	CreatePromotionCode(ctx context.Context, req dto.CreatePromotionCodeRequest) (*dto.PromotionCodeResponse, error)
	ListPromotionCodes(ctx context.Context, filter *types.QueryFilter) (*dto.ListPromotionCodesResponse, error)
	// ValidateCode reports whether code is redeemable today for a booking in
	// source. Unknown codes are invalid, not errors.
	ValidateCode(ctx context.Context, code string, source *types.DateRange) (bool, error)
}

type promotionCodeService struct {
	ServiceParams
}

func NewPromotionCodeService(params ServiceParams) PromotionCodeService {
	return &promotionCodeService{
		ServiceParams: params,
	}
}

func (s *promotionCodeService) CreatePromotionCode(ctx context.Context, req dto.CreatePromotionCodeRequest) (*dto.PromotionCodeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	code, err := req.ToPromotionCode(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.PromotionCodeRepo.Create(ctx, code); err != nil {
		return nil, err
	}

	s.Logger.WithContext(ctx).Infow("created promotion code",
		"promotion_code_id", code.ID,
		"code", code.Code,
		"discount_type", code.DiscountType)

	return &dto.PromotionCodeResponse{PromotionCode: code}, nil
}

func (s *promotionCodeService) ListPromotionCodes(ctx context.Context, filter *types.QueryFilter) (*dto.ListPromotionCodesResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	codes, err := s.PromotionCodeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := types.NewListResponse(lo.Map(codes, func(code *promotioncode.PromotionCode, _ int) *dto.PromotionCodeResponse {
		return &dto.PromotionCodeResponse{PromotionCode: code}
	}), filter)
	return &resp, nil
}

func (s *promotionCodeService) ValidateCode(ctx context.Context, code string, source *types.DateRange) (bool, error) {
	_, valid, err := findValidPromotionCode(ctx, s.ServiceParams, code, source)
	return valid, err
}
