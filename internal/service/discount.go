package service

import (
	"context"
	"time"

	"github.com/flexprice/rates/internal/api/dto"
	"github.com/flexprice/rates/internal/cache"
	"github.com/flexprice/rates/internal/domain/discount"
	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
)

type DiscountService interface {
	CreateDiscount(ctx context.Context, req dto.CreateDiscountRequest) (*dto.DiscountResponse, error)
	// HasActiveDiscount reports whether any discount window contains date
	HasActiveDiscount(ctx context.Context, date time.Time) (bool, error)
	GetActiveDiscounts(ctx context.Context, date time.Time) (*dto.ActiveDiscountsResponse, error)
}

type discountService struct {
	ServiceParams
}

func NewDiscountService(params ServiceParams) DiscountService {
	return &discountService{
		ServiceParams: params,
	}
}

func (s *discountService) CreateDiscount(ctx context.Context, req dto.CreateDiscountRequest) (*dto.DiscountResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d, err := req.ToDiscount(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.DiscountRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	s.Cache.DeleteByPrefix(ctx, cache.GenerateKey(cache.PrefixActiveDiscounts, types.GetTenantID(ctx)))

	return &dto.DiscountResponse{Discount: d}, nil
}

func (s *discountService) activeAt(ctx context.Context, date time.Time) ([]*discount.Discount, error) {
	date = types.TruncateToDay(date)
	key := cache.GenerateKey(cache.PrefixActiveDiscounts, types.GetTenantID(ctx), types.FormatDate(date))
	if cached, found := s.Cache.Get(ctx, key); found {
		if discounts, ok := cached.([]*discount.Discount); ok {
			return discounts, nil
		}
	}

	discounts, err := s.DiscountRepo.ListActiveAt(ctx, date)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, key, discounts, 0)
	return discounts, nil
}

func (s *discountService) HasActiveDiscount(ctx context.Context, date time.Time) (bool, error) {
	discounts, err := s.activeAt(ctx, date)
	if err != nil {
		return false, err
	}
	return discount.IsActive(discounts, date), nil
}

func (s *discountService) GetActiveDiscounts(ctx context.Context, date time.Time) (*dto.ActiveDiscountsResponse, error) {
	discounts, err := s.activeAt(ctx, date)
	if err != nil {
		return nil, err
	}
	active := discount.ActiveAt(discounts, date)
	return &dto.ActiveDiscountsResponse{
		Date:   types.FormatDate(date),
		Active: len(active) > 0,
		Discounts: lo.Map(active, func(d *discount.Discount, _ int) *dto.DiscountResponse {
			return &dto.DiscountResponse{Discount: d}
		}),
	}, nil
}
