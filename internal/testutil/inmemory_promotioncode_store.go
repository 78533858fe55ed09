package testutil

import (
	"context"

	"github.com/flexprice/rates/internal/domain/promotioncode"
	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/types"
)

// InMemoryPromotionCodeStore implements promotioncode.Repository
type InMemoryPromotionCodeStore struct {
	*InMemoryStore[*promotioncode.PromotionCode]
}

func NewInMemoryPromotionCodeStore() *InMemoryPromotionCodeStore {
	return &InMemoryPromotionCodeStore{
		InMemoryStore: NewInMemoryStore[*promotioncode.PromotionCode](),
	}
}

func (s *InMemoryPromotionCodeStore) Create(ctx context.Context, code *promotioncode.PromotionCode) error {
	if code == nil {
		return ierr.NewError("promotion code cannot be nil").Mark(ierr.ErrValidation)
	}
	if _, err := s.GetByCode(ctx, code.Code); err == nil {
		return ierr.NewError("promotion code already exists").
			WithHintf("Promotion code %s already exists", code.Code).
			Mark(ierr.ErrAlreadyExists)
	}
	return s.InMemoryStore.Create(ctx, code.ID, code)
}

func (s *InMemoryPromotionCodeStore) GetByCode(ctx context.Context, code string) (*promotioncode.PromotionCode, error) {
	normalized := promotioncode.NormalizeCode(code)
	codes, err := s.InMemoryStore.List(ctx, types.NewNoLimitQueryFilter(), func(ctx context.Context, p *promotioncode.PromotionCode, filter *types.QueryFilter) bool {
		return p.Code == normalized && statusFilterFn(ctx, p.TenantID, p.Status, filter)
	}, nil)
	if err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return nil, ierr.NewError("promotion code not found").
			WithHint("Promotion code not found").
			Mark(ierr.ErrNotFound)
	}
	return codes[0], nil
}

func (s *InMemoryPromotionCodeStore) List(ctx context.Context, filter *types.QueryFilter) ([]*promotioncode.PromotionCode, error) {
	return s.InMemoryStore.List(ctx, filter, func(ctx context.Context, p *promotioncode.PromotionCode, filter *types.QueryFilter) bool {
		return statusFilterFn(ctx, p.TenantID, p.Status, filter)
	}, func(i, j *promotioncode.PromotionCode) bool {
		return i.CreatedAt.After(j.CreatedAt)
	})
}
