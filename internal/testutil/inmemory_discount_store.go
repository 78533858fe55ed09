package testutil

import (
	"context"
	"time"

	"github.com/flexprice/rates/internal/domain/discount"
	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/types"
)

// InMemoryDiscountStore implements discount.Repository
type InMemoryDiscountStore struct {
	*InMemoryStore[*discount.Discount]
}

func NewInMemoryDiscountStore() *InMemoryDiscountStore {
	return &InMemoryDiscountStore{
		InMemoryStore: NewInMemoryStore[*discount.Discount](),
	}
}

func discountFilterFn(ctx context.Context, d *discount.Discount, filter *types.QueryFilter) bool {
	return d != nil && statusFilterFn(ctx, d.TenantID, d.Status, filter)
}

func discountSortFn(i, j *discount.Discount) bool {
	return i.DateFrom.Before(j.DateFrom)
}

func (s *InMemoryDiscountStore) Create(ctx context.Context, d *discount.Discount) error {
	if d == nil {
		return ierr.NewError("discount cannot be nil").Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, d.ID, d)
}

func (s *InMemoryDiscountStore) List(ctx context.Context, filter *types.QueryFilter) ([]*discount.Discount, error) {
	return s.InMemoryStore.List(ctx, filter, discountFilterFn, discountSortFn)
}

func (s *InMemoryDiscountStore) ListActiveAt(ctx context.Context, date time.Time) ([]*discount.Discount, error) {
	all, err := s.List(ctx, types.NewNoLimitQueryFilter())
	if err != nil {
		return nil, err
	}
	return discount.ActiveAt(all, date), nil
}
