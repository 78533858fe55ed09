package testutil

import (
	"context"

	"github.com/flexprice/rates/internal/domain/discountbyday"
	ierr "github.com/flexprice/rates/internal/errors"
)

// InMemoryDiscountByDayStore implements discountbyday.Repository
type InMemoryDiscountByDayStore struct {
	*InMemoryStore[*discountbyday.Definition]
}

func NewInMemoryDiscountByDayStore() *InMemoryDiscountByDayStore {
	return &InMemoryDiscountByDayStore{
		InMemoryStore: NewInMemoryStore[*discountbyday.Definition](),
	}
}

func (s *InMemoryDiscountByDayStore) Create(ctx context.Context, definition *discountbyday.Definition) error {
	if definition == nil {
		return ierr.NewError("discount by day definition cannot be nil").Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, definition.ID, definition)
}

func (s *InMemoryDiscountByDayStore) Get(ctx context.Context, id string) (*discountbyday.Definition, error) {
	definition, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || !CheckTenant(ctx, definition.TenantID) {
		return nil, ierr.NewError("discount by day definition not found").
			WithHint("Discount by day definition not found").
			Mark(ierr.ErrNotFound)
	}
	return definition, nil
}

func (s *InMemoryDiscountByDayStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
