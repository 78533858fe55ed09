package testutil

import (
	"context"

	"github.com/flexprice/rates/internal/domain/factor"
	ierr "github.com/flexprice/rates/internal/errors"
)

// InMemoryFactorStore implements factor.Repository
type InMemoryFactorStore struct {
	*InMemoryStore[*factor.Definition]
}

func NewInMemoryFactorStore() *InMemoryFactorStore {
	return &InMemoryFactorStore{
		InMemoryStore: NewInMemoryStore[*factor.Definition](),
	}
}

func (s *InMemoryFactorStore) Create(ctx context.Context, definition *factor.Definition) error {
	if definition == nil {
		return ierr.NewError("factor definition cannot be nil").Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, definition.ID, definition)
}

func (s *InMemoryFactorStore) Get(ctx context.Context, id string) (*factor.Definition, error) {
	definition, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || !CheckTenant(ctx, definition.TenantID) {
		return nil, ierr.NewError("factor definition not found").
			WithHint("Factor definition not found").
			Mark(ierr.ErrNotFound)
	}
	return definition, nil
}

func (s *InMemoryFactorStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
