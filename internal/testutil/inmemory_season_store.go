package testutil

import (
	"context"

	"github.com/flexprice/rates/internal/domain/season"
	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/types"
)

// InMemorySeasonStore implements season.Repository
type InMemorySeasonStore struct {
	*InMemoryStore[*season.Definition]
}

func NewInMemorySeasonStore() *InMemorySeasonStore {
	return &InMemorySeasonStore{
		InMemoryStore: NewInMemoryStore[*season.Definition](),
	}
}

func (s *InMemorySeasonStore) Create(ctx context.Context, definition *season.Definition) error {
	if definition == nil {
		return ierr.NewError("season definition cannot be nil").Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, definition.ID, definition)
}

// Get returns a copy with seasons ordered by start date
func (s *InMemorySeasonStore) Get(ctx context.Context, id string) (*season.Definition, error) {
	definition, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || !CheckTenant(ctx, definition.TenantID) {
		return nil, ierr.NewError("season definition not found").
			WithHint("Season definition not found").
			Mark(ierr.ErrNotFound)
	}

	result := *definition
	result.Seasons = definition.SortedByDate()
	return &result, nil
}

func (s *InMemorySeasonStore) List(ctx context.Context, filter *types.QueryFilter) ([]*season.Definition, error) {
	return s.InMemoryStore.List(ctx, filter, func(ctx context.Context, d *season.Definition, filter *types.QueryFilter) bool {
		return statusFilterFn(ctx, d.TenantID, d.Status, filter)
	}, func(i, j *season.Definition) bool {
		return i.CreatedAt.After(j.CreatedAt)
	})
}

func (s *InMemorySeasonStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
