package testutil

import (
	"context"

	"github.com/flexprice/rates/internal/domain/pricedefinition"
	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/types"
)

// InMemoryPriceDefinitionStore implements pricedefinition.Repository
type InMemoryPriceDefinitionStore struct {
	*InMemoryStore[*pricedefinition.PriceDefinition]
}

func NewInMemoryPriceDefinitionStore() *InMemoryPriceDefinitionStore {
	return &InMemoryPriceDefinitionStore{
		InMemoryStore: NewInMemoryStore[*pricedefinition.PriceDefinition](),
	}
}

func priceDefinitionFilterFn(ctx context.Context, p *pricedefinition.PriceDefinition, filter *types.QueryFilter) bool {
	return p != nil && statusFilterFn(ctx, p.TenantID, p.Status, filter)
}

func priceDefinitionSortFn(i, j *pricedefinition.PriceDefinition) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryPriceDefinitionStore) Create(ctx context.Context, p *pricedefinition.PriceDefinition) error {
	if p == nil {
		return ierr.NewError("price definition cannot be nil").Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, p.ID, p)
}

func (s *InMemoryPriceDefinitionStore) Get(ctx context.Context, id string) (*pricedefinition.PriceDefinition, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || !CheckTenant(ctx, p.TenantID) {
		return nil, ierr.NewError("price definition not found").
			WithHint("Price definition not found").
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (s *InMemoryPriceDefinitionStore) List(ctx context.Context, filter *types.QueryFilter) ([]*pricedefinition.PriceDefinition, error) {
	return s.InMemoryStore.List(ctx, filter, priceDefinitionFilterFn, priceDefinitionSortFn)
}

func (s *InMemoryPriceDefinitionStore) Update(ctx context.Context, p *pricedefinition.PriceDefinition) error {
	return s.InMemoryStore.Update(ctx, p.ID, p)
}

func (s *InMemoryPriceDefinitionStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
