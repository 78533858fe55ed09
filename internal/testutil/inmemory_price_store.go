package testutil

import (
	"context"
	"sort"

	"github.com/flexprice/rates/internal/domain/price"
	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
)

// InMemoryPriceStore implements price.Repository
type InMemoryPriceStore struct {
	*InMemoryStore[*price.Price]
}

func NewInMemoryPriceStore() *InMemoryPriceStore {
	return &InMemoryPriceStore{
		InMemoryStore: NewInMemoryStore[*price.Price](),
	}
}

func (s *InMemoryPriceStore) CreateBulk(ctx context.Context, prices []*price.Price) error {
	for _, p := range prices {
		if err := s.InMemoryStore.Create(ctx, p.ID, p); err != nil {
			return err
		}
	}
	return nil
}

func (s *InMemoryPriceStore) ListByPriceDefinition(ctx context.Context, priceDefinitionID string) ([]*price.Price, error) {
	prices, err := s.InMemoryStore.List(ctx, types.NewNoLimitQueryFilter(), func(ctx context.Context, p *price.Price, filter *types.QueryFilter) bool {
		return p.PriceDefinitionID == priceDefinitionID && statusFilterFn(ctx, p.TenantID, p.Status, filter)
	}, nil)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(prices, func(i, j int) bool {
		if prices[i].GetSeasonID() != prices[j].GetSeasonID() {
			return prices[i].GetSeasonID() < prices[j].GetSeasonID()
		}
		return prices[i].Units < prices[j].Units
	})
	return prices, nil
}

func (s *InMemoryPriceStore) DeleteByPriceDefinition(ctx context.Context, priceDefinitionID string) error {
	prices, err := s.ListByPriceDefinition(ctx, priceDefinitionID)
	if err != nil {
		return err
	}
	for _, id := range lo.Map(prices, func(p *price.Price, _ int) string { return p.ID }) {
		if err := s.InMemoryStore.Delete(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
