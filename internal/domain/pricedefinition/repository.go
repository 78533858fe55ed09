package pricedefinition

import (
	"context"

	"github.com/flexprice/rates/internal/types"
)

type Repository interface {
	Create(ctx context.Context, definition *PriceDefinition) error
	Get(ctx context.Context, id string) (*PriceDefinition, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*PriceDefinition, error)
	Update(ctx context.Context, definition *PriceDefinition) error
	Delete(ctx context.Context, id string) error
}
