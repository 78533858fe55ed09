package price

import (
	"context"
)

type Repository interface {
	// CreateBulk inserts every row in one statement
	CreateBulk(ctx context.Context, prices []*Price) error
	ListByPriceDefinition(ctx context.Context, priceDefinitionID string) ([]*Price, error)
	DeleteByPriceDefinition(ctx context.Context, priceDefinitionID string) error
}
