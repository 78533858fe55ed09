package discountbyday

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, definition *Definition) error
	// Get returns the definition with entries ordered by from_days
	Get(ctx context.Context, id string) (*Definition, error)
	Delete(ctx context.Context, id string) error
}
