package season

import (
	"context"

	"github.com/flexprice/rates/internal/types"
)

// Repository stores season definitions together with their seasons
type Repository interface {
	// Create stores the definition and its seasons atomically
	Create(ctx context.Context, definition *Definition) error
	// Get returns the definition with seasons ordered by from_month, from_day
	Get(ctx context.Context, id string) (*Definition, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Definition, error)
	// Delete removes the definition and cascades to its seasons
	Delete(ctx context.Context, id string) error
}
