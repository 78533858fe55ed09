package discount

import (
	"context"
	"time"

	"github.com/flexprice/rates/internal/types"
)

type Repository interface {
	Create(ctx context.Context, discount *Discount) error
	List(ctx context.Context, filter *types.QueryFilter) ([]*Discount, error)
	// ListActiveAt returns the discounts whose window contains date
	ListActiveAt(ctx context.Context, date time.Time) ([]*Discount, error)
}
