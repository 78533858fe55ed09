package promotioncode

import (
	"context"

	"github.com/flexprice/rates/internal/types"
)

type Repository interface {
	Create(ctx context.Context, code *PromotionCode) error
	// GetByCode returns ErrNotFound when no code matches
	GetByCode(ctx context.Context, code string) (*PromotionCode, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*PromotionCode, error)
}
