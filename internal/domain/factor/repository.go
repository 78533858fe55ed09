package factor

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, definition *Definition) error
	Get(ctx context.Context, id string) (*Definition, error)
	Delete(ctx context.Context, id string) error
}
