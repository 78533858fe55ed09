package testutil

import (
	"context"

	"github.com/flexprice/rates/internal/postgres"
)

var _ postgres.IClient = (*MockPostgresClient)(nil)

// MockPostgresClient runs transactional work directly. RolledBack counts the
// calls whose function returned an error.
type MockPostgresClient struct {
	RolledBack int
}

func NewMockPostgresClient() *MockPostgresClient {
	return &MockPostgresClient{}
}

func (c *MockPostgresClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		c.RolledBack++
		return err
	}
	return nil
}
