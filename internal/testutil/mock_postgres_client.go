package testutil

import (
	"context"

	"github.com/techAMA2025/NewCRM-sub003/internal/logger"
	"github.com/techAMA2025/NewCRM-sub003/internal/postgres"
)

var _ postgres.IClient = (*MockPostgresClient)(nil)

// MockPostgresClient satisfies postgres.IClient for service tests backed by
// in-memory stores. WithTx just runs the function: the in-memory stores have
// no transaction semantics to coordinate.
type MockPostgresClient struct {
	logger *logger.Logger
}

// NewMockPostgresClient creates a new mock postgres client
func NewMockPostgresClient(logger *logger.Logger) postgres.IClient {
	return &MockPostgresClient{logger: logger}
}

func (c *MockPostgresClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// Querier is never reached in service tests; the repositories under test are
// in-memory stores that do not issue SQL.
func (c *MockPostgresClient) Querier(ctx context.Context) postgres.Querier {
	return nil
}

func (c *MockPostgresClient) Close() error {
	return nil
}
