package client

import (
	"context"

	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// Repository defines the interface for client persistence
type Repository interface {
	Create(ctx context.Context, c *Client) error
	Get(ctx context.Context, id string) (*Client, error)
	Update(ctx context.Context, c *Client) error
	List(ctx context.Context, filter *types.ClientFilter) ([]*Client, error)
	Count(ctx context.Context, filter *types.ClientFilter) (int, error)
}
