package approval

import (
	"context"

	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// Repository defines the interface for approval request persistence,
// shared by both workflow instantiations.
type Repository[P Payload[P]] interface {
	Create(ctx context.Context, r *Request[P]) error
	Get(ctx context.Context, id string) (*Request[P], error)
	Update(ctx context.Context, r *Request[P]) error
	// Delete hard-removes the record; already-posted ledger entries are
	// deliberately left in place.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.RequestFilter) ([]*Request[P], error)
	Count(ctx context.Context, filter *types.RequestFilter) (int, error)
}
