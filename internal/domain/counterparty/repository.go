package counterparty

import "context"

// Repository defines the interface for the counterparty registry.
// The registry is reference data: there is no update or delete.
type Repository interface {
	Create(ctx context.Context, r *Record) error
	GetByName(ctx context.Context, name string) (*Record, error)
	List(ctx context.Context) ([]*Record, error)
}
