package schedule

import "context"

// Repository defines the interface for obligation persistence.
// Get returns ErrNotFound for months that were never materialized;
// synthesizing defaults for such months is the service's concern.
type Repository interface {
	Create(ctx context.Context, o *MonthlyObligation) error
	Get(ctx context.Context, clientID string, monthNumber int) (*MonthlyObligation, error)
	Update(ctx context.Context, o *MonthlyObligation) error
	ListByClient(ctx context.Context, clientID string) ([]*MonthlyObligation, error)
}
