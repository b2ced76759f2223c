package caserecord

import "context"

// Repository defines the interface for case record persistence
type Repository interface {
	Create(ctx context.Context, c *CaseRecord) error
	Get(ctx context.Context, id string) (*CaseRecord, error)
	Update(ctx context.Context, c *CaseRecord) error
	ListByClient(ctx context.Context, clientID string) ([]*CaseRecord, error)
}
