package testutil

import (
	"context"
	"time"

	"github.com/techAMA2025/NewCRM-sub003/internal/domain/caserecord"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
)

// InMemoryCaseRecordStore implements caserecord.Repository
type InMemoryCaseRecordStore struct {
	*InMemoryStore[*caserecord.CaseRecord]
}

// NewInMemoryCaseRecordStore creates an in-memory case record repository
func NewInMemoryCaseRecordStore() *InMemoryCaseRecordStore {
	return &InMemoryCaseRecordStore{
		InMemoryStore: NewInMemoryStore[*caserecord.CaseRecord](),
	}
}

func (m *InMemoryCaseRecordStore) Create(ctx context.Context, c *caserecord.CaseRecord) error {
	if c == nil {
		return ierr.NewError("case cannot be nil").
			WithHint("Case cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return m.InMemoryStore.Create(ctx, c.ID, c)
}

func (m *InMemoryCaseRecordStore) Get(ctx context.Context, id string) (*caserecord.CaseRecord, error) {
	return m.InMemoryStore.Get(ctx, id)
}

func (m *InMemoryCaseRecordStore) Update(ctx context.Context, c *caserecord.CaseRecord) error {
	if c == nil {
		return ierr.NewError("case cannot be nil").
			WithHint("Case cannot be nil").
			Mark(ierr.ErrValidation)
	}
	c.UpdatedAt = time.Now().UTC()
	return m.InMemoryStore.Update(ctx, c.ID, c)
}

func (m *InMemoryCaseRecordStore) ListByClient(ctx context.Context, clientID string) ([]*caserecord.CaseRecord, error) {
	return m.InMemoryStore.List(ctx, nil,
		func(_ context.Context, c *caserecord.CaseRecord, _ interface{}) bool {
			return c.ClientID == clientID
		},
		func(i, j *caserecord.CaseRecord) bool {
			return i.CreatedAt.After(j.CreatedAt)
		})
}
