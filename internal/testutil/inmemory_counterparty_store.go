package testutil

import (
	"context"

	"github.com/techAMA2025/NewCRM-sub003/internal/domain/counterparty"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
)

// InMemoryCounterpartyStore implements counterparty.Repository
type InMemoryCounterpartyStore struct {
	*InMemoryStore[*counterparty.Record]
}

// NewInMemoryCounterpartyStore creates an in-memory counterparty registry
func NewInMemoryCounterpartyStore() *InMemoryCounterpartyStore {
	return &InMemoryCounterpartyStore{
		InMemoryStore: NewInMemoryStore[*counterparty.Record](),
	}
}

func (m *InMemoryCounterpartyStore) Create(ctx context.Context, r *counterparty.Record) error {
	if r == nil {
		return ierr.NewError("counterparty cannot be nil").
			WithHint("Counterparty cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return m.InMemoryStore.Create(ctx, r.Name, r)
}

func (m *InMemoryCounterpartyStore) GetByName(ctx context.Context, name string) (*counterparty.Record, error) {
	return m.InMemoryStore.Get(ctx, name)
}

func (m *InMemoryCounterpartyStore) List(ctx context.Context) ([]*counterparty.Record, error) {
	return m.InMemoryStore.List(ctx, nil, nil,
		func(i, j *counterparty.Record) bool {
			return i.Name < j.Name
		})
}
