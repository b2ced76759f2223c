package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/techAMA2025/NewCRM-sub003/internal/domain/schedule"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
)

// InMemoryObligationStore implements schedule.Repository. Rows are keyed by
// (client_id, month_number) like the real table.
type InMemoryObligationStore struct {
	*InMemoryStore[*schedule.MonthlyObligation]
}

// NewInMemoryObligationStore creates a new in-memory obligation repository
func NewInMemoryObligationStore() *InMemoryObligationStore {
	return &InMemoryObligationStore{
		InMemoryStore: NewInMemoryStore[*schedule.MonthlyObligation](),
	}
}

func obligationKey(clientID string, monthNumber int) string {
	return fmt.Sprintf("%s:%d", clientID, monthNumber)
}

func (m *InMemoryObligationStore) Create(ctx context.Context, o *schedule.MonthlyObligation) error {
	if o == nil {
		return ierr.NewError("obligation cannot be nil").
			WithHint("Obligation cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return m.InMemoryStore.Create(ctx, obligationKey(o.ClientID, o.MonthNumber), o)
}

func (m *InMemoryObligationStore) Get(ctx context.Context, clientID string, monthNumber int) (*schedule.MonthlyObligation, error) {
	return m.InMemoryStore.Get(ctx, obligationKey(clientID, monthNumber))
}

func (m *InMemoryObligationStore) Update(ctx context.Context, o *schedule.MonthlyObligation) error {
	if o == nil {
		return ierr.NewError("obligation cannot be nil").
			WithHint("Obligation cannot be nil").
			Mark(ierr.ErrValidation)
	}
	o.UpdatedAt = time.Now().UTC()
	return m.InMemoryStore.Update(ctx, obligationKey(o.ClientID, o.MonthNumber), o)
}

func (m *InMemoryObligationStore) ListByClient(ctx context.Context, clientID string) ([]*schedule.MonthlyObligation, error) {
	return m.InMemoryStore.List(ctx, nil,
		func(_ context.Context, o *schedule.MonthlyObligation, _ interface{}) bool {
			return o.ClientID == clientID
		},
		func(i, j *schedule.MonthlyObligation) bool {
			return i.MonthNumber < j.MonthNumber
		})
}
