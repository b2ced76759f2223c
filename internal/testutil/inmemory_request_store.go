package testutil

import (
	"context"
	"time"

	"github.com/techAMA2025/NewCRM-sub003/internal/domain/approval"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// InMemoryRequestStore implements approval.Repository for any payload type.
// One instance backs the payment store, another the expense store.
type InMemoryRequestStore[P approval.Payload[P]] struct {
	*InMemoryStore[*approval.Request[P]]
	// clientID extracts the filterable client reference, nil when the
	// payload has no client linkage
	clientID func(P) string
}

// NewInMemoryPaymentRequestStore creates an in-memory payment request repository
func NewInMemoryPaymentRequestStore() *InMemoryRequestStore[approval.PaymentPayload] {
	return &InMemoryRequestStore[approval.PaymentPayload]{
		InMemoryStore: NewInMemoryStore[*approval.Request[approval.PaymentPayload]](),
		clientID: func(p approval.PaymentPayload) string {
			return p.ClientID
		},
	}
}

// NewInMemoryExpenseRequestStore creates an in-memory expense request repository
func NewInMemoryExpenseRequestStore() *InMemoryRequestStore[approval.ExpensePayload] {
	return &InMemoryRequestStore[approval.ExpensePayload]{
		InMemoryStore: NewInMemoryStore[*approval.Request[approval.ExpensePayload]](),
	}
}

func (m *InMemoryRequestStore[P]) Create(ctx context.Context, r *approval.Request[P]) error {
	if r == nil {
		return ierr.NewError("request cannot be nil").
			WithHint("Request cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return m.InMemoryStore.Create(ctx, r.ID, r)
}

func (m *InMemoryRequestStore[P]) Get(ctx context.Context, id string) (*approval.Request[P], error) {
	return m.InMemoryStore.Get(ctx, id)
}

func (m *InMemoryRequestStore[P]) Update(ctx context.Context, r *approval.Request[P]) error {
	if r == nil {
		return ierr.NewError("request cannot be nil").
			WithHint("Request cannot be nil").
			Mark(ierr.ErrValidation)
	}
	r.UpdatedAt = time.Now().UTC()
	return m.InMemoryStore.Update(ctx, r.ID, r)
}

func (m *InMemoryRequestStore[P]) Delete(ctx context.Context, id string) error {
	return m.InMemoryStore.Delete(ctx, id)
}

func (m *InMemoryRequestStore[P]) List(ctx context.Context, filter *types.RequestFilter) ([]*approval.Request[P], error) {
	return m.InMemoryStore.List(ctx, filter, m.filterFn, requestSortFn[P])
}

func (m *InMemoryRequestStore[P]) Count(ctx context.Context, filter *types.RequestFilter) (int, error) {
	return m.InMemoryStore.Count(ctx, filter, m.filterFn)
}

func (m *InMemoryRequestStore[P]) filterFn(_ context.Context, r *approval.Request[P], filter interface{}) bool {
	f, ok := filter.(*types.RequestFilter)
	if !ok {
		return true
	}
	if f.Status != nil && r.ApprovalStatus != *f.Status {
		return false
	}
	if f.RequestedBy != nil && r.RequestedBy != *f.RequestedBy {
		return false
	}
	if f.ClientID != nil {
		if m.clientID == nil || m.clientID(r.Payload) != *f.ClientID {
			return false
		}
	}
	return true
}

func requestSortFn[P approval.Payload[P]](i, j *approval.Request[P]) bool {
	return i.CreatedAt.After(j.CreatedAt)
}
