package testutil

import (
	"context"
	"strings"
	"time"

	"github.com/techAMA2025/NewCRM-sub003/internal/domain/client"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// InMemoryClientStore implements client.Repository
type InMemoryClientStore struct {
	*InMemoryStore[*client.Client]
}

// NewInMemoryClientStore creates a new in-memory client repository
func NewInMemoryClientStore() *InMemoryClientStore {
	return &InMemoryClientStore{
		InMemoryStore: NewInMemoryStore[*client.Client](),
	}
}

func (m *InMemoryClientStore) Create(ctx context.Context, c *client.Client) error {
	if c == nil {
		return ierr.NewError("client cannot be nil").
			WithHint("Client cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return m.InMemoryStore.Create(ctx, c.ID, c)
}

func (m *InMemoryClientStore) Get(ctx context.Context, id string) (*client.Client, error) {
	c, err := m.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status == types.StatusDeleted {
		return nil, ierr.NewError("client not found").
			WithHintf("Client %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	return c, nil
}

func (m *InMemoryClientStore) Update(ctx context.Context, c *client.Client) error {
	if c == nil {
		return ierr.NewError("client cannot be nil").
			WithHint("Client cannot be nil").
			Mark(ierr.ErrValidation)
	}
	c.UpdatedAt = time.Now().UTC()
	return m.InMemoryStore.Update(ctx, c.ID, c)
}

func (m *InMemoryClientStore) List(ctx context.Context, filter *types.ClientFilter) ([]*client.Client, error) {
	return m.InMemoryStore.List(ctx, filter, clientFilterFn, clientSortFn)
}

func (m *InMemoryClientStore) Count(ctx context.Context, filter *types.ClientFilter) (int, error) {
	return m.InMemoryStore.Count(ctx, filter, clientFilterFn)
}

func clientFilterFn(_ context.Context, c *client.Client, filter interface{}) bool {
	f, ok := filter.(*types.ClientFilter)
	if !ok {
		return true
	}
	if c.Status != f.GetStatus() {
		return false
	}
	if f.AllocationType != nil && c.AllocationType != *f.AllocationType {
		return false
	}
	if f.NameContains != nil && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(*f.NameContains)) {
		return false
	}
	return true
}

func clientSortFn(i, j *client.Client) bool {
	return i.CreatedAt.After(j.CreatedAt)
}
