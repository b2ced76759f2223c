package testutil

import (
	"context"

	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// SetupContext returns a context acting as the default test staff member
func SetupContext() context.Context {
	ctx := context.Background()
	ctx = types.SetActorID(ctx, types.DefaultActorID)
	ctx = types.SetRequestID(ctx, types.GenerateUUID())
	return ctx
}

// ContextWithActor returns a context acting as the given staff member
func ContextWithActor(actorID string) context.Context {
	return types.SetActorID(context.Background(), actorID)
}
