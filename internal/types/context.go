package types

import "context"

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxActorID   ContextKey = "ctx_actor_id"

	// DefaultActorID is used by scripts and tests that have no authenticated staff member
	DefaultActorID = "00000000-0000-0000-0000-000000000000"
)

// GetActorID returns the identity of the staff member performing the current
// request. Every mutating call reads the actor from here; there is no ambient
// session state anywhere else in the codebase.
func GetActorID(ctx context.Context) string {
	if actorID, ok := ctx.Value(CtxActorID).(string); ok {
		return actorID
	}
	return ""
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// SetActorID sets the acting staff member's ID in the context
func SetActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, CtxActorID, actorID)
}

// SetRequestID sets the request ID in the context
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxRequestID, requestID)
}
