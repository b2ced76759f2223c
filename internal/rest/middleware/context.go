package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

const (
	headerRequestID = "X-Request-ID"
	headerActorID   = "X-Actor-Id"
)

// RequestIDMiddleware tags every request with an ID for log correlation
func RequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(headerRequestID)
	if requestID == "" {
		requestID = types.GenerateUUID()
	}

	ctx := types.SetRequestID(c.Request.Context(), requestID)
	c.Request = c.Request.WithContext(ctx)
	c.Header(headerRequestID, requestID)

	c.Next()
}

// ActorMiddleware reads the acting staff member from the X-Actor-Id header.
// Every mutating operation stamps this identity; an absent header falls back
// to the system actor so scripts keep working.
func ActorMiddleware(c *gin.Context) {
	actorID := c.GetHeader(headerActorID)
	if actorID == "" {
		actorID = types.DefaultActorID
	}

	ctx := types.SetActorID(c.Request.Context(), actorID)
	c.Request = c.Request.WithContext(ctx)

	c.Next()
}
