package ctxutil

import (
	"context"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/api/response"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/infrastructure/persistence"

	"github.com/gin-gonic/gin"
)

// WithRequestID copies the gin request ID into the request context so
// lower layers (persistence, outbox) can tag their logs with it.
func WithRequestID(ctx *gin.Context) context.Context {
	requestID := response.GetRequestID(ctx)
	return persistence.ContextWithRequestID(ctx.Request.Context(), requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	return persistence.RequestIDFromContext(ctx)
}
