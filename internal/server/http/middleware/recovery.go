package middleware

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/accounts/internal/server/http/dto"
)

// Recovery turns a handler panic into an internal_error response with status.
func Recovery(logger *slog.Logger, status int) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			slog.String("path", c.Request.URL.Path),
			slog.String("request_id", RequestIDFrom(c)),
			slog.String("panic", fmt.Sprint(recovered)),
		)
		c.AbortWithStatusJSON(status, dto.AccountResponse{Status: dto.OutcomeInternalError, Message: "internal server error"})
	})
}
