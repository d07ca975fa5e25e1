package middleware

import (
	"context"
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pramanandasarkar02/toolsai/internal/pkg/response"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
)

// ApiKeyMiddleware authenticates server-to-server calls with an
// X-API-Key header. Expired keys are rejected even while still marked
// active; last-used is touched best-effort.
func ApiKeyMiddleware(apiKeyRepo repository.ApiKeyRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		value := c.GetHeader("X-API-Key")
		if value == "" {
			response.Fail(c, response.Unauthorized, "missing API key")
			c.Abort()
			return
		}

		key, err := apiKeyRepo.GetActiveByValue(c.Request.Context(), value)
		if err != nil {
			response.Fail(c, response.InternalServerError, "internal server error")
			c.Abort()
			return
		}
		if key == nil || (key.ExpiresAt != nil && key.ExpiresAt.Before(time.Now())) {
			response.Fail(c, response.Unauthorized, "invalid API key")
			c.Abort()
			return
		}

		if err := apiKeyRepo.TouchLastUsed(c.Request.Context(), key.ID, time.Now()); err != nil {
			log.WarnContext(c.Request.Context(), "touch api key last used failed", "keyID", key.ID, "err", err)
		}

		c.Set("user_id", key.UserID)

		newCtx := context.WithValue(c.Request.Context(), "user_id", key.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
