package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"posimarket-core/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

type CronAuthMiddleware struct {
	secret string
}

func NewCronAuthMiddleware(cfg config.MarketConfig) *CronAuthMiddleware {
	if cfg.CronSecretToken == "" {
		slog.Warn("CRON_SECRET_TOKEN not set, cleanup endpoint is open")
	}
	return &CronAuthMiddleware{secret: cfg.CronSecretToken}
}

func (m *CronAuthMiddleware) RequireCronToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.secret == "" {
			c.Next()
			return
		}

		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(m.secret)) != 1 {
			slog.Warn("Cron token rejected", "client_ip", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid cron token"},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
