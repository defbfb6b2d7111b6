package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/workforce/ctxutil"
	"github.com/ncobase/workforce/logging/logger"
)

// Logger logs one entry per request once the handler chain has finished.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		kv := []any{
			"method", method,
			"path", path,
			"status", status,
			"duration", time.Since(start).String(),
			"ip", ctxutil.GetClientIP(ctx),
		}
		if len(c.Errors) > 0 {
			kv = append(kv, "errors", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error(ctx, "HTTP request", kv...)
		case status >= http.StatusBadRequest:
			log.Warn(ctx, "HTTP request", kv...)
		default:
			log.Info(ctx, "HTTP request", kv...)
		}
	}
}
