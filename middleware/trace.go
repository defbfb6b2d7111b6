// Package middleware provides the gin middleware shared by every route.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ncobase/workforce/ctxutil"
)

const (
	// TraceHeader carries the request trace id in both directions.
	TraceHeader = "X-Request-Id"

	maxTraceIDLen = 64
)

// Trace binds the gin context and a trace id to the request context. An
// incoming X-Request-Id is reused when it is a plausible id, otherwise a new
// id is generated.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := ctxutil.WithGinContext(c.Request.Context(), c)
		if traceID := c.GetHeader(TraceHeader); validTraceID(traceID) {
			ctx = ctxutil.SetTraceID(ctx, traceID)
		}

		ctx, traceID := ctxutil.EnsureTraceID(ctx)
		c.Request = c.Request.WithContext(ctx)
		c.Header(TraceHeader, traceID)

		c.Next()
	}
}

// validTraceID accepts up to 64 letters, digits, '-', '_' and '.'.
func validTraceID(s string) bool {
	if s == "" || len(s) > maxTraceIDLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		case ch == '-', ch == '_', ch == '.':
		default:
			return false
		}
	}
	return true
}
