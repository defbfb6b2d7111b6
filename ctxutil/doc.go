// Package ctxutil provides helpers for request-scoped values shared between
// the HTTP layer, services and the logger.
//
// Values are stored on the standard context and, when a *gin.Context is
// attached, mirrored onto it so gin handlers can read them with c.Get:
//
//	ctx := ctxutil.WithGinContext(c.Request.Context(), c)
//	ctx, traceID := ctxutil.EnsureTraceID(ctx)
//	c.Request = c.Request.WithContext(ctx)
//
// The logger reads the trace id back with GetTraceID so every entry written
// while serving a request carries the same trace_id field.
package ctxutil
