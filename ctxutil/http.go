package ctxutil

import (
	"context"
	"net"
	"net/http"
	"strings"
)

// GetClientIP returns the caller address for the request bound to ctx.
func GetClientIP(ctx context.Context) string {
	if c, ok := GetGinContext(ctx); ok {
		if ip := c.ClientIP(); ip != "" {
			return ip
		}
		return clientIPFromRequest(c.Request)
	}
	return "unknown"
}

func clientIPFromRequest(req *http.Request) string {
	if req == nil {
		return "unknown"
	}
	if forwarded := req.Header.Get("X-Forwarded-For"); forwarded != "" {
		if first := strings.TrimSpace(strings.Split(forwarded, ",")[0]); first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(req.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}
