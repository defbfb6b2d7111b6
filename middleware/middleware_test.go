package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/workforce/ctxutil"
	"github.com/ncobase/workforce/logging/logger"
	"github.com/sirupsen/logrus"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTraceGeneratesID(t *testing.T) {
	r := gin.New()
	r.Use(Trace())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = ctxutil.GetTraceID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	got := rec.Header().Get(TraceHeader)
	if got == "" || got != seen {
		t.Errorf("trace header = %q, context trace id = %q", got, seen)
	}
}

func TestTraceReusesIncomingID(t *testing.T) {
	r := gin.New()
	r.Use(Trace())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceHeader, "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get(TraceHeader); got != "abc-123" {
		t.Errorf("trace header = %q, want abc-123", got)
	}
}

func TestTraceRejectsUnsafeID(t *testing.T) {
	r := gin.New()
	r.Use(Trace())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, incoming := range []string{
		strings.Repeat("a", 65),
		"abc def",
		"id\"},{\"level\":\"error",
		"ünïcode",
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(TraceHeader, incoming)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		got := rec.Header().Get(TraceHeader)
		if got == incoming || got == "" {
			t.Errorf("incoming %q: trace header = %q, want a generated id", incoming, got)
		}
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, logrus.DebugLevel)

	r := gin.New()
	r.Use(Trace(), Logger(log))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	tests := map[string]string{"/ok": "info", "/missing": "warning", "/boom": "error"}
	for path, level := range tests {
		buf.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))

		var entry map[string]any
		if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
			t.Fatalf("%s: decode log entry %q: %v", path, buf.String(), err)
		}
		if entry["level"] != level || entry["path"] != path || entry["trace_id"] == "" {
			t.Errorf("%s: entry = %v, want level %s", path, entry, level)
		}
	}
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(Recovery(logger.NewWithWriter(&buf, logrus.ErrorLevel)))
	r.GET("/", func(c *gin.Context) { panic("kaboom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"message":"Server error"}` {
		t.Errorf("body = %s", body)
	}
	if !strings.Contains(buf.String(), "kaboom") {
		t.Errorf("panic not logged: %s", buf.String())
	}
}
