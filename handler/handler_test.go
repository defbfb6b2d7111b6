package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/workforce/data/repository/memory"
	"github.com/ncobase/workforce/logging/logger"
	"github.com/ncobase/workforce/security/jwt"
	"github.com/ncobase/workforce/service"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type stubHealth map[string]any

func (s stubHealth) Health(context.Context) map[string]any { return s }

type testServer struct {
	router    *gin.Engine
	employees *memory.EmployeeRepository
	users     *memory.UserRepository
	tokens    *jwt.TokenManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := logger.Discard()
	ts := &testServer{
		employees: memory.NewEmployeeRepository(),
		users:     memory.NewUserRepository(),
		tokens:    jwt.NewTokenManager(testSecret, time.Hour),
	}
	svc := &service.Service{
		Employee: service.NewEmployeeService(ts.employees, log),
		User:     service.NewUserService(ts.users, ts.tokens, log),
	}
	ts.router = gin.New()
	NewHandler(svc, stubHealth{"status": "healthy"}, log).RegisterRoutes(ts.router)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	svc := &service.Service{}
	router := gin.New()
	NewHandler(svc, stubHealth{"status": "degraded"}, logger.Discard()).RegisterRoutes(router)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("degraded status = %d, want 503", rec.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)
	if rec := ts.do(t, http.MethodGet, "/nope", ""); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestMalformedJSON(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodPost, "/employees", `{"first_name":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decode[map[string][]map[string]any](t, rec)
	if len(body["errors"]) != 1 || body["errors"][0]["path"] != "body" {
		t.Errorf("body = %s", rec.Body)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"location":"body"`)) {
		t.Errorf("field error missing location: %s", rec.Body)
	}
}
