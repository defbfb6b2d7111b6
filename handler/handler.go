// Package handler provides the HTTP handlers of the employee and user APIs.
package handler

import (
	"context"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/workforce/ecode"
	"github.com/ncobase/workforce/logging/logger"
	"github.com/ncobase/workforce/net/resp"
	"github.com/ncobase/workforce/service"
	"github.com/ncobase/workforce/validation/validator"
)

// HealthChecker reports the state of the backing store.
type HealthChecker interface {
	Health(ctx context.Context) map[string]any
}

// Handler aggregates all HTTP handlers.
type Handler struct {
	Employee *EmployeeHandler
	User     *UserHandler
	health   HealthChecker
	logger   *logger.Logger
}

// NewHandler creates a new handler instance with all sub-handlers initialized.
func NewHandler(svc *service.Service, health HealthChecker, logger *logger.Logger) *Handler {
	return &Handler{
		Employee: NewEmployeeHandler(svc.Employee, logger),
		User:     NewUserHandler(svc.User, logger),
		health:   health,
		logger:   logger,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	employees := r.Group("/employees")
	{
		employees.GET("", h.Employee.List)
		employees.POST("", h.Employee.Create)
		employees.DELETE("", h.Employee.Delete)
		employees.GET("/:eid", h.Employee.Get)
		employees.PUT("/:eid", h.Employee.Update)
	}

	r.POST("/signup", h.User.Signup)
	r.POST("/login", h.User.Login)

	if h.health != nil {
		r.GET("/health", h.Health)
	}
}

// Health reports the data layer state. A degraded store answers 503.
func (h *Handler) Health(c *gin.Context) {
	status := h.health.Health(c.Request.Context())
	if status["status"] != "healthy" {
		resp.Fail(c.Writer, resp.ServiceUnavailable(ecode.Text(ecode.ServiceUnavailable), status))
		return
	}
	resp.Success(c.Writer, status)
}

// bind decodes the JSON body into req and validates it. On failure it writes
// the 400 response and returns false. An empty body decodes as {}.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		resp.Fail(c.Writer, resp.Invalid(validator.FromBindError(err)))
		return false
	}
	if errs := validator.Struct(req); errs != nil {
		resp.Fail(c.Writer, resp.Invalid(errs))
		return false
	}
	return true
}

// fail writes the response for a service error. Tagged not-found, conflict and
// unauthorized errors carry a client safe message; the rest are logged and
// collapse into the generic server error.
func fail(c *gin.Context, log *logger.Logger, err error) {
	switch ecode.KindOf(err) {
	case ecode.KindNotFound:
		resp.Fail(c.Writer, resp.NotFound(ecode.Message(err)))
	case ecode.KindConflict:
		resp.Fail(c.Writer, resp.BadRequest(ecode.Message(err)))
	case ecode.KindUnauthorized:
		resp.Fail(c.Writer, resp.InvalidCredentials())
	case ecode.KindValidation:
		resp.Fail(c.Writer, resp.BadRequest(ecode.Text(ecode.ParamErr)))
	default:
		log.Error(c.Request.Context(), "request failed", "error", err)
		_ = c.Error(err)
		resp.Fail(c.Writer, resp.InternalServer(""))
	}
}
