package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/workforce/ecode"
	"github.com/ncobase/workforce/logging/logger"
	"github.com/ncobase/workforce/net/resp"
	"github.com/ncobase/workforce/service"
	"github.com/ncobase/workforce/structs"
)

// EmployeeHandler handles HTTP requests for employees.
type EmployeeHandler struct {
	svc    *service.EmployeeService
	logger *logger.Logger
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(svc *service.EmployeeService, logger *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /employees.
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	resp.Success(c.Writer, employees)
}

// Create handles POST /employees.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req structs.CreateEmployeeBody
	if !bind(c, &req) {
		return
	}

	employee, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, &structs.EmployeeCreated{
		Message:    ecode.Success("Employee created"),
		EmployeeID: employee.ID.Hex(),
	})
}

// Get handles GET /employees/:eid.
func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.svc.Get(c.Request.Context(), c.Param("eid"))
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	resp.Success(c.Writer, employee)
}

// Update handles PUT /employees/:eid.
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req structs.UpdateEmployeeBody
	if !bind(c, &req) {
		return
	}

	if _, err := h.svc.Update(c.Request.Context(), c.Param("eid"), &req); err != nil {
		fail(c, h.logger, err)
		return
	}
	resp.Success(c.Writer, ecode.Success("Employee details updated"))
}

// Delete handles DELETE /employees?eid=.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Query("eid")); err != nil {
		fail(c, h.logger, err)
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusNoContent)
}
