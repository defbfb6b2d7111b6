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

// UserHandler handles signup and login.
type UserHandler struct {
	svc    *service.UserService
	logger *logger.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc *service.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// Signup handles POST /signup.
func (h *UserHandler) Signup(c *gin.Context) {
	var req structs.SignupBody
	if !bind(c, &req) {
		return
	}

	user, err := h.svc.Signup(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, &structs.UserCreated{
		Message: ecode.Success("User created"),
		UserID:  user.ID.Hex(),
	})
}

// Login handles POST /login.
func (h *UserHandler) Login(c *gin.Context) {
	var req structs.LoginBody
	if !bind(c, &req) {
		return
	}

	token, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	resp.Success(c.Writer, &structs.LoginResult{
		Message: "Login successful",
		Token:   token,
	})
}
