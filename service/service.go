// Package service contains the employee and user account business logic.
package service

import (
	"github.com/ncobase/workforce/data"
	"github.com/ncobase/workforce/logging/logger"
	"github.com/ncobase/workforce/security/jwt"
)

// Service aggregates all business logic services.
type Service struct {
	Employee *EmployeeService
	User     *UserService
}

// NewService creates a new service instance with all sub-services initialized.
func NewService(d *data.Data, tokens *jwt.TokenManager, logger *logger.Logger) *Service {
	return &Service{
		Employee: NewEmployeeService(d.EmployeeRepo, logger),
		User:     NewUserService(d.UserRepo, tokens, logger),
	}
}
