package service

import (
	"context"
	"fmt"

	"github.com/ncobase/workforce/data/repository"
	"github.com/ncobase/workforce/ecode"
	"github.com/ncobase/workforce/logging/logger"
	"github.com/ncobase/workforce/structs"
	"github.com/ncobase/workforce/validation/validator"
)

// EmployeeService handles employee records.
type EmployeeService struct {
	repo   repository.EmployeeRepository
	logger *logger.Logger
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(repo repository.EmployeeRepository, logger *logger.Logger) *EmployeeService {
	return &EmployeeService{
		repo:   repo,
		logger: logger,
	}
}

// List returns every employee.
func (s *EmployeeService) List(ctx context.Context) ([]*repository.Employee, error) {
	return s.repo.List(ctx)
}

// Create persists a validated create body.
func (s *EmployeeService) Create(ctx context.Context, body *structs.CreateEmployeeBody) (*repository.Employee, error) {
	salary, err := body.Salary.Float64()
	if err != nil {
		return nil, ecode.Wrap(ecode.KindValidation, "employee.create", fmt.Errorf("salary: %w", err))
	}
	joined, err := validator.ParseISO8601(body.DateOfJoining)
	if err != nil {
		return nil, ecode.Wrap(ecode.KindValidation, "employee.create", fmt.Errorf("date_of_joining: %w", err))
	}

	return s.repo.Create(ctx, &repository.Employee{
		FirstName:     body.FirstName,
		LastName:      body.LastName,
		Email:         body.Email,
		Position:      body.Position,
		Salary:        salary,
		DateOfJoining: joined,
		Department:    body.Department,
	})
}

// Get returns the employee with the given id.
func (s *EmployeeService) Get(ctx context.Context, id string) (*repository.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

// Update merges the supplied fields into the employee.
func (s *EmployeeService) Update(ctx context.Context, id string, body *structs.UpdateEmployeeBody) (*repository.Employee, error) {
	fields, err := updateFields(body)
	if err != nil {
		return nil, ecode.Internal("employee.update", err)
	}
	return s.repo.Update(ctx, id, fields)
}

// Delete removes the employee with the given id.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// updateFields maps the present body fields to stored field names. A null
// clears the field. Values that cannot be stored as their field type are
// errors.
func updateFields(body *structs.UpdateEmployeeBody) (map[string]any, error) {
	fields := make(map[string]any)
	texts := []struct {
		key string
		val validator.Text
	}{
		{"first_name", body.FirstName},
		{"last_name", body.LastName},
		{"email", body.Email},
		{"position", body.Position},
		{"department", body.Department},
	}
	for _, t := range texts {
		switch {
		case !t.val.IsSet():
		case !t.val.IsScalar():
			return nil, fmt.Errorf("cast %s %s: not a string", t.key, t.val.String())
		case t.val.IsNull():
			fields[t.key] = nil
		default:
			fields[t.key] = t.val.String()
		}
	}

	if body.Salary.IsSet() {
		salary, err := body.Salary.Float64()
		if err != nil {
			return nil, fmt.Errorf("cast salary %q: %w", body.Salary.String(), err)
		}
		fields["salary"] = salary
	}

	if d := body.DateOfJoining; d.IsSet() {
		switch {
		case !d.IsScalar():
			return nil, fmt.Errorf("cast date_of_joining %s: not a date", d.String())
		case d.IsNull():
			fields["date_of_joining"] = nil
		default:
			joined, err := validator.ParseISO8601(d.String())
			if err != nil {
				return nil, fmt.Errorf("cast date_of_joining %q: %w", d.String(), err)
			}
			fields["date_of_joining"] = joined
		}
	}

	return fields, nil
}
