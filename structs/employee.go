package structs

import "github.com/ncobase/workforce/validation/validator"

// CreateEmployeeBody is the body of POST /employees.
type CreateEmployeeBody struct {
	FirstName     string            `json:"first_name" validate:"required"`
	LastName      string            `json:"last_name" validate:"required"`
	Email         string            `json:"email" validate:"email"`
	Position      string            `json:"position" validate:"required"`
	Salary        validator.Numeric `json:"salary" validate:"numeric"`
	DateOfJoining string            `json:"date_of_joining" validate:"iso8601"`
	Department    string            `json:"department" validate:"required"`
}

// UpdateEmployeeBody is the body of PUT /employees/:eid. Absent fields are
// left unchanged; only salary and position are checked. The other fields
// accept any JSON scalar and are stored as text.
type UpdateEmployeeBody struct {
	FirstName     validator.Text    `json:"first_name"`
	LastName      validator.Text    `json:"last_name"`
	Email         validator.Text    `json:"email"`
	Position      validator.Text    `json:"position" validate:"omitnil,min=1"`
	Salary        validator.Numeric `json:"salary" validate:"omitnil,numeric"`
	DateOfJoining validator.Text    `json:"date_of_joining"`
	Department    validator.Text    `json:"department"`
}

// EmployeeCreated is returned by POST /employees.
type EmployeeCreated struct {
	Message    string `json:"message"`
	EmployeeID string `json:"employee_id"`
}
