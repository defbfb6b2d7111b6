package ecode

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("connection refused")
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"untagged", cause, KindInternal},
		{"not found", NotFoundErr("employee.Get", "employee not found"), KindNotFound},
		{"conflict", ConflictErr("user.Create", "user already exists"), KindConflict},
		{"wrapped internal", Internal("employee.List", cause), KindInternal},
		{"fmt wrapped", fmt.Errorf("service: %w", NotFoundErr("op", "gone")), KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("socket closed")
	err := Internal("employee.Create", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is() should find the wrapped cause")
	}
	if got := err.Error(); got != "employee.Create: socket closed" {
		t.Errorf("Error() = %q", got)
	}
	if Wrap(KindInternal, "op", nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestTextAndStatus(t *testing.T) {
	if got := Text(ServerErr); got != "Server error" {
		t.Errorf("Text(ServerErr) = %q", got)
	}
	if got := Text(12345); got != "Server error" {
		t.Errorf("Text(unknown) = %q", got)
	}
	if got := ToHTTPStatus(NothingFound); got != http.StatusNotFound {
		t.Errorf("ToHTTPStatus(NothingFound) = %d", got)
	}
}

func TestMessageHelpers(t *testing.T) {
	if got := NotExist("Employee"); got != "Employee not found" {
		t.Errorf("NotExist() = %q", got)
	}
	if got := AlreadyExist("User"); got != "User already exists" {
		t.Errorf("AlreadyExist() = %q", got)
	}
	if got := Success("Employee created"); got != "Employee created successfully" {
		t.Errorf("Success() = %q", got)
	}
	if got := FieldIsRequired("email"); got != "The field 'email' is required." {
		t.Errorf("FieldIsRequired() = %q", got)
	}
	if got := FieldIsEmpty("position"); got != "The field 'position' must not be empty." {
		t.Errorf("FieldIsEmpty() = %q", got)
	}
	if got := FieldIsInvalid("salary"); got != "The field 'salary' is invalid." {
		t.Errorf("FieldIsInvalid() = %q", got)
	}
}

func TestMessage(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFoundErr("employee.find", "Employee not found"))
	if got := Message(err); got != "Employee not found" {
		t.Errorf("Message() = %q", got)
	}
	if got := Message(errors.New("plain")); got != "" {
		t.Errorf("Message(untagged) = %q", got)
	}
}
