package ecode

import (
	"fmt"
)

const (
	emptyMsg    = "empty"
	requiredMsg = "required"
	invalidMsg  = "invalid"
	successMsg  = "successfully"
	existMsg    = "already exists"
	notFoundMsg = "not found"
)

// FieldIsEmpty returns field empty message
func FieldIsEmpty(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("The field '%s' must not be %s.", k[0], emptyMsg)
	}
	return emptyMsg
}

// FieldIsRequired returns field required message
func FieldIsRequired(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("The field '%s' is %s.", k[0], requiredMsg)
	}
	return requiredMsg
}

// FieldIsInvalid returns field invalid message
func FieldIsInvalid(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("The field '%s' is %s.", k[0], invalidMsg)
	}
	return invalidMsg
}

// Success returns success message, e.g. "Employee created successfully".
func Success(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], successMsg)
	}
	return successMsg
}

// AlreadyExist returns already exist message
func AlreadyExist(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], existMsg)
	}
	return existMsg
}

// NotExist returns not found message
func NotExist(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], notFoundMsg)
	}
	return notFoundMsg
}
