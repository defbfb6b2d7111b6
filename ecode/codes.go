package ecode

import "net/http"

const (
	OK = 0

	InvalidCredentials = -102

	RequestErr       = -400
	ParamErr         = -401
	NothingFound     = -404
	MethodNotAllowed = -405

	ServerErr          = -500
	ServiceUnavailable = -503
)

var codeText = map[int]string{
	OK:                 "ok",
	InvalidCredentials: "Invalid Username and password",
	RequestErr:         "Invalid request",
	ParamErr:           "Invalid parameters",
	NothingFound:       "Not found",
	MethodNotAllowed:   "Method not allowed",
	ServerErr:          "Server error",
	ServiceUnavailable: "Service unavailable",
}

var codeStatus = map[int]int{
	OK:                 http.StatusOK,
	InvalidCredentials: http.StatusBadRequest,
	RequestErr:         http.StatusBadRequest,
	ParamErr:           http.StatusBadRequest,
	NothingFound:       http.StatusNotFound,
	MethodNotAllowed:   http.StatusMethodNotAllowed,
	ServerErr:          http.StatusInternalServerError,
	ServiceUnavailable: http.StatusServiceUnavailable,
}

// Text returns the default message for a code.
func Text(code int) string {
	if text, ok := codeText[code]; ok {
		return text
	}
	return codeText[ServerErr]
}

// ToHTTPStatus maps a business code to its HTTP status.
func ToHTTPStatus(code int) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
