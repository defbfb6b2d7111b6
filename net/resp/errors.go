package resp

import (
	"net/http"

	"github.com/ncobase/workforce/ecode"
)

// BadRequest indicates a bad request.
func BadRequest(message string, data ...any) *Exception {
	return newException(http.StatusBadRequest, ecode.RequestErr, message, data...)
}

// Invalid indicates a request rejected by field validation. The body carries
// only the error list.
func Invalid(errs any) *Exception {
	return newException(http.StatusBadRequest, ecode.ParamErr, "", errs)
}

// InvalidCredentials is the single response for every failed login.
func InvalidCredentials() *Exception {
	return newException(http.StatusBadRequest, ecode.InvalidCredentials, ecode.Text(ecode.InvalidCredentials))
}

// NotFound indicates that the requested resource is not found.
func NotFound(message string, data ...any) *Exception {
	return newException(http.StatusNotFound, ecode.NothingFound, message, data...)
}

// InternalServer indicates a server error. The message defaults to the
// generic "Server error".
func InternalServer(message string, data ...any) *Exception {
	return newException(http.StatusInternalServerError, ecode.ServerErr, message, data...)
}

// ServiceUnavailable indicates a dependency is down.
func ServiceUnavailable(message string, data ...any) *Exception {
	return newException(http.StatusServiceUnavailable, ecode.ServiceUnavailable, message, data...)
}

// NotAllowed indicates the route exists but not for the request method.
func NotAllowed(message string, data ...any) *Exception {
	return newException(http.StatusMethodNotAllowed, ecode.MethodNotAllowed, message, data...)
}
