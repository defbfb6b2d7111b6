package resp

import (
	"encoding/json"
	"net/http"

	"github.com/ncobase/workforce/ecode"
)

// Exception represents a failure response.
type Exception struct {
	Status  int    `json:"-"`                 // HTTP status
	Code    int    `json:"-"`                 // Business code
	Message string `json:"message,omitempty"` // Message
	Errors  any    `json:"errors,omitempty"`  // Validation errors
}

// newException creates a new failure response.
func newException(status, code int, message string, errs ...any) *Exception {
	var details any
	if len(errs) > 0 {
		details = errs[0]
	}
	return &Exception{
		Status:  status,
		Code:    code,
		Message: message,
		Errors:  details,
	}
}

// Success handles success responses.
func Success(w http.ResponseWriter, data ...any) {
	WithStatusCode(w, http.StatusOK, data...)
}

// WithStatusCode handles success responses with custom status code.
func WithStatusCode(w http.ResponseWriter, statusCode int, data ...any) {
	var payload any
	if len(data) > 0 {
		payload = data[0]
	}

	switch v := payload.(type) {
	case nil:
		payload = map[string]any{"message": ecode.Text(ecode.OK)}
	case string:
		payload = map[string]any{"message": v}
	}

	if statusCode < 200 || statusCode >= 400 {
		Fail(w, newException(statusCode, 0, messageOf(payload)))
		return
	}

	writeJSON(w, statusCode, payload)
}

// Fail handles failure responses. A nil exception is an internal server error.
func Fail(w http.ResponseWriter, r *Exception) {
	if r == nil {
		r = InternalServer("")
	}
	statusCode, body := buildFailureResponse(r)
	writeJSON(w, statusCode, body)
}

// buildFailureResponse fills in the status and message defaults.
func buildFailureResponse(r *Exception) (int, *Exception) {
	code := r.Code
	if code == 0 {
		code = ecode.RequestErr
	}

	status := r.Status
	if status == 0 {
		status = ecode.ToHTTPStatus(code)
	}

	message := r.Message
	if message == "" && r.Errors == nil {
		message = ecode.Text(code)
	}

	return status, &Exception{
		Status:  status,
		Code:    code,
		Message: message,
		Errors:  r.Errors,
	}
}

func messageOf(payload any) string {
	if m, ok := payload.(map[string]any); ok {
		if s, ok := m["message"].(string); ok {
			return s
		}
	}
	return ""
}

// writeJSON writes res as JSON with the given status code.
func writeJSON(w http.ResponseWriter, code int, res any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if code == http.StatusNoContent || code == http.StatusNotModified {
		return
	}
	if err := json.NewEncoder(w).Encode(res); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}
