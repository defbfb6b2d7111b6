// Package resp provides the HTTP response helpers used by every handler.
//
// Success payloads are written as-is; a string payload becomes
// {"message": "..."}:
//
//	resp.Success(w, employees)                          // 200 [...]
//	resp.WithStatusCode(w, http.StatusCreated, body)    // 201 {...}
//	resp.Success(w, "Employee details updated successfully")
//
// Failures are written as {"message": "..."} or, for validation failures,
// {"errors": [...]}. The business code from ecode travels on the Exception for
// logging but is not part of the body:
//
//	resp.Fail(w, resp.NotFound("Employee not found"))
//	resp.Fail(w, resp.Invalid(fieldErrors))
//	resp.Fail(w, resp.InternalServer(""))   // {"message": "Server error"}
package resp
