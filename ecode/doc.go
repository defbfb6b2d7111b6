// Package ecode defines the business error codes used in API responses and
// the tagged error type passed between the repository, service and handler
// layers.
//
// # Error Code Convention
//
//   - 0: Success (OK)
//   - -101 to -199: Authentication errors
//   - -400 to -499: Request and resource errors
//   - -500+: Server errors
//
// # Tagged Errors
//
// Lower layers wrap failures in *Error with a Kind. Handlers only look at the
// kind to choose a status code; the wrapped cause is logged and never written
// to the response body:
//
//	if errors.Is(err, mongo.ErrNoDocuments) {
//	    return nil, ecode.NotFoundErr("employee.FindByID", "employee not found")
//	}
//	return nil, ecode.Internal("employee.FindByID", err)
//
//	switch ecode.KindOf(err) {
//	case ecode.KindNotFound:
//	    resp.Fail(c.Writer, resp.NotFound("Employee not found"))
//	}
package ecode
