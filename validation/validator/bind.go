package validator

import (
	"encoding/json"
	"errors"
	"fmt"
)

// FromBindError converts a request decoding failure into field errors. A type
// mismatch is reported against the offending field; anything else against
// the body.
func FromBindError(err error) []FieldError {
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []FieldError{{
			Type:     typeField,
			Msg:      fmt.Sprintf("The field '%s' must be of type %s.", typeErr.Field, typeErr.Type),
			Path:     typeErr.Field,
			Location: locationBody,
		}}
	}

	return []FieldError{bodyError("The request body must be a valid JSON object.")}
}
