// Package validator validates typed request structs and reports failures as
// a list of field-scoped errors keyed by JSON field name.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ncobase/workforce/ecode"
)

const (
	locationBody = "body"
	typeField    = "field"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterCustomTypeFunc(numericValue, Numeric{})
	validate.RegisterCustomTypeFunc(textValue, Text{})
	if err := validate.RegisterValidation("iso8601", isISO8601); err != nil {
		panic(err)
	}
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Type     string `json:"type"`
	Value    any    `json:"value,omitempty"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

// Error implements error.
func (e FieldError) Error() string {
	return e.Path + ": " + e.Msg
}

// errorMessages maps validation tags to messages. A second %s receives the tag param.
var errorMessages = map[string]string{
	"email":   "The field '%s' must be a valid email address.",
	"min":     "The field '%s' must be at least %s characters long.",
	"max":     "The field '%s' must be no longer than %s characters.",
	"numeric": "The field '%s' must be numeric.",
	"iso8601": "The field '%s' must be an ISO 8601 date.",
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func parseMessage(field string, e validator.FieldError) string {
	switch {
	case e.Tag() == "required":
		return ecode.FieldIsRequired(field)
	case e.Tag() == "min" && e.Param() == "1" && e.Kind() == reflect.String:
		return ecode.FieldIsEmpty(field)
	}
	if msg, ok := errorMessages[e.Tag()]; ok {
		if strings.Count(msg, "%s") == 2 {
			return fmt.Sprintf(msg, field, e.Param())
		}
		return fmt.Sprintf(msg, field)
	}
	return ecode.FieldIsInvalid(field)
}

// Struct validates s and returns every failing field, or nil when s is valid.
func Struct(s any) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{bodyError("The request body is invalid.")}
	}

	out := make([]FieldError, 0, len(validationErrs))
	for _, e := range validationErrs {
		path := fieldPath(e)
		out = append(out, FieldError{
			Type:     typeField,
			Value:    fieldValue(e.Value()),
			Msg:      parseMessage(path, e),
			Path:     path,
			Location: locationBody,
		})
	}
	return out
}

// fieldValue drops nil pointers left by absent fields so they are omitted.
func fieldValue(v any) any {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return nil
	}
	return v
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return e.Field()
}

func bodyError(msg string) FieldError {
	return FieldError{
		Type:     typeField,
		Msg:      msg,
		Path:     locationBody,
		Location: locationBody,
	}
}
