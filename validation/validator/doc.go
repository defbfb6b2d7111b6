// Request structs carry `validate` tags. Besides the go-playground built-ins
// two additions are registered:
//
//   - iso8601: a string holding an ISO 8601 date or date-time.
//   - Numeric: a field type accepting a JSON number or a numeric string,
//     checked with the "numeric" tag.
//
// Field errors are named after the JSON tag of the failing field.
package validator
