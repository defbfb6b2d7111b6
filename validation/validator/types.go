package validator

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Numeric holds a JSON number or a numeric string as text, so that the
// "numeric" tag can judge it. JSON numbers are rendered in plain decimal form
// within the range where that is exact. Decoding never fails.
type Numeric struct {
	raw string
	set bool
}

// NewNumeric returns a Numeric holding s.
func NewNumeric(s string) Numeric {
	return Numeric{raw: s, set: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Numeric) UnmarshalJSON(b []byte) error {
	n.set = true
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		n.raw = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n.raw = s
	default:
		n.raw = formatNumber(string(b))
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Numeric) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	return json.Marshal(n.raw)
}

// IsSet reports whether the field was present in the input.
func (n Numeric) IsSet() bool {
	return n.set
}

// String returns the raw value.
func (n Numeric) String() string {
	return n.raw
}

// Float64 parses the raw value.
func (n Numeric) Float64() (float64, error) {
	return strconv.ParseFloat(n.raw, 64)
}

// formatNumber rewrites a JSON number in exponent form as plain decimal when
// its magnitude is in [1e-7, 1e21). Other input is returned unchanged.
func formatNumber(s string) string {
	if !strings.ContainsAny(s, "eE") {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	if abs := math.Abs(f); f != 0 && (abs < 1e-7 || abs >= 1e21) {
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Text holds any JSON value as a string. Strings are kept as is, numbers and
// booleans keep their literal text and null is a present value with empty
// text. Objects and arrays are kept raw and are not scalar. Decoding never
// fails.
type Text struct {
	raw       string
	set       bool
	null      bool
	composite bool
}

// NewText returns a Text holding s.
func NewText(s string) Text {
	return Text{raw: s, set: true}
}

// NullText returns a present null Text.
func NullText() Text {
	return Text{set: true, null: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	*t = Text{set: true}
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		t.null = true
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		t.raw = s
	case len(b) > 0 && (b[0] == '{' || b[0] == '['):
		t.raw = string(b)
		t.composite = true
	default:
		t.raw = formatNumber(string(b))
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Text) MarshalJSON() ([]byte, error) {
	if !t.set || t.null {
		return []byte("null"), nil
	}
	if t.composite {
		return []byte(t.raw), nil
	}
	return json.Marshal(t.raw)
}

// IsSet reports whether the field was present in the input.
func (t Text) IsSet() bool {
	return t.set
}

// IsNull reports whether the field was an explicit null.
func (t Text) IsNull() bool {
	return t.null
}

// IsScalar reports whether the value was a string, number, boolean or null.
func (t Text) IsScalar() bool {
	return !t.composite
}

// String returns the text of the value.
func (t Text) String() string {
	return t.raw
}

// numericValue and textValue hand the raw text to the validator. An absent
// field becomes a nil pointer so that "omitnil" skips it.
func numericValue(v reflect.Value) any {
	n, ok := v.Interface().(Numeric)
	if !ok || !n.set {
		return (*string)(nil)
	}
	return &n.raw
}

func textValue(v reflect.Value) any {
	t, ok := v.Interface().(Text)
	if !ok || !t.set {
		return (*string)(nil)
	}
	return &t.raw
}

var iso8601Layouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"20060102",
	"2006-01",
}

// ParseISO8601 parses the date and date-time forms accepted by the "iso8601" tag.
// Values without a zone are read as UTC.
func ParseISO8601(s string) (time.Time, error) {
	var err error
	for _, layout := range iso8601Layouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func isISO8601(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	_, err := ParseISO8601(s)
	return err == nil
}
