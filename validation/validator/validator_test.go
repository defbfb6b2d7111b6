package validator

import (
	"encoding/json"
	"errors"
	"testing"
)

type createEmployee struct {
	FirstName     string  `json:"first_name" validate:"required"`
	Email         string  `json:"email" validate:"email"`
	Salary        Numeric `json:"salary" validate:"numeric"`
	DateOfJoining string  `json:"date_of_joining" validate:"iso8601"`
}

type updateEmployee struct {
	Position   Text    `json:"position" validate:"omitnil,min=1"`
	Salary     Numeric `json:"salary" validate:"omitnil,numeric"`
	Department Text    `json:"department"`
}

func decode(t *testing.T, body string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), v); err != nil {
		t.Fatalf("unmarshal %s: %v", body, err)
	}
}

func paths(errs []FieldError) map[string]bool {
	out := make(map[string]bool, len(errs))
	for _, e := range errs {
		out[e.Path] = true
	}
	return out
}

func TestStructValid(t *testing.T) {
	tests := []string{
		`{"first_name":"Ann","email":"ann@example.com","salary":50000,"date_of_joining":"2023-01-15"}`,
		`{"first_name":"Ann","email":"ann@example.com","salary":"50000.5","date_of_joining":"2023-01-15T09:30:00Z"}`,
		`{"first_name":"Ann","email":"ann@example.com","salary":-12,"date_of_joining":"2023-01-15T09:30:00.000+02:00"}`,
		`{"first_name":"Ann","email":"ann@example.com","salary":1e5,"date_of_joining":"2023-01-15"}`,
		`{"first_name":"Ann","email":"ann@example.com","salary":2.5E3,"date_of_joining":"2023-01-15"}`,
	}
	for _, body := range tests {
		var req createEmployee
		decode(t, body, &req)
		if errs := Struct(&req); errs != nil {
			t.Errorf("Struct(%s) = %v, want nil", body, errs)
		}
	}
}

func TestStructInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"empty object", `{}`, []string{"first_name", "email", "salary", "date_of_joining"}},
		{"salary word", `{"first_name":"A","email":"a@x.com","salary":"abc","date_of_joining":"2023-01-15"}`, []string{"salary"}},
		{"salary bool", `{"first_name":"A","email":"a@x.com","salary":true,"date_of_joining":"2023-01-15"}`, []string{"salary"}},
		{"salary null", `{"first_name":"A","email":"a@x.com","salary":null,"date_of_joining":"2023-01-15"}`, []string{"salary"}},
		{"salary huge exponent", `{"first_name":"A","email":"a@x.com","salary":1e21,"date_of_joining":"2023-01-15"}`, []string{"salary"}},
		{"bad email", `{"first_name":"A","email":"nope","salary":1,"date_of_joining":"2023-01-15"}`, []string{"email"}},
		{"bad date", `{"first_name":"A","email":"a@x.com","salary":1,"date_of_joining":"15/01/2023"}`, []string{"date_of_joining"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req createEmployee
			decode(t, tt.body, &req)
			errs := Struct(&req)
			if len(errs) != len(tt.want) {
				t.Fatalf("Struct() = %v, want %d errors", errs, len(tt.want))
			}
			got := paths(errs)
			for _, p := range tt.want {
				if !got[p] {
					t.Errorf("missing error for %q in %v", p, errs)
				}
			}
			for _, e := range errs {
				if e.Type != "field" || e.Location != "body" || e.Msg == "" {
					t.Errorf("malformed field error %+v", e)
				}
			}
		})
	}
}

func TestStructPartial(t *testing.T) {
	tests := []struct {
		body string
		want []string
	}{
		{`{}`, nil},
		{`{"position":"Lead"}`, nil},
		{`{"salary":"70000"}`, nil},
		{`{"salary":1e5}`, nil},
		{`{"department":42}`, nil},
		{`{"department":null}`, nil},
		{`{"position":7}`, nil},
		{`{"salary":null}`, []string{"salary"}},
		{`{"position":null}`, []string{"position"}},
		{`{"salary":null,"position":null}`, []string{"salary", "position"}},
		{`{"position":""}`, []string{"position"}},
		{`{"salary":"lots"}`, []string{"salary"}},
		{`{"salary":{"amount":1}}`, []string{"salary"}},
	}
	for _, tt := range tests {
		var req updateEmployee
		decode(t, tt.body, &req)
		errs := Struct(&req)
		if len(errs) != len(tt.want) {
			t.Errorf("Struct(%s) = %v, want %v", tt.body, errs, tt.want)
			continue
		}
		got := paths(errs)
		for _, p := range tt.want {
			if !got[p] {
				t.Errorf("Struct(%s) missing %q", tt.body, p)
			}
		}
	}
}

func TestNumeric(t *testing.T) {
	var n Numeric
	if n.IsSet() {
		t.Fatal("zero Numeric should be unset")
	}
	decode(t, `12.5`, &n)
	if !n.IsSet() || n.String() != "12.5" {
		t.Fatalf("Numeric = %+v", n)
	}
	f, err := n.Float64()
	if err != nil || f != 12.5 {
		t.Errorf("Float64() = %v, %v", f, err)
	}

	decode(t, `"42"`, &n)
	if f, _ := n.Float64(); f != 42 {
		t.Errorf("Float64() = %v, want 42", f)
	}
}

func TestNumericExponent(t *testing.T) {
	tests := map[string]string{
		`1e5`:     "100000",
		`2.5E3`:   "2500",
		`1.5e-3`:  "0.0015",
		`1e21`:    "1e21",
		`1e-8`:    "1e-8",
		`50000.5`: "50000.5",
	}
	for in, want := range tests {
		var n Numeric
		decode(t, in, &n)
		if n.String() != want {
			t.Errorf("Numeric(%s) = %q, want %q", in, n.String(), want)
		}
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		null   bool
		scalar bool
	}{
		{`"R&D"`, "R&D", false, true},
		{`42`, "42", false, true},
		{`true`, "true", false, true},
		{`null`, "", true, true},
		{`{"a":1}`, `{"a":1}`, false, false},
		{`[1,2]`, `[1,2]`, false, false},
	}
	for _, tt := range tests {
		var v Text
		decode(t, tt.in, &v)
		if !v.IsSet() || v.String() != tt.want || v.IsNull() != tt.null || v.IsScalar() != tt.scalar {
			t.Errorf("Text(%s) = %+v", tt.in, v)
		}
	}

	var absent Text
	if absent.IsSet() {
		t.Error("zero Text should be unset")
	}
	if b, _ := json.Marshal(NewText("x")); string(b) != `"x"` {
		t.Errorf("MarshalJSON() = %s", b)
	}
	if b, _ := json.Marshal(NullText()); string(b) != "null" {
		t.Errorf("MarshalJSON(null) = %s", b)
	}
}

func TestMessages(t *testing.T) {
	var req updateEmployee
	decode(t, `{"position":""}`, &req)
	errs := Struct(&req)
	if len(errs) != 1 || errs[0].Msg != "The field 'position' must not be empty." {
		t.Errorf("Struct() = %+v", errs)
	}

	var create createEmployee
	decode(t, `{"email":"a@x.com","salary":1,"date_of_joining":"2023-01-15"}`, &create)
	errs = Struct(&create)
	if len(errs) != 1 || errs[0].Msg != "The field 'first_name' is required." {
		t.Errorf("Struct() = %+v", errs)
	}

	decode(t, `{"first_name":"A","email":"a@x.com","date_of_joining":"2023-01-15"}`, &create)
	create.Salary = Numeric{}
	errs = Struct(&create)
	if len(errs) != 1 || errs[0].Path != "salary" || errs[0].Value != nil {
		t.Errorf("absent salary error = %+v", errs)
	}
}

func TestParseISO8601(t *testing.T) {
	for _, s := range []string{"2023-01-15", "2023-01-15T10:00:00Z", "2023-01-15T10:00:00.123+05:30", "2023-01-15T10:00:00"} {
		if _, err := ParseISO8601(s); err != nil {
			t.Errorf("ParseISO8601(%q) error = %v", s, err)
		}
	}
	for _, s := range []string{"", "yesterday", "2023-13-45"} {
		if _, err := ParseISO8601(s); err == nil {
			t.Errorf("ParseISO8601(%q) should fail", s)
		}
	}

	got, _ := ParseISO8601("2023-01-15")
	if got.Year() != 2023 || got.Month() != 1 || got.Day() != 15 {
		t.Errorf("ParseISO8601 = %v", got)
	}
}

func TestFromBindError(t *testing.T) {
	var req createEmployee
	err := json.Unmarshal([]byte(`{"first_name":7}`), &req)
	errs := FromBindError(err)
	if len(errs) != 1 || errs[0].Path != "first_name" {
		t.Errorf("FromBindError(type error) = %v", errs)
	}

	err = json.Unmarshal([]byte(`{"first_name":`), &req)
	errs = FromBindError(err)
	if len(errs) != 1 || errs[0].Path != "body" {
		t.Errorf("FromBindError(syntax error) = %v", errs)
	}

	if FromBindError(nil) != nil {
		t.Error("FromBindError(nil) should be nil")
	}
	if errs := FromBindError(errors.New("boom")); errs[0].Path != "body" {
		t.Errorf("FromBindError(other) = %v", errs)
	}
}
