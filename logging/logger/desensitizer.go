package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

const maskValue = "******"

var defaultSensitiveKeys = []string{
	"password",
	"token",
	"secret",
	"authorization",
}

// Desensitizer masks values of sensitive log fields by key.
type Desensitizer struct {
	keys []string
}

// NewDesensitizer creates a desensitizer for the given keys. Nil keys use the
// defaults (password, token, secret, authorization).
func NewDesensitizer(keys []string) *Desensitizer {
	if keys == nil {
		keys = defaultSensitiveKeys
	}
	lowered := make([]string, 0, len(keys))
	for _, k := range keys {
		lowered = append(lowered, strings.ToLower(k))
	}
	return &Desensitizer{keys: lowered}
}

// DesensitizeFields returns fields with sensitive values masked.
func (d *Desensitizer) DesensitizeFields(fields logrus.Fields) logrus.Fields {
	if d == nil || len(d.keys) == 0 {
		return fields
	}
	for key := range fields {
		if d.isSensitive(key) {
			fields[key] = maskValue
		}
	}
	return fields
}

func (d *Desensitizer) isSensitive(key string) bool {
	k := strings.ToLower(key)
	for _, s := range d.keys {
		if strings.Contains(k, s) {
			return true
		}
	}
	return false
}
