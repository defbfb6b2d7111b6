package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ncobase/workforce/config"
	"github.com/ncobase/workforce/ctxutil"
	"github.com/sirupsen/logrus"
)

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &entry); err != nil {
		t.Fatalf("decode log entry %q: %v", lines[len(lines)-1], err)
	}
	return entry
}

func TestKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, logrus.DebugLevel)
	l.SetVersion("1.0.0")

	ctx := ctxutil.SetTraceID(context.Background(), "trace-1")
	l.Error(ctx, "failed to create employee", "error", errors.New("boom"), "status", 500)

	entry := lastEntry(t, &buf)
	if entry["msg"] != "failed to create employee" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v", entry["error"])
	}
	if entry["status"] != float64(500) {
		t.Errorf("status = %v", entry["status"])
	}
	if entry[ctxutil.TraceIDKey] != "trace-1" {
		t.Errorf("trace_id = %v", entry[ctxutil.TraceIDKey])
	}
	if entry[VersionKey] != "1.0.0" {
		t.Errorf("version = %v", entry[VersionKey])
	}
}

func TestOddKeyValues(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, logrus.InfoLevel)
	l.Info(context.Background(), "dangling", "orphan")

	entry := lastEntry(t, &buf)
	if entry[badKey] != "orphan" {
		t.Errorf("%s = %v, want orphan", badKey, entry[badKey])
	}
}

func TestSensitiveFieldsMasked(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, logrus.InfoLevel)
	l.Info(context.Background(), "login", "email", "a@x.com", "password", "abcdef", "access_token", "xyz")

	entry := lastEntry(t, &buf)
	if entry["password"] != maskValue {
		t.Errorf("password = %v, want masked", entry["password"])
	}
	if entry["access_token"] != maskValue {
		t.Errorf("access_token = %v, want masked", entry["access_token"])
	}
	if entry["email"] != "a@x.com" {
		t.Errorf("email = %v", entry["email"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, logrus.InfoLevel)
	l.Debug(context.Background(), "hidden")
	if buf.Len() != 0 {
		t.Errorf("debug entry written at info level: %s", buf.String())
	}

	l.SetLevel(int(logrus.DebugLevel))
	l.Debug(context.Background(), "visible")
	if buf.Len() == 0 {
		t.Error("debug entry not written after SetLevel(debug)")
	}
}

func TestNewWithFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l, cleanup, err := New(&config.Logger{Level: 4, Format: "json", Output: "file", OutputFile: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer cleanup()

	l.Info(context.Background(), "hello")
	if StdLogger() != l {
		t.Error("StdLogger() should return the configured logger")
	}
}

func TestNewFileOutputRequiresPath(t *testing.T) {
	if _, _, err := New(&config.Logger{Output: "file"}); err == nil {
		t.Error("New() with file output and no path should fail")
	}
}
