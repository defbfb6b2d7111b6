// Package logger provides the context-aware structured logger used across the
// service. It wraps logrus and takes key/value pairs after the message:
//
//	log.Info(ctx, "employee created", "id", id)
//	log.Error(ctx, "failed to list employees", "error", err)
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ncobase/workforce/config"
	"github.com/sirupsen/logrus"
)

// Key constants
const (
	VersionKey = "version"
	badKey     = "!BADKEY"
)

// Logger is a logrus backed logger with context aware helpers.
type Logger struct {
	base         *logrus.Logger
	version      string
	logFile      *os.File
	desensitizer *Desensitizer
	mu           sync.Mutex
}

var (
	standardLogger *Logger
	once           sync.Once
)

// StdLogger returns the process wide logger.
func StdLogger() *Logger {
	once.Do(func() {
		if standardLogger == nil {
			standardLogger = newLogger(logrus.New())
		}
	})
	return standardLogger
}

// New initializes the process wide logger from configuration and returns it
// with a cleanup function.
func New(c *config.Logger) (*Logger, func(), error) {
	l := newLogger(logrus.New())
	cleanup, err := l.init(c)
	if err != nil {
		return nil, nil, err
	}
	once.Do(func() {})
	standardLogger = l
	return l, cleanup, nil
}

// NewWithWriter returns a logger writing JSON entries to w, mainly for tests.
func NewWithWriter(w io.Writer, level logrus.Level) *Logger {
	base := logrus.New()
	base.SetOutput(w)
	base.SetLevel(level)
	base.SetFormatter(&logrus.JSONFormatter{})
	return newLogger(base)
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewWithWriter(io.Discard, logrus.PanicLevel)
}

func newLogger(base *logrus.Logger) *Logger {
	base.SetFormatter(&logrus.JSONFormatter{})
	return &Logger{
		base:         base,
		desensitizer: NewDesensitizer(nil),
	}
}

// init applies configuration to the logger.
func (l *Logger) init(c *config.Logger) (func(), error) {
	if c == nil {
		return func() {}, nil
	}

	l.SetLevel(c.Level)

	switch c.Format {
	case "text":
		l.base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		l.base.SetFormatter(&logrus.JSONFormatter{})
	}

	switch c.Output {
	case "stderr":
		l.base.SetOutput(os.Stderr)
	case "file":
		if c.OutputFile == "" {
			return nil, fmt.Errorf("logger: output_file is required for file output")
		}
		if err := os.MkdirAll(filepath.Dir(c.OutputFile), 0o755); err != nil {
			return nil, fmt.Errorf("logger: create log directory: %w", err)
		}
		f, err := os.OpenFile(c.OutputFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		l.logFile = f
		l.base.SetOutput(f)
	default:
		l.base.SetOutput(os.Stdout)
	}

	return func() {
		if l.logFile != nil {
			_ = l.logFile.Close()
		}
	}, nil
}

// SetVersion sets the version added to every entry.
func (l *Logger) SetVersion(v string) {
	l.version = v
}

// SetLevel sets the logrus level (0 panic ... 6 trace). Out of range values
// fall back to info.
func (l *Logger) SetLevel(level int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < int(logrus.PanicLevel) || level > int(logrus.TraceLevel) {
		level = int(logrus.InfoLevel)
	}
	l.base.SetLevel(logrus.Level(level))
}

// AddHook registers a logrus hook.
func (l *Logger) AddHook(hook logrus.Hook) {
	l.base.AddHook(hook)
}

// entryFromContext creates a new log entry with fields from context and kv.
func (l *Logger) entryFromContext(ctx context.Context, kv []any) *logrus.Entry {
	fields := logrus.Fields{}

	if ctx != nil {
		if traceID := getTraceID(ctx); traceID != "" {
			fields[traceKey] = traceID
		}
	}

	if l.version != "" {
		fields[VersionKey] = l.version
	}

	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		if i+1 >= len(kv) {
			fields[badKey] = key
			break
		}
		fields[key] = kv[i+1]
	}

	return l.base.WithFields(l.desensitizer.DesensitizeFields(fields))
}

func (l *Logger) log(ctx context.Context, level logrus.Level, msg string, kv []any) {
	if !l.base.IsLevelEnabled(level) {
		return
	}
	l.entryFromContext(ctx, kv).Log(level, msg)
}

// Debug logs at debug level.
func (l *Logger) Debug(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, logrus.DebugLevel, msg, kv)
}

// Info logs at info level.
func (l *Logger) Info(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, logrus.InfoLevel, msg, kv)
}

// Warn logs at warn level.
func (l *Logger) Warn(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, logrus.WarnLevel, msg, kv)
}

// Error logs at error level.
func (l *Logger) Error(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, logrus.ErrorLevel, msg, kv)
}

// Fatal logs at fatal level and exits.
func (l *Logger) Fatal(ctx context.Context, msg string, kv ...any) {
	l.entryFromContext(ctx, kv).Fatal(msg)
}
