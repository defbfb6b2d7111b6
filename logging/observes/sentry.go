// Package observes wires external error reporting.
package observes

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/ncobase/workforce/config"
	"github.com/ncobase/workforce/logging/logger"
)

// NewSentry initializes Sentry and attaches an error hook to log. It is a
// no-op when no DSN is configured. The returned cleanup flushes buffered
// events.
func NewSentry(cfg *config.Sentry, name string, log *logger.Logger) (func(), error) {
	if !cfg.Enabled() {
		return func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Endpoint,
		AttachStacktrace: true,
		SampleRate:       cfg.SampleRate,
		ServerName:       name,
		Release:          cfg.Release,
		Environment:      cfg.Environment,
	}); err != nil {
		return nil, err
	}

	log.AddHook(logger.NewSentryHook(nil))

	return func() {
		sentry.Flush(2 * time.Second)
	}, nil
}
