// Package telemetry wires optional Sentry error tracking. With no DSN
// configured every call is a no-op.
package telemetry

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
)

// Init initializes the Sentry SDK. Call once at process startup; an empty dsn
// disables reporting.
func Init(dsn, environment string) error {
	if dsn == "" {
		slog.Info("Sentry disabled: no DSN configured")
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		AttachStacktrace: true,
	})
	if err != nil {
		return fmt.Errorf("sentry.Init: %w", err)
	}
	return nil
}

// CaptureError sends an error to Sentry with optional context tags. Safe to
// call when Sentry is disabled.
func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}

// Flush waits for buffered events to be sent. Call with defer in main.
func Flush() {
	sentry.Flush(2 * time.Second)
}
