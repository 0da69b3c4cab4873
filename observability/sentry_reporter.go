// Package observability sends runtime panics to Sentry. It wires a
// SentryReporter into reactive.SetErrorHandler so every panic recovered from
// an effect body or effect cleanup is reported with structured context
// instead of only hitting the default logger. Panics in async tasks and
// resource fetchers are logged by package async and are not reported here.
package observability

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/loomkit/loom/reactive"
)

// SentryReporter reports panics to Sentry via the current Hub, with
// functional-option configuration of the underlying client.
type SentryReporter struct {
	hub *sentry.Hub
}

// SentryOption configures the sentry.ClientOptions passed to sentry.Init.
type SentryOption func(*sentry.ClientOptions)

// WithBeforeSend installs a hook that can filter or rewrite events before
// they're sent.
func WithBeforeSend(fn func(*sentry.Event, *sentry.EventHint) *sentry.Event) SentryOption {
	return func(opts *sentry.ClientOptions) { opts.BeforeSend = fn }
}

// WithDebug enables Sentry's own debug logging to stderr.
func WithDebug(debug bool) SentryOption {
	return func(opts *sentry.ClientOptions) { opts.Debug = debug }
}

// WithEnvironment tags every event with environment (e.g. "production").
func WithEnvironment(environment string) SentryOption {
	return func(opts *sentry.ClientOptions) { opts.Environment = environment }
}

// WithRelease tags every event with a release identifier.
func WithRelease(release string) SentryOption {
	return func(opts *sentry.ClientOptions) { opts.Release = release }
}

// NewSentryReporter initializes the Sentry SDK against dsn and returns a
// reporter bound to the current hub. An empty dsn disables sending (useful
// in tests).
func NewSentryReporter(dsn string, opts ...SentryOption) (*SentryReporter, error) {
	clientOpts := sentry.ClientOptions{Dsn: dsn}
	for _, opt := range opts {
		opt(&clientOpts)
	}
	if err := sentry.Init(clientOpts); err != nil {
		return nil, fmt.Errorf("observability: sentry init: %w", err)
	}
	return &SentryReporter{hub: sentry.CurrentHub()}, nil
}

// PanicContext carries the scope a recovered panic is reported with.
type PanicContext struct {
	Scope     string // "effect", "resource-fetch", "task", "event-handler"
	Tags      map[string]string
	Extra     map[string]any
	Timestamp time.Time
}

// Report sends r (the recovered panic value) to Sentry with ctx's tags and
// extras attached via an isolated scope, so concurrent reports never bleed
// tags into each other.
func (s *SentryReporter) Report(r any, ctx PanicContext) {
	s.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("scope", ctx.Scope)
		for k, v := range ctx.Tags {
			scope.SetTag(k, v)
		}
		for k, v := range ctx.Extra {
			scope.SetExtra(k, v)
		}
		scope.SetExtra("recovered_at", ctx.Timestamp)
		s.hub.CaptureException(fmt.Errorf("panic in %s: %v", ctx.Scope, r))
	})
}

// Install wires the reporter into reactive.SetErrorHandler, so every panic
// reactive recovers is forwarded to Sentry tagged as scope "reactive".
func (s *SentryReporter) Install() {
	reactive.SetErrorHandler(func(r any) {
		s.Report(r, PanicContext{Scope: "reactive", Timestamp: time.Now()})
	})
}

// Flush blocks until pending events are sent or timeout elapses.
func (s *SentryReporter) Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}
