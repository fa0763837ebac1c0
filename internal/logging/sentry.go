// Package logging contains logrus hooks.
package logging

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

var levels = map[logrus.Level]sentry.Level{
	logrus.PanicLevel: sentry.LevelFatal,
	logrus.FatalLevel: sentry.LevelFatal,
	logrus.ErrorLevel: sentry.LevelError,
	logrus.WarnLevel:  sentry.LevelWarning,
	logrus.InfoLevel:  sentry.LevelInfo,
	logrus.DebugLevel: sentry.LevelDebug,
	logrus.TraceLevel: sentry.LevelDebug,
}

// SentryHook sends log entries to sentry.
type SentryHook struct {
	hub    *sentry.Hub
	levels []logrus.Level
}

// NewSentryHook creates a hook firing on the given levels.
func NewSentryHook(opts sentry.ClientOptions, l ...logrus.Level) (*SentryHook, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create sentry client: %w", err)
	}

	return &SentryHook{
		hub:    sentry.NewHub(client, sentry.NewScope()),
		levels: l,
	}, nil
}

// Levels ...
func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

// Fire ...
func (h *SentryHook) Fire(e *logrus.Entry) error {
	event := sentry.NewEvent()
	event.Level = levels[e.Level]
	event.Message = e.Message
	event.Timestamp = e.Time

	for k, v := range e.Data {
		if err, ok := v.(error); ok {
			if k == logrus.ErrorKey {
				event.Exception = append(event.Exception, sentry.Exception{
					Type:       fmt.Sprintf("%T", err),
					Value:      err.Error(),
					Stacktrace: sentry.ExtractStacktrace(err),
				})
			}
			v = err.Error()
		}

		event.Extra[k] = v
	}

	h.hub.CaptureEvent(event)

	return nil
}

// Flush waits until buffered events are sent.
func (h *SentryHook) Flush(timeout time.Duration) bool {
	return h.hub.Flush(timeout)
}
