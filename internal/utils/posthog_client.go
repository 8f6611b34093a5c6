package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// PosthogClientWrapper wraps the PostHog client so callers never have to care
// whether analytics is configured. A wrapper built without an API key drops
// every event.
type PosthogClientWrapper struct {
	client posthog.Client
	logger *slog.Logger
}

// InitializePosthogClient builds the analytics client. An empty API key
// disables analytics rather than failing startup.
func InitializePosthogClient(apiKey string, logger *slog.Logger) *PosthogClientWrapper {
	if apiKey == "" {
		logger.Warn("POSTHOG_API_KEY not set, analytics disabled")
		return &PosthogClientWrapper{}
	}

	client, err := posthog.NewWithConfig(apiKey, posthog.Config{
		Endpoint: "https://eu.i.posthog.com",
	})
	if err != nil {
		logger.Error("Failed to initialize PostHog client, analytics disabled", slog.String("error", err.Error()))
		return &PosthogClientWrapper{}
	}

	return &PosthogClientWrapper{client: client, logger: logger}
}

// IsInitialized reports whether events will actually be delivered.
func (w *PosthogClientWrapper) IsInitialized() bool {
	return w.client != nil
}

// Enqueue captures one event for the given user. Delivery failures are
// logged and swallowed; analytics never breaks a request.
func (w *PosthogClientWrapper) Enqueue(distinctID, event string, properties map[string]any) {
	if w.client == nil {
		return
	}
	err := w.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil && w.logger != nil {
		w.logger.Warn("Failed to enqueue analytics event",
			slog.String("event", event),
			slog.String("error", err.Error()))
	}
}

// Close flushes buffered events. Call on shutdown.
func (w *PosthogClientWrapper) Close() {
	if w.client != nil {
		_ = w.client.Close()
	}
}
