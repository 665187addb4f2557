package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// AnalyticsClient wraps posthog so callers can use it whether or not an API key is configured.
type AnalyticsClient struct {
	client posthog.Client
	logger *slog.Logger
}

func NewAnalyticsClient(apiKey, endpoint string, logger *slog.Logger) *AnalyticsClient {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, analytics disabled")
		return &AnalyticsClient{logger: logger}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Error("Failed to initialize posthog client, analytics disabled", slog.String("error", err.Error()))
		return &AnalyticsClient{logger: logger}
	}
	return &AnalyticsClient{client: client, logger: logger}
}

func (a *AnalyticsClient) Enabled() bool {
	return a != nil && a.client != nil
}

// Track enqueues an event. It is a no-op when analytics is disabled.
func (a *AnalyticsClient) Track(distinctID, event string, properties map[string]any) {
	if !a.Enabled() {
		return
	}
	if err := a.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	}); err != nil && a.logger != nil {
		a.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

func (a *AnalyticsClient) Close() {
	if !a.Enabled() {
		return
	}
	_ = a.client.Close()
}
