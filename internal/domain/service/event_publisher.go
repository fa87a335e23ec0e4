package service

import (
	"context"
	"time"
)

// AnalyticsEventMessage is the payload published after an analytics event is stored.
type AnalyticsEventMessage struct {
	RequestID  string    `json:"requestId,omitempty"` // For distributed tracing
	EventID    string    `json:"eventId"`
	ProductID  string    `json:"productId"`
	ActionType string    `json:"actionType"`
	Quantity   *int      `json:"quantity,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAnalyticsEvent forwards a stored analytics event to downstream consumers
	PublishAnalyticsEvent(ctx context.Context, event *AnalyticsEventMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
