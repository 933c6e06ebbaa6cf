package service

import (
	"context"
	"time"
)

// AccountEventType names something that happened to an account.
type AccountEventType string

const (
	AccountEventRegistered AccountEventType = "user.registered"
	AccountEventLoggedIn   AccountEventType = "user.logged_in"
)

// AccountEvent is published after a successful registration or login.
type AccountEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	Type       AccountEventType `json:"type"`
	Username   string           `json:"username"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account event for async consumers.
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
