package ui

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/finanapp/client-go/internal/pubsub"
)

// Level classifies a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a transient user-visible message, the terminal equivalent
// of the web app's toast popups.
type Notification struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Notifier publishes notifications on the bus for whatever frontend is
// listening. Errors never propagate past the call site that produced them;
// they end here, as something the user can read.
type Notifier struct {
	pub pubsub.Publisher
}

// NewNotifier creates a Notifier publishing on pubsub.TopicNotifications.
func NewNotifier(pub pubsub.Publisher) *Notifier {
	return &Notifier{pub: pub}
}

// Success publishes a success notification.
func (n *Notifier) Success(ctx context.Context, text string) {
	n.publish(ctx, Notification{Level: LevelSuccess, Text: text})
}

// Error publishes an error notification.
func (n *Notifier) Error(ctx context.Context, text string) {
	n.publish(ctx, Notification{Level: LevelError, Text: text})
}

func (n *Notifier) publish(ctx context.Context, note Notification) {
	if n.pub == nil {
		return
	}
	payload, err := json.Marshal(note)
	if err != nil {
		slog.Error("Failed to encode notification", "error", err)
		return
	}
	if err := n.pub.Publish(ctx, pubsub.Message{
		Topic:   pubsub.TopicNotifications,
		Payload: payload,
	}); err != nil {
		slog.Error("Failed to publish notification", "error", err)
	}
}
