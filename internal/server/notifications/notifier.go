// Package notifications emits the best-effort welcome message published when
// an account is created. Delivery is fire-and-forget: the signup flow must
// succeed whether or not the message reaches the broker.
package notifications

import (
	"context"
	"encoding/json"

	"github.com/JayatheerthP/OraBank/internal/logging"
)

// WelcomeTopic is the topic welcome notifications are published to.
const WelcomeTopic = "welcome-topic"

// Notifier dispatches signup notifications. Implementations never surface
// failures to the caller.
type Notifier interface {
	NotifySignup(ctx context.Context, recipient, name string)
}

// Publisher is the transport primitive the dispatcher hands payloads to.
// The Kafka writer satisfies it; tests substitute a recording fake.
type Publisher interface {
	Publish(ctx context.Context, key, value []byte) error
}

// welcomeNotification is the wire payload, serialized as JSON.
type welcomeNotification struct {
	Recipient string `json:"recipient"`
	Name      string `json:"name"`
}

// Dispatcher serializes welcome notifications and publishes them through the
// configured transport. Serialization and publish failures are logged and
// swallowed; there is no retry and no delivery confirmation.
type Dispatcher struct {
	publisher Publisher
	logger    logging.Logger
}

func NewDispatcher(publisher Publisher, logger logging.Logger) *Dispatcher {
	return &Dispatcher{
		publisher: publisher,
		logger:    logger.With("module", "notifications"),
	}
}

func (d *Dispatcher) NotifySignup(ctx context.Context, recipient, name string) {
	payload, err := json.Marshal(welcomeNotification{Recipient: recipient, Name: name})
	if err != nil {
		d.logger.Error(ctx, "failed to serialize welcome notification",
			"recipient", recipient, "error", err.Error())
		return
	}

	if err := d.publisher.Publish(ctx, []byte(recipient), payload); err != nil {
		d.logger.Error(ctx, "failed to publish welcome notification",
			"recipient", recipient, "error", err.Error())
		return
	}

	d.logger.Info(ctx, "welcome notification sent", "recipient", recipient)
}
