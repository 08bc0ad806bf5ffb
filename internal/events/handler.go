package events

import (
	"encoding/json"
	"fmt"

	"admin/internal/notifier"
	"admin/internal/sql"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventParams carries the dependencies shared by all event handlers.
type EventParams struct {
	DB             *gorm.DB
	Notifier       notifier.INotifier
	AlertRecipient string
}

// HandleEvents consumes the given subscription until the channel closes.
// Handler failures are logged and the message is acked anyway; the queue
// carries best-effort notifications, not critical state.
func HandleEvents(params *EventParams, messages <-chan *message.Message) {
	for msg := range messages {
		var event Event
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			zap.L().Error("Failed to decode event", zap.String("message_id", msg.UUID), zap.Error(err))
			msg.Ack()
			continue
		}

		if err := dispatch(params, event); err != nil {
			zap.L().Error("Failed to handle event",
				zap.String("kind", event.Kind),
				zap.String("message_id", msg.UUID),
				zap.Error(err))
		}

		msg.Ack()
	}
}

func dispatch(params *EventParams, event Event) error {
	switch event.Kind {
	case KindRefreshCompleted:
		var payload RefreshCompleted
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		return handleRefreshCompleted(params, payload)
	case KindAlertRaised:
		var payload AlertRaised
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		return handleAlertRaised(params, payload)
	default:
		zap.L().Warn("Unknown event kind", zap.String("kind", event.Kind))
		return nil
	}
}

func handleRefreshCompleted(params *EventParams, payload RefreshCompleted) error {
	zap.L().Debug("Refresh completed",
		zap.String("resource", payload.Resource),
		zap.Int("records", payload.Records),
		zap.Int64("duration_ms", payload.DurationMs))
	return nil
}

func handleAlertRaised(params *EventParams, payload AlertRaised) error {
	if err := sql.InsertNotification(params.DB, payload.Title, payload.Body, payload.Kind); err != nil {
		return fmt.Errorf("failed to persist alert notification: %w", err)
	}

	if params.Notifier == nil || params.AlertRecipient == "" {
		return nil
	}

	return params.Notifier.NotifyFromTemplate(
		params.AlertRecipient,
		payload.Title,
		"alert",
		payload,
	)
}
