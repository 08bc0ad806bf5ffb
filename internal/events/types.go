package events

import (
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

const (
	KindRefreshCompleted = "refresh_completed"
	KindAlertRaised      = "alert_raised"
)

// Event is the envelope published on the internal queues. Payload holds the
// kind-specific body.
type Event struct {
	Kind       string          `json:"kind"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// RefreshCompleted is published after a poll worker applies a new snapshot.
type RefreshCompleted struct {
	Resource   string `json:"resource"`
	Records    int    `json:"records"`
	DurationMs int64  `json:"duration_ms"`
}

// AlertRaised is published when a refresh crosses an operational threshold,
// such as too many flagged ads.
type AlertRaised struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Kind  string `json:"kind"`
}

func newMessage(kind string, payload any) (*message.Message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	event := Event{
		Kind:       kind,
		OccurredAt: time.Now().UTC(),
		Payload:    body,
	}

	raw, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	return message.NewMessage(uuid.NewString(), raw), nil
}

func NewRefreshMessage(payload RefreshCompleted) (*message.Message, error) {
	return newMessage(KindRefreshCompleted, payload)
}

func NewAlertMessage(payload AlertRaised) (*message.Message, error) {
	return newMessage(KindAlertRaised, payload)
}
