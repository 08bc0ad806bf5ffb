package core

import (
	"admin/internal/configuration"
	"admin/internal/messaging"

	"go.uber.org/zap"
)

// EventsManager wires one in-memory pub/sub channel per internal queue. The
// memory provider requires publisher and subscriber to share the same
// GoChannel instance, so both are created together.
type EventsManager struct {
	publishers  map[string]messaging.IPublisher
	subscribers map[string]messaging.ISubscriber
}

func NewEventsManager() *EventsManager {
	manager := &EventsManager{
		publishers:  make(map[string]messaging.IPublisher),
		subscribers: make(map[string]messaging.ISubscriber),
	}

	for _, topicKey := range []string{configuration.EventsRefresh, configuration.EventsAlerts} {
		ch := messaging.NewMemoryChannel()
		manager.publishers[topicKey] = messaging.NewMemoryPublisher(ch, topicKey)
		manager.subscribers[topicKey] = messaging.NewMemorySubscriber(ch, topicKey)

		zap.L().Info("Initialized event queue", zap.String("topic_key", topicKey))
	}

	return manager
}

func (em *EventsManager) GetPublisher(topicKey string) messaging.IPublisher {
	publisher, exists := em.publishers[topicKey]
	if !exists {
		zap.L().Warn("Publisher not found", zap.String("topic_key", topicKey))
		return nil
	}
	return publisher
}

func (em *EventsManager) GetSubscriber(topicKey string) messaging.ISubscriber {
	subscriber, exists := em.subscribers[topicKey]
	if !exists {
		zap.L().Warn("Subscriber not found", zap.String("topic_key", topicKey))
		return nil
	}
	return subscriber
}

func (em *EventsManager) Close() {
	for topicKey, publisher := range em.publishers {
		if err := publisher.Close(); err != nil {
			zap.L().Error("Failed to close publisher",
				zap.String("topic_key", topicKey),
				zap.Error(err))
		}
	}
}
