package service

import (
	"context"

	"studynotes-be/internal/pkg/logger"
	"studynotes-be/pkg/events"
)

// eventEmitter publishes auxiliary domain events. Delivery failures are
// logged and never fail the mutation that produced them.
type eventEmitter struct {
	publisher events.Publisher
	logger    logger.ILogger
}

func (e eventEmitter) emit(ctx context.Context, eventType string, data map[string]interface{}) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish(ctx, events.New(eventType, data)); err != nil {
		e.logger.Warn("EVENTS", "Failed to publish event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}
