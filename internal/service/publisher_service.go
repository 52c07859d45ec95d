package service

import (
	"context"

	"rescueos-be/internal/pkg/logger"
	"rescueos-be/pkg/events"
	natsbus "rescueos-be/pkg/nats"
)

type IPublisherService interface {
	// Publish is best effort: bus failures are logged, never surfaced to
	// the request that produced the event.
	Publish(ctx context.Context, event events.Event)
}

type publisherService struct {
	publisher *natsbus.Publisher
	logger    logger.ILogger
}

func NewPublisherService(publisher *natsbus.Publisher, log logger.ILogger) IPublisherService {
	return &publisherService{
		publisher: publisher,
		logger:    log,
	}
}

func (s *publisherService) Publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		s.logger.Debug("events", "bus not configured, dropping event", map[string]interface{}{
			"type": event.EventType(),
		})
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("events", "failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}
