package event

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dougladias/vida-plena-api/internal/model"
	"github.com/dougladias/vida-plena-api/internal/repository"
)

// Recorder appends entity mutations to the outbox so the worker can publish
// cache-invalidation signals. Recording never fails the calling operation.
type Recorder interface {
	Record(ctx context.Context, resource, action string, payload interface{})
}

type Service struct {
	outboxRepo repository.OutboxRepository
}

func NewService(outboxRepo repository.OutboxRepository) *Service {
	return &Service{outboxRepo: outboxRepo}
}

func (s *Service) Record(ctx context.Context, resource, action string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("resource", resource).Str("action", action).Msg("failed to marshal outbox payload")
		return
	}

	event := &model.OutboxEvent{
		EventType: resource + "_" + action,
		Resource:  resource,
		Payload:   data,
	}
	if err := s.outboxRepo.Create(ctx, event); err != nil {
		log.Error().Err(err).Str("resource", resource).Str("action", action).Msg("failed to create outbox event")
	}
}

// Noop discards events. Used in tests and when the outbox is disabled.
type Noop struct{}

func (Noop) Record(ctx context.Context, resource, action string, payload interface{}) {}
