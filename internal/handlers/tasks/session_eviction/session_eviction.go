package session_eviction

import (
	"context"
	"time"

	"booking/pkg/logger"
)

// SessionEviction закрывает сессии мастера, простаивающие дольше таймаута.
// Отложенное автосохранение при этом записывается.
type SessionEviction struct {
	log      handlerLogger
	service  Service
	interval time.Duration
}

func NewSessionEviction(log handlerLogger, service Service, interval time.Duration) *SessionEviction {
	return &SessionEviction{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *SessionEviction) TTL() time.Duration {
	return s.interval
}

func (s *SessionEviction) Do(ctx context.Context) error {
	evicted := s.service.EvictIdleSessions(ctx)
	if evicted > 0 {
		s.log.With(
			logger.NewField("evicted_sessions", evicted),
		).Info("idle sessions evicted")
	}
	return nil
}

func (s *SessionEviction) Info() string {
	return "idle session eviction"
}
