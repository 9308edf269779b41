package backoff_adapter

import (
	"context"
	"time"

	"booking/pkg/logger"
	"booking/pkg/retrier"
	"github.com/cenkalti/backoff/v4"
)

type Retrier struct {
	config retrier.Config
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config}
}

func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	var b backoff.BackOff = backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.config.InitialInterval),
		backoff.WithMaxInterval(r.config.MaxInterval),
		backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
		backoff.WithRandomizationFactor(r.config.Randomization),
		backoff.WithMultiplier(r.config.Multiplier),
	)
	if r.config.MaxRetries > 0 {
		b = backoff.WithMaxRetries(b, r.config.MaxRetries)
	}

	operation := func() error {
		err := fn(ctx)
		if err != nil && r.config.ShouldRetry != nil && !r.config.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.RetryNotify(operation, backoff.WithContext(b, ctx), backoff.Notify(r.config.Notify))
}

// WaitReady повторяет ping, пока зависимость не ответит или не кончится время из config.
// Notify из config заменяется записью в лог.
func WaitReady(
	ctx context.Context,
	log logger.Logger,
	dependency string,
	config retrier.Config,
	ping func(context.Context) error,
) error {
	config.Notify = func(err error, next time.Duration) {
		log.With(
			logger.NewField("error", err),
			logger.NewField("retry_in", next),
		).Warn(dependency + " connection attempt failed")
	}

	var attempts uint64
	err := New(config).ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempts++
		return ping(ctx)
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempts),
		).Error(dependency + " connection failed after retries")
		return err
	}

	log.With(
		logger.NewField("attempts", attempts),
	).Info(dependency + " connection established")
	return nil
}
