package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"booking/pkg/logger"
	retrierconfig "booking/pkg/retrier"
	"booking/pkg/retrier/backoff_adapter"
	"github.com/IBM/sarama"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// SplitBrokers разбирает KAFKA_BROKERS вида "host1:9092, host2:9092".
func SplitBrokers(raw string) []string {
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			brokers = append(brokers, part)
		}
	}
	return brokers
}

func parseVersion(versionStr string) (sarama.KafkaVersion, error) {
	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return sarama.KafkaVersion{}, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	return version, nil
}

func pingKafka(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	err := backoff_adapter.WaitReady(ctx, log, "Kafka", retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableKafkaError,
	}, func(context.Context) error {
		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}

		defer func() {
			err := client.Close()
			if err != nil {
				log.Error("failed to close Kafka connection",
					logger.NewField("error", err),
				)
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	return nil
}

// isRetryableKafkaError ошибка конфигурации sarama повтором не лечится
func isRetryableKafkaError(err error) bool {
	var cfgErr sarama.ConfigurationError
	return !errors.As(err, &cfgErr)
}
