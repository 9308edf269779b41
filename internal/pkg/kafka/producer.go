package kafka

import (
	"context"
	"fmt"
	"time"

	"booking/internal/pkg/config"
	"booking/pkg/logger"
	"github.com/IBM/sarama"
)

const (
	producerRetryMax     = 5
	producerRetryBackoff = 200 * time.Millisecond
)

func NewProducerConfig(cfg *config.Kafka) (*sarama.Config, error) {
	version, err := parseVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, err
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = version
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Producer.Retry.Max = producerRetryMax
	saramaConfig.Producer.Retry.Backoff = producerRetryBackoff
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	// идемпотентный продюсер требует одного запроса в полете
	saramaConfig.Net.MaxOpenRequests = 1

	return saramaConfig, nil
}

// NewSyncProducer продюсер событий бронирования, закрывает вызывающий.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.SyncProducer, error) {
	saramaConfig, err := NewProducerConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	brokers := SplitBrokers(cfg.Brokers)
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	kafkaLog.Info("Kafka producer created")
	return producer, nil
}
