package kafka

import (
	"context"
	"fmt"
	"time"

	"feecalc/internal/pkg/config"
	"feecalc/pkg/logger"
	"github.com/IBM/sarama"
)

const (
	producerRetryMax     = 3
	producerRetryBackoff = 250 * time.Millisecond
)

func NewProducerConfig(cfg *config.Kafka) (*sarama.Config, error) {
	saramaConfig, err := NewSaramaConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	// SyncProducer требует Return.Successes
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = producerRetryMax
	saramaConfig.Producer.Retry.Backoff = producerRetryBackoff
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	return saramaConfig, nil
}

// NewSyncProducer дожидается доступности брокеров и создает синхронный producer.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string) (sarama.SyncProducer, error) {
	saramaConfig, err := NewProducerConfig(cfg)
	if err != nil {
		return nil, err
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.FeeCalculatedTopic),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	kafkaLog.Info("Kafka producer created")
	return producer, nil
}
