package kafka

import (
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"

	"github.com/pramanandasarkar02/toolsai/internal/api/config"
)

// Producer publishes engagement and model change events. Publishing is
// best effort: the database write has already committed, so a broker
// failure is logged and swallowed rather than surfaced to the caller.
type Producer interface {
	PublishEngagement(ctx context.Context, event *EngagementEvent)
	PublishModelChange(ctx context.Context, modelID uint64, action string)
	Close() error
}

type ProducerImpl struct {
	producer        sarama.SyncProducer
	engagementTopic string
	modelTopic      string
}

func NewProducer(cfg *config.Config) (Producer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, newProducerConfig(cfg.Kafka))
	if err != nil {
		return nil, err
	}
	return &ProducerImpl{
		producer:        producer,
		engagementTopic: cfg.KafkaTopics.EngagementTopic,
		modelTopic:      cfg.KafkaTopics.ModelTopic,
	}, nil
}

func (s *ProducerImpl) PublishEngagement(ctx context.Context, event *EngagementEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	s.send(ctx, s.engagementTopic, event.Key(), event)
}

func (s *ProducerImpl) PublishModelChange(ctx context.Context, modelID uint64, action string) {
	event := &ModelEvent{
		Action:     action,
		ModelID:    modelID,
		OccurredAt: time.Now(),
	}
	s.send(ctx, s.modelTopic, event.Key(), event)
}

func (s *ProducerImpl) send(ctx context.Context, topic, key string, payload interface{}) {
	value, err := json.Marshal(payload)
	if err != nil {
		log.ErrorContext(ctx, "marshal event error", "topic", topic, "err", err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		log.ErrorContext(ctx, "send event error", "topic", topic, "key", key, "err", err)
		return
	}
	log.DebugContext(ctx, "event published", "topic", topic, "partition", partition, "offset", offset)
}

func (s *ProducerImpl) Close() error {
	return s.producer.Close()
}

// NopProducer is used when Kafka is not configured. Events are dropped.
type NopProducer struct{}

func (NopProducer) PublishEngagement(context.Context, *EngagementEvent) {}

func (NopProducer) PublishModelChange(context.Context, uint64, string) {}

func (NopProducer) Close() error { return nil }
