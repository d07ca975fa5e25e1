package kafka

import (
	"context"
	log "log/slog"

	"github.com/IBM/sarama"

	"github.com/pramanandasarkar02/toolsai/internal/api/config"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/es"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/ws"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
)

// ConsumerManager owns every Kafka consumer group.
type ConsumerManager struct {
	engagementConsumer sarama.ConsumerGroup
	engagementHandler  sarama.ConsumerGroupHandler

	modelConsumer sarama.ConsumerGroup
	modelHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(
	cfg *config.Config,
	modelRepo repository.ModelRepo,
	userRepo repository.UserRepo,
	notificationRepo repository.NotificationRepo,
	modelESRepo es.ModelRepo,
	hub *ws.Hub,
) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	engagementConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaTopics.EngagementGroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	engagementHandler := NewEngagementHandler(modelRepo, userRepo, notificationRepo, hub)

	modelConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaTopics.ModelGroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	modelHandler := NewModelSyncHandler(modelRepo, modelESRepo)

	return &ConsumerManager{
		engagementConsumer: engagementConsumer,
		engagementHandler:  engagementHandler,
		modelConsumer:      modelConsumer,
		modelHandler:       modelHandler,
	}, nil
}

// Start runs every consumer until the context is cancelled.
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaTopics.EngagementTopic
		log.Info("Engagement consumer started", "topic", topic)
		for {
			if err := m.engagementConsumer.Consume(ctx, []string{topic}, m.engagementHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		topic := cfg.KafkaTopics.ModelTopic
		log.Info("Model sync consumer started", "topic", topic)
		for {
			if err := m.modelConsumer.Consume(ctx, []string{topic}, m.modelHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.engagementConsumer.Close(); err != nil {
		log.Error("Failed to close engagement consumer", "err", err)
	}
	if err := m.modelConsumer.Close(); err != nil {
		log.Error("Failed to close model sync consumer", "err", err)
	}

	return nil
}
