package kafka

import (
	"context"
	log "log/slog"

	"github.com/IBM/sarama"

	"github.com/pramanandasarkar02/toolsai/internal/pkg/es"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
)

// ModelSyncHandler keeps the search index in step with the catalog.
// Events carry only the model id; the current row is reread so a burst
// of changes collapses into one reindex of the latest state.
type ModelSyncHandler struct {
	modelRepo   repository.ModelRepo
	modelESRepo es.ModelRepo
}

func NewModelSyncHandler(modelRepo repository.ModelRepo, modelESRepo es.ModelRepo) *ModelSyncHandler {
	return &ModelSyncHandler{
		modelRepo:   modelRepo,
		modelESRepo: modelESRepo,
	}
}

func (s *ModelSyncHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("model sync consumer setup")
	return nil
}

func (s *ModelSyncHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("model sync consumer cleanup")
	return nil
}

func (s *ModelSyncHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-model consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-model process batch error", "err", err)
		return err
	}
	return nil
}

func (s *ModelSyncHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event, err := ToModelEvent(msg)
	if err != nil {
		return err
	}

	if event.Action == ModelDeleted {
		return s.modelESRepo.DeleteModel(ctx, event.ModelID)
	}

	m, err := s.modelRepo.GetModelByID(ctx, event.ModelID)
	if err != nil {
		return err
	}
	if m == nil {
		// Deleted between publish and consume.
		return s.modelESRepo.DeleteModel(ctx, event.ModelID)
	}

	tags := make([]string, 0, len(m.Tags))
	for _, tag := range m.Tags {
		tags = append(tags, tag.Slug)
	}

	description := ""
	if m.ModelDescription != nil {
		description = *m.ModelDescription
	}

	doc := &es.ModelES{
		ID:               m.ID,
		ModelName:        m.ModelName,
		ModelSlug:        m.ModelSlug,
		Description:      description,
		ModelStatus:      m.ModelStatus,
		Pricing:          m.PricingType,
		OrganizationID:   m.OrganizationID,
		OrganizationName: m.Organization.OrgName,
		Tags:             tags,
		IsFeatured:       m.IsFeatured,
		LikeCount:        int64(m.LikeCount),
		ViewCount:        m.ViewCount,
		AverageRating:    m.AverageRating,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}

	return s.modelESRepo.IndexModel(ctx, doc, event.OccurredAt.UnixMilli())
}
