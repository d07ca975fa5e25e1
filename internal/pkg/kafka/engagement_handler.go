package kafka

import (
	"context"
	log "log/slog"

	"github.com/IBM/sarama"

	"github.com/pramanandasarkar02/toolsai/internal/model"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/consts"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/ws"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
)

// EngagementHandler consumes engagement events and fans each one out to
// the cached counters, the dirty set and the contributor's notification
// feed.
type EngagementHandler struct {
	modelRepo        repository.ModelRepo
	userRepo         repository.UserRepo
	notificationRepo repository.NotificationRepo
	hub              *ws.Hub
}

func NewEngagementHandler(
	modelRepo repository.ModelRepo,
	userRepo repository.UserRepo,
	notificationRepo repository.NotificationRepo,
	hub *ws.Hub,
) *EngagementHandler {
	return &EngagementHandler{
		modelRepo:        modelRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		hub:              hub,
	}
}

func (s *EngagementHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("engagement consumer setup")
	return nil
}

func (s *EngagementHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("engagement consumer cleanup")
	return nil
}

func (s *EngagementHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-engagement consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-engagement process batch error", "err", err)
		return err
	}
	return nil
}

func (s *EngagementHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event, err := ToEngagementEvent(msg)
	if err != nil {
		return err
	}

	switch event.Action {
	case ActionLiked:
		ExecAction(ctx, ActionParams{
			TargetID:       event.ModelID,
			CountKeyPrefix: consts.ModelLikeCountKey,
			DirtyKey:       consts.ModelDirtyKey,
			IsIncrement:    true,
			NotifyFunc: func() {
				s.notify(ctx, event, consts.NotificationTypeLike, "liked your model")
			},
		})
	case ActionUnliked:
		ExecAction(ctx, ActionParams{
			TargetID:       event.ModelID,
			CountKeyPrefix: consts.ModelLikeCountKey,
			DirtyKey:       consts.ModelDirtyKey,
			IsIncrement:    false,
		})
	case ActionRated:
		ExecAction(ctx, ActionParams{
			TargetID:       event.ModelID,
			CountKeyPrefix: consts.ModelRatingCountKey,
			DirtyKey:       consts.ModelDirtyKey,
			IsIncrement:    true,
			NotifyFunc: func() {
				s.notify(ctx, event, consts.NotificationTypeRating, "rated your model")
			},
		})
	case ActionRatingDeleted:
		ExecAction(ctx, ActionParams{
			TargetID:       event.ModelID,
			CountKeyPrefix: consts.ModelRatingCountKey,
			DirtyKey:       consts.ModelDirtyKey,
			IsIncrement:    false,
		})
	case ActionCommented:
		ExecAction(ctx, ActionParams{
			TargetID:       event.ModelID,
			CountKeyPrefix: consts.ModelCommentCountKey,
			DirtyKey:       consts.ModelDirtyKey,
			IsIncrement:    true,
			NotifyFunc: func() {
				s.notify(ctx, event, consts.NotificationTypeComment, "commented on your model")
			},
		})
	case ActionCommentDeleted:
		ExecAction(ctx, ActionParams{
			TargetID:       event.ModelID,
			CountKeyPrefix: consts.ModelCommentCountKey,
			DirtyKey:       consts.ModelDirtyKey,
			IsIncrement:    false,
		})
	default:
		log.WarnContext(ctx, "unknown engagement action", "action", event.Action)
	}

	return nil
}

// notify writes a notification row for the model contributor and pushes
// it over the live channel. Self-engagement produces no notification.
func (s *EngagementHandler) notify(ctx context.Context, event *EngagementEvent, notifType, verb string) {
	m, err := s.modelRepo.GetModelByID(ctx, event.ModelID)
	if err != nil || m == nil {
		log.WarnContext(ctx, "failed to get model for notification", "modelID", event.ModelID, "err", err)
		return
	}
	if m.ContributorID == event.UserID {
		return
	}

	senderName := "Someone"
	if sender, err := s.userRepo.GetUserByID(ctx, event.UserID); err == nil && sender != nil {
		senderName = sender.Username
	}

	senderID := event.UserID
	notification := &model.Notification{
		Title:      m.ModelName,
		Message:    senderName + " " + verb + " " + m.ModelName,
		Type:       notifType,
		ReceiverID: m.ContributorID,
		SenderID:   &senderID,
		TargetID:   event.ModelID,
	}
	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		log.ErrorContext(ctx, "failed to create notification", "modelID", event.ModelID, "err", err)
		return
	}

	s.hub.Push(m.ContributorID, notification)
}
