package kafka

import (
	"strconv"
	"time"
)

// Engagement event actions.
const (
	ActionLiked          = "LIKED"
	ActionUnliked        = "UNLIKED"
	ActionRated          = "RATED"
	ActionRatingDeleted  = "RATING_DELETED"
	ActionCommented      = "COMMENTED"
	ActionCommentDeleted = "COMMENT_DELETED"
)

// Model event actions.
const (
	ModelUpserted = "UPSERTED"
	ModelDeleted  = "DELETED"
)

// EngagementEvent is published after an engagement write commits. The
// consumer side fans it out to notifications, cached counters and the
// dirty set. ModelID keys the partition so events for one model stay
// ordered.
type EngagementEvent struct {
	Action     string    `json:"action"`
	UserID     uint64    `json:"user_id"`
	ModelID    uint64    `json:"model_id"`
	TargetID   uint64    `json:"target_id,omitempty"`
	Rating     int       `json:"rating,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ModelEvent signals that a catalog model changed and its search
// document must be resynced.
type ModelEvent struct {
	Action     string    `json:"action"`
	ModelID    uint64    `json:"model_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e *EngagementEvent) Key() string {
	return strconv.FormatUint(e.ModelID, 10)
}

func (e *ModelEvent) Key() string {
	return strconv.FormatUint(e.ModelID, 10)
}
