package kafka

import (
	"context"
	log "log/slog"
	"strconv"

	"github.com/pramanandasarkar02/toolsai/internal/pkg/redis"
)

// ActionParams drives one cached-counter adjustment on the consumer
// side. The database counter was already updated transactionally; here
// we keep the redis read cache warm and mark the model dirty so the
// reconcile job recounts it from the fact tables.
type ActionParams struct {
	TargetID       uint64
	CountKeyPrefix string
	DirtyKey       string
	IsIncrement    bool
	NotifyFunc     func()
}

// ExecAction adjusts the cached count when it is already populated,
// marks the target dirty and fires the optional notification hook.
// A cache miss is left alone so the next read repopulates it from the
// fact table.
func ExecAction(ctx context.Context, params ActionParams) {
	countKey := params.CountKeyPrefix + strconv.FormatUint(params.TargetID, 10)

	if _, err := redis.GetInt64(ctx, countKey); err == nil {
		delta := int64(1)
		if !params.IsIncrement {
			delta = -1
		}
		if err := redis.IncrBy(ctx, countKey, delta); err != nil {
			log.WarnContext(ctx, "adjust cached count failed", "key", countKey, "err", err)
		}
	}

	if params.DirtyKey != "" {
		if err := redis.SAdd(ctx, params.DirtyKey, params.TargetID); err != nil {
			log.WarnContext(ctx, "mark dirty failed", "key", params.DirtyKey, "targetID", params.TargetID, "err", err)
		}
	}

	if params.NotifyFunc != nil {
		params.NotifyFunc()
	}
}
