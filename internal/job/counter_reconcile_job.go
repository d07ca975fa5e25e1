package job

import (
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pramanandasarkar02/toolsai/internal/pkg/consts"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/redis"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/util"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
)

const (
	reconcileTimeout   = 10 * time.Minute
	counterCacheTTL    = 7 * 24 * time.Hour
	dirtyProcessingKey = consts.ModelDirtyKey + ":processing"
)

// CounterReconcileJob drains the dirty set and rewrites the denormalized
// counters of each touched model from the fact tables. The dirty set is
// renamed before reading so ids marked during the run land in the next one.
type CounterReconcileJob struct {
	modelRepo      repository.ModelRepo
	engagementRepo repository.EngagementRepo
}

func NewCounterReconcileJob(modelRepo repository.ModelRepo, engagementRepo repository.EngagementRepo) *CounterReconcileJob {
	return &CounterReconcileJob{
		modelRepo:      modelRepo,
		engagementRepo: engagementRepo,
	}
}

func (s *CounterReconcileJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
	defer cancel()

	if err := redis.Rename(ctx, consts.ModelDirtyKey, dirtyProcessingKey); err != nil {
		if errors.Is(err, goredis.Nil) || err.Error() == "ERR no such key" {
			return
		}
		log.ErrorContext(ctx, "rename dirty set failed", "err", err)
		return
	}

	members, err := redis.GetSet(ctx, dirtyProcessingKey)
	if err != nil {
		log.ErrorContext(ctx, "read dirty set failed", "err", err)
		return
	}
	ids, err := util.StrSliceToUint64Slice(members)
	if err != nil {
		log.ErrorContext(ctx, "dirty set holds non-numeric member", "err", err)
	}

	reconciled := 0
	for _, id := range ids {
		if err := s.reconcileModel(ctx, id); err != nil {
			log.ErrorContext(ctx, "reconcile model failed", "modelID", id, "err", err)
			// Put it back so the next run retries.
			_ = redis.SAdd(ctx, consts.ModelDirtyKey, strconv.FormatUint(id, 10))
			continue
		}
		reconciled++
	}

	if err := redis.DeleteKey(ctx, dirtyProcessingKey); err != nil {
		log.WarnContext(ctx, "delete processing set failed", "err", err)
	}
	log.InfoContext(ctx, "counter reconcile finished", "dirty", len(ids), "reconciled", reconciled)
}

func (s *CounterReconcileJob) reconcileModel(ctx context.Context, modelID uint64) error {
	likeCount, err := s.engagementRepo.GetLikeCountByModelID(ctx, modelID)
	if err != nil {
		return err
	}
	commentCount, err := s.engagementRepo.GetCommentCountByModelID(ctx, modelID)
	if err != nil {
		return err
	}
	ratingCount, averageRating, err := s.engagementRepo.GetRatingAggregate(ctx, modelID)
	if err != nil {
		return err
	}

	if err := s.modelRepo.SetEngagementCounters(ctx, modelID, likeCount, commentCount, ratingCount, averageRating); err != nil {
		return err
	}

	id := strconv.FormatUint(modelID, 10)
	_ = redis.SetWithExpiration(ctx, consts.ModelLikeCountKey+id, likeCount, counterCacheTTL)
	_ = redis.SetWithExpiration(ctx, consts.ModelCommentCountKey+id, commentCount, counterCacheTTL)
	_ = redis.SetWithExpiration(ctx, consts.ModelRatingCountKey+id, ratingCount, counterCacheTTL)
	return nil
}
