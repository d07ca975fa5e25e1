package job

import (
	"context"
	log "log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/pramanandasarkar02/toolsai/internal/api/config"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/consts"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/redis"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
)

const (
	healthLockTTL     = 25 * time.Minute
	healthStatusTTL   = time.Hour
	healthProbeWindow = 20 * time.Minute
)

// ModelHealthJob probes the API endpoint of every active model and
// records the outcome in redis. A redis lock keeps multiple instances
// from probing the same round.
type ModelHealthJob struct {
	modelRepo repository.ModelRepo
	client    *resty.Client
}

func NewModelHealthJob(modelRepo repository.ModelRepo, cfg config.HealthCheckerConfig) *ModelHealthJob {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(1).
		SetHeader("User-Agent", "toolsai-health-checker/1.0")

	return &ModelHealthJob{
		modelRepo: modelRepo,
		client:    client,
	}
}

func (s *ModelHealthJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), healthProbeWindow)
	defer cancel()

	owner := uuid.NewString()
	locked, err := redis.TryLock(ctx, consts.ModelHealthLock, owner, healthLockTTL, 0)
	if err != nil {
		log.ErrorContext(ctx, "acquire health lock failed", "err", err)
		return
	}
	if !locked {
		return
	}
	defer redis.UnLock(ctx, consts.ModelHealthLock, owner)

	ids, err := s.modelRepo.ListActiveModelIDs(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list active models failed", "err", err)
		return
	}

	healthy, unhealthy := 0, 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return
		}
		m, err := s.modelRepo.GetModelByID(ctx, id)
		if err != nil || m == nil {
			continue
		}
		if m.ApiURL == nil || *m.ApiURL == "" {
			continue
		}

		up := s.probe(ctx, *m.ApiURL)
		status := "DOWN"
		if up {
			status = "UP"
			healthy++
		} else {
			unhealthy++
			log.WarnContext(ctx, "model endpoint unhealthy", "modelID", id, "url", *m.ApiURL)
		}
		key := consts.ModelHealthStatusKey + strconv.FormatUint(id, 10)
		_ = redis.SetWithExpiration(ctx, key, status, healthStatusTTL)
	}

	log.InfoContext(ctx, "model health round finished", "healthy", healthy, "unhealthy", unhealthy)
}

func (s *ModelHealthJob) probe(ctx context.Context, url string) bool {
	resp, err := s.client.R().SetContext(ctx).Head(url)
	if err == nil && resp.StatusCode() < http.StatusInternalServerError {
		return true
	}

	// Some endpoints reject HEAD outright; retry once with GET.
	resp, err = s.client.R().SetContext(ctx).Get(url)
	return err == nil && resp.StatusCode() < http.StatusInternalServerError
}
