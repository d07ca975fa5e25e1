package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	log "log/slog"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/consts"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/llm"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/redis"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
)

const tagSuggestCacheTTL = 24 * time.Hour

type TagService interface {
	ListTags(ctx context.Context, keyword string, page, pageSize int) (*dto.PageResponse, error)
	GetTagBySlug(ctx context.Context, slug string) (*dto.TagDTO, error)
	SuggestTags(ctx context.Context, req *dto.TagSuggestDTO) ([]string, error)
}

type tagServiceImpl struct {
	tagRepo repository.TagRepo
}

func NewTagService(tagRepo repository.TagRepo) TagService {
	return &tagServiceImpl{tagRepo: tagRepo}
}

func (s *tagServiceImpl) ListTags(ctx context.Context, keyword string, page, pageSize int) (*dto.PageResponse, error) {
	offset := (page - 1) * pageSize
	tags, total, err := s.tagRepo.ListTagsWithUsage(ctx, strings.TrimSpace(keyword), pageSize, offset)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.TagUsageDTO, 0, len(tags))
	for _, t := range tags {
		list = append(list, &dto.TagUsageDTO{
			ID:         t.ID,
			Name:       t.Name,
			Slug:       t.Slug,
			ModelCount: t.ModelCount,
		})
	}
	return &dto.PageResponse{
		Content:    list,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
	}, nil
}

func (s *tagServiceImpl) GetTagBySlug(ctx context.Context, slug string) (*dto.TagDTO, error) {
	tag, err := s.tagRepo.GetTagBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, ErrTagNotFound
	}
	return &dto.TagDTO{ID: tag.ID, Name: tag.Name, Slug: tag.Slug}, nil
}

// SuggestTags caches completions by input digest; the same description
// keeps hitting the same answer instead of the model.
func (s *tagServiceImpl) SuggestTags(ctx context.Context, req *dto.TagSuggestDTO) ([]string, error) {
	if !llm.Enabled() {
		return nil, ErrSuggestUnavailable
	}

	digest := md5.Sum([]byte(req.ModelName + "\x00" + req.Description))
	cacheKey := consts.TagSuggestKey + hex.EncodeToString(digest[:])

	if cached, err := redis.GetValue(ctx, cacheKey); err == nil && cached != "" {
		var tags []string
		if err := json.Unmarshal([]byte(cached), &tags); err == nil {
			return tags, nil
		}
	}

	tags, err := llm.SuggestTags(ctx, req.ModelName, req.Description)
	if err != nil {
		if errors.Is(err, llm.ErrNotEnabled) {
			return nil, ErrSuggestUnavailable
		}
		return nil, err
	}

	if payload, err := json.Marshal(tags); err == nil {
		if err := redis.SetWithExpiration(ctx, cacheKey, payload, tagSuggestCacheTTL); err != nil {
			log.WarnContext(ctx, "cache tag suggestions failed", "err", err)
		}
	}
	return tags, nil
}
