package service

import (
	"context"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/model"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/consts"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/es"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/fetcher"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/kafka"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/redis"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/util"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
)

type ModelService interface {
	CreateModel(ctx context.Context, contributorID uint64, req *dto.ModelCreateDTO) (*dto.ModelDTO, error)
	GetModelByID(ctx context.Context, id uint64) (*dto.ModelDTO, error)
	GetModelBySlug(ctx context.Context, slug string) (*dto.ModelDTO, error)
	UpdateModel(ctx context.Context, userID, modelID uint64, isAdmin bool, req *dto.ModelUpdateDTO) (*dto.ModelDTO, error)
	UpdateStatus(ctx context.Context, modelID uint64, status string) error
	SetFeatured(ctx context.Context, modelID uint64, featured bool) error
	DeleteModel(ctx context.Context, userID, modelID uint64, isAdmin bool) error
	ListModels(ctx context.Context, filter repository.ModelFilter, page, pageSize int) (*dto.PageResponse, error)
	SearchModels(ctx context.Context, query, tagSlug string, page, pageSize int) ([]*dto.ModelDTO, error)
	GetTrendingModels(ctx context.Context, limit int) ([]*dto.ModelDTO, error)
	GetSuggestions(ctx context.Context, prefix string) ([]string, error)
	GetEngagementState(ctx context.Context, userID, modelID uint64) (*dto.EngagementStateDTO, error)
	GetViewCount(ctx context.Context, modelID uint64) (int64, error)
	FetchDocMetadata(ctx context.Context, url string) (*dto.ModelMetadataDTO, error)
}

type modelServiceImpl struct {
	modelRepo      repository.ModelRepo
	orgRepo        repository.OrganizationRepo
	tagRepo        repository.TagRepo
	engagementRepo repository.EngagementRepo
	modelESRepo    es.ModelRepo
	producer       kafka.Producer
	pageFetcher    *fetcher.PageFetcher
}

func NewModelService(
	modelRepo repository.ModelRepo,
	orgRepo repository.OrganizationRepo,
	tagRepo repository.TagRepo,
	engagementRepo repository.EngagementRepo,
	modelESRepo es.ModelRepo,
	producer kafka.Producer,
	pageFetcher *fetcher.PageFetcher,
) ModelService {
	return &modelServiceImpl{
		modelRepo:      modelRepo,
		orgRepo:        orgRepo,
		tagRepo:        tagRepo,
		engagementRepo: engagementRepo,
		modelESRepo:    modelESRepo,
		producer:       producer,
		pageFetcher:    pageFetcher,
	}
}

func (s *modelServiceImpl) CreateModel(ctx context.Context, contributorID uint64, req *dto.ModelCreateDTO) (*dto.ModelDTO, error) {
	slug := util.Slugify(req.ModelSlug)
	if slug == "" {
		return nil, ErrParamInvalid
	}

	existing, err := s.modelRepo.GetModelBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugExists
	}

	org, err := s.orgRepo.GetOrgByID(ctx, req.OrganizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrgNotFound
	}

	tags, err := s.resolveTags(ctx, req.TagNames)
	if err != nil {
		return nil, err
	}

	currency := "USD"
	if req.Currency != nil && *req.Currency != "" {
		currency = *req.Currency
	}

	m := &model.AIModel{
		ModelName:        req.ModelName,
		ModelSlug:        slug,
		ModelDescription: req.ModelDescription,
		ModelVersion:     req.ModelVersion,
		ModelCategory:    req.ModelCategory,
		PricingType:      req.PricingType,
		ModelPrice:       req.ModelPrice,
		Currency:         currency,
		PricingUnit:      req.PricingUnit,
		ApiURL:           req.ApiURL,
		DocumentationURL: req.DocumentationURL,
		ModelImageURL:    req.ModelImageURL,
		ModelStatus:      consts.ModelStatusPendingApproval,
		OrganizationID:   req.OrganizationID,
		ContributorID:    contributorID,
	}

	if err := s.modelRepo.CreateModel(ctx, m, tags); err != nil {
		if isDuplicateError(err) {
			return nil, ErrSlugExists
		}
		return nil, err
	}

	s.producer.PublishModelChange(ctx, m.ID, kafka.ModelUpserted)

	m.Organization = *org
	for _, t := range tags {
		m.Tags = append(m.Tags, *t)
	}
	return toModelDTO(m), nil
}

// GetModelByID returns the model and registers one view. The view
// increment is a fire-and-forget column bump; the cached count follows
// when present.
func (s *modelServiceImpl) GetModelByID(ctx context.Context, id uint64) (*dto.ModelDTO, error) {
	m, err := s.modelRepo.GetModelByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrModelNotFound
	}

	s.trackView(ctx, m.ID)
	m.ViewCount++
	return toModelDTO(m), nil
}

func (s *modelServiceImpl) GetModelBySlug(ctx context.Context, slug string) (*dto.ModelDTO, error) {
	m, err := s.modelRepo.GetModelBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrModelNotFound
	}

	s.trackView(ctx, m.ID)
	m.ViewCount++
	return toModelDTO(m), nil
}

func (s *modelServiceImpl) trackView(ctx context.Context, modelID uint64) {
	if err := s.modelRepo.IncrementViewCount(ctx, modelID); err != nil {
		log.WarnContext(ctx, "increment view count failed", "modelID", modelID, "err", err)
		return
	}
	key := consts.ModelViewCountKey + strconv.FormatUint(modelID, 10)
	if _, err := redis.GetInt64(ctx, key); err == nil {
		_ = redis.Incr(ctx, key)
	}
}

func (s *modelServiceImpl) UpdateModel(ctx context.Context, userID, modelID uint64, isAdmin bool, req *dto.ModelUpdateDTO) (*dto.ModelDTO, error) {
	m, err := s.modelRepo.GetModelByID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrModelNotFound
	}
	if m.ContributorID != userID && !isAdmin {
		return nil, ErrForbidden
	}

	if req.ModelDescription != nil {
		m.ModelDescription = req.ModelDescription
	}
	if req.ModelVersion != nil {
		m.ModelVersion = *req.ModelVersion
	}
	if req.ModelCategory != nil {
		m.ModelCategory = *req.ModelCategory
	}
	if req.PricingType != nil {
		m.PricingType = *req.PricingType
	}
	if req.ModelPrice != nil {
		m.ModelPrice = req.ModelPrice
	}
	if req.Currency != nil {
		m.Currency = *req.Currency
	}
	if req.PricingUnit != nil {
		m.PricingUnit = req.PricingUnit
	}
	if req.ApiURL != nil {
		m.ApiURL = req.ApiURL
	}
	if req.DocumentationURL != nil {
		m.DocumentationURL = req.DocumentationURL
	}
	if req.ModelImageURL != nil {
		m.ModelImageURL = req.ModelImageURL
	}

	if err := s.modelRepo.UpdateModel(ctx, m); err != nil {
		return nil, err
	}

	s.producer.PublishModelChange(ctx, m.ID, kafka.ModelUpserted)
	return toModelDTO(m), nil
}

func (s *modelServiceImpl) UpdateStatus(ctx context.Context, modelID uint64, status string) error {
	rows, err := s.modelRepo.UpdateStatus(ctx, modelID, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrModelNotFound
	}
	s.producer.PublishModelChange(ctx, modelID, kafka.ModelUpserted)
	return nil
}

func (s *modelServiceImpl) SetFeatured(ctx context.Context, modelID uint64, featured bool) error {
	rows, err := s.modelRepo.UpdateFeatured(ctx, modelID, featured)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrModelNotFound
	}
	s.producer.PublishModelChange(ctx, modelID, kafka.ModelUpserted)
	return nil
}

func (s *modelServiceImpl) DeleteModel(ctx context.Context, userID, modelID uint64, isAdmin bool) error {
	m, err := s.modelRepo.GetModelByID(ctx, modelID)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrModelNotFound
	}
	if m.ContributorID != userID && !isAdmin {
		return ErrForbidden
	}

	if err := s.modelRepo.DeleteModel(ctx, modelID); err != nil {
		return err
	}

	s.producer.PublishModelChange(ctx, modelID, kafka.ModelDeleted)
	return nil
}

func (s *modelServiceImpl) ListModels(ctx context.Context, filter repository.ModelFilter, page, pageSize int) (*dto.PageResponse, error) {
	offset := (page - 1) * pageSize
	models, total, err := s.modelRepo.ListModels(ctx, filter, pageSize, offset)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.ModelDTO, 0, len(models))
	for _, m := range models {
		list = append(list, toModelDTO(m))
	}
	return &dto.PageResponse{
		Content:    list,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
	}, nil
}

// SearchModels queries the search index first and falls back to a LIKE
// scan when the cluster is unavailable.
func (s *modelServiceImpl) SearchModels(ctx context.Context, query, tagSlug string, page, pageSize int) ([]*dto.ModelDTO, error) {
	offset := (page - 1) * pageSize

	if s.modelESRepo != nil {
		docs, err := s.modelESRepo.SearchModels(ctx, query, tagSlug, offset, pageSize)
		if err == nil {
			ids := make([]uint64, 0, len(docs))
			for _, d := range docs {
				ids = append(ids, d.ID)
			}
			if len(ids) == 0 {
				return []*dto.ModelDTO{}, nil
			}
			models, err := s.modelRepo.GetModelByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			byID := make(map[uint64]*model.AIModel, len(models))
			for _, m := range models {
				byID[m.ID] = m
			}
			list := make([]*dto.ModelDTO, 0, len(ids))
			for _, id := range ids {
				if m, ok := byID[id]; ok {
					list = append(list, toModelDTO(m))
				}
			}
			return list, nil
		}
		log.WarnContext(ctx, "search index unavailable, falling back to database", "err", err)
	}

	filter := repository.ModelFilter{
		Status:  consts.ModelStatusActive,
		TagSlug: tagSlug,
		Keyword: strings.TrimSpace(query),
	}
	models, _, err := s.modelRepo.ListModels(ctx, filter, pageSize, offset)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.ModelDTO, 0, len(models))
	for _, m := range models {
		list = append(list, toModelDTO(m))
	}
	return list, nil
}

func (s *modelServiceImpl) GetTrendingModels(ctx context.Context, limit int) ([]*dto.ModelDTO, error) {
	if limit < 1 || limit > consts.MaxPageSize {
		limit = consts.DefaultPageSize
	}
	models, err := s.modelRepo.GetTrendingModels(ctx, limit)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.ModelDTO, 0, len(models))
	for _, m := range models {
		list = append(list, toModelDTO(m))
	}
	return list, nil
}

// GetSuggestions returns search-as-you-type completions. Without a
// search cluster it degrades to an empty list.
func (s *modelServiceImpl) GetSuggestions(ctx context.Context, prefix string) ([]string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" || s.modelESRepo == nil {
		return []string{}, nil
	}
	suggestions, err := s.modelESRepo.GetSuggestions(ctx, prefix)
	if err != nil {
		log.WarnContext(ctx, "suggestion lookup failed", "err", err)
		return []string{}, nil
	}
	return suggestions, nil
}

// GetEngagementState reports the denormalized counters plus whether the
// calling user has liked the model. userID of 0 means anonymous.
func (s *modelServiceImpl) GetEngagementState(ctx context.Context, userID, modelID uint64) (*dto.EngagementStateDTO, error) {
	m, err := s.modelRepo.GetModelByID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrModelNotFound
	}

	state := &dto.EngagementStateDTO{
		LikeCount:    int64(m.LikeCount),
		CommentCount: int64(m.CommentCount),
		RatingCount:  int64(m.RatingCount),
		ViewCount:    m.ViewCount,
	}
	if userID != 0 {
		liked, err := s.engagementRepo.CheckLikeExists(ctx, userID, modelID)
		if err != nil {
			return nil, err
		}
		state.IsLiked = liked
	}
	return state, nil
}

func (s *modelServiceImpl) GetViewCount(ctx context.Context, modelID uint64) (int64, error) {
	key := consts.ModelViewCountKey + strconv.FormatUint(modelID, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}

	m, err := s.modelRepo.GetModelByID(ctx, modelID)
	if err != nil {
		return 0, err
	}
	if m == nil {
		return 0, ErrModelNotFound
	}

	_ = redis.SetWithExpiration(ctx, key, m.ViewCount, cacheExpiration)
	return m.ViewCount, nil
}

// FetchDocMetadata prefills model fields from a documentation page.
func (s *modelServiceImpl) FetchDocMetadata(ctx context.Context, url string) (*dto.ModelMetadataDTO, error) {
	if s.pageFetcher == nil {
		return nil, ErrUnexpected
	}
	fetchCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	meta, err := s.pageFetcher.FetchMetadata(fetchCtx, url)
	if err != nil {
		return nil, ErrParamInvalid
	}

	description := meta.Description
	if description == "" {
		description = meta.Excerpt
	}
	return &dto.ModelMetadataDTO{
		Title:       meta.Title,
		Description: description,
		SiteName:    meta.SiteName,
	}, nil
}

// resolveTags normalizes names to lowercase and gets or creates each tag.
func (s *modelServiceImpl) resolveTags(ctx context.Context, names []string) ([]*model.Tag, error) {
	tags := make([]*model.Tag, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}

		tag, err := s.tagRepo.GetOrCreateTag(ctx, normalized, util.Slugify(normalized))
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func toModelDTO(m *model.AIModel) *dto.ModelDTO {
	tags := make([]string, 0, len(m.Tags))
	for _, t := range m.Tags {
		tags = append(tags, t.Name)
	}

	return &dto.ModelDTO{
		ID:               m.ID,
		ModelName:        m.ModelName,
		ModelSlug:        m.ModelSlug,
		ModelDescription: m.ModelDescription,
		ModelVersion:     m.ModelVersion,
		ModelCategory:    m.ModelCategory,
		PricingType:      m.PricingType,
		ModelPrice:       m.ModelPrice,
		Currency:         m.Currency,
		PricingUnit:      m.PricingUnit,
		ApiURL:           m.ApiURL,
		DocumentationURL: m.DocumentationURL,
		ModelImageURL:    m.ModelImageURL,
		ModelStatus:      m.ModelStatus,
		IsFeatured:       m.IsFeatured,
		LikeCount:        m.LikeCount,
		CommentCount:     m.CommentCount,
		ViewCount:        m.ViewCount,
		AverageRating:    m.AverageRating,
		RatingCount:      m.RatingCount,
		OrganizationID:   m.OrganizationID,
		OrganizationName: m.Organization.OrgName,
		Tags:             tags,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
