package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/pramanandasarkar02/toolsai/internal/model"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/kafka"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/util"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
)

// In-memory repository fakes. The engagement fake holds a reference to
// the model fake and moves the denormalized counters together with the
// fact rows, mirroring the transactional contract of the real store.

type fakeModelRepo struct {
	mu     sync.Mutex
	nextID uint64
	models map[uint64]*model.AIModel
}

func newFakeModelRepo() *fakeModelRepo {
	return &fakeModelRepo{models: make(map[uint64]*model.AIModel)}
}

func (f *fakeModelRepo) seed(m *model.AIModel) *model.AIModel {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m.ID == 0 {
		f.nextID++
		m.ID = f.nextID
	} else if m.ID > f.nextID {
		f.nextID = m.ID
	}
	f.models[m.ID] = m
	return m
}

func (f *fakeModelRepo) GetModelByID(_ context.Context, id uint64) (*model.AIModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.models[id]
	if !ok {
		return nil, nil
	}
	copied := *m
	return &copied, nil
}

func (f *fakeModelRepo) GetModelBySlug(_ context.Context, slug string) (*model.AIModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.models {
		if m.ModelSlug == slug {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeModelRepo) GetModelByIDs(_ context.Context, ids []uint64) ([]*model.AIModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.AIModel, 0, len(ids))
	for _, id := range ids {
		if m, ok := f.models[id]; ok {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeModelRepo) ListModels(_ context.Context, _ repository.ModelFilter, _, _ int) ([]*model.AIModel, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.AIModel, 0, len(f.models))
	for _, m := range f.models {
		copied := *m
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (f *fakeModelRepo) ListActiveModelIDs(context.Context) ([]uint64, error) { return nil, nil }

func (f *fakeModelRepo) GetTrendingModels(_ context.Context, limit int) ([]*model.AIModel, error) {
	models, _, _ := f.ListModels(context.Background(), repository.ModelFilter{}, limit, 0)
	return models, nil
}

func (f *fakeModelRepo) CreateModel(_ context.Context, m *model.AIModel, _ []*model.Tag) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.models {
		if existing.ModelSlug == m.ModelSlug {
			return &mysql.MySQLError{Number: 1062}
		}
	}
	f.nextID++
	m.ID = f.nextID
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	// Tags become link rows only; the service attaches them to the
	// entity itself after the insert, like the real store.
	copied := *m
	f.models[m.ID] = &copied
	return nil
}

func (f *fakeModelRepo) UpdateModel(_ context.Context, m *model.AIModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *m
	f.models[m.ID] = &copied
	return nil
}

func (f *fakeModelRepo) ReplaceModelTags(context.Context, uint64, []*model.Tag) error { return nil }

func (f *fakeModelRepo) UpdateStatus(_ context.Context, id uint64, status string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.models[id]
	if !ok {
		return 0, nil
	}
	m.ModelStatus = status
	return 1, nil
}

func (f *fakeModelRepo) UpdateFeatured(_ context.Context, id uint64, featured bool) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.models[id]
	if !ok {
		return 0, nil
	}
	m.IsFeatured = featured
	return 1, nil
}

func (f *fakeModelRepo) UpdateImageURL(_ context.Context, id uint64, imageURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m, ok := f.models[id]; ok {
		m.ModelImageURL = &imageURL
	}
	return nil
}

func (f *fakeModelRepo) IncrementViewCount(_ context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m, ok := f.models[id]; ok {
		m.ViewCount++
	}
	return nil
}

func (f *fakeModelRepo) SetEngagementCounters(_ context.Context, id uint64, likeCount, commentCount, ratingCount int64, averageRating *float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m, ok := f.models[id]; ok {
		m.LikeCount = int(likeCount)
		m.CommentCount = int(commentCount)
		m.RatingCount = int(ratingCount)
		m.AverageRating = averageRating
	}
	return nil
}

func (f *fakeModelRepo) DeleteModel(_ context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.models, id)
	return nil
}

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint64
	users  map[uint64]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*model.User)}
}

func (f *fakeUserRepo) seed(u *model.User) *model.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID == 0 {
		f.nextID++
		u.ID = f.nextID
	} else if u.ID > f.nextID {
		f.nextID = u.ID
	}
	f.users[u.ID] = u
	return u
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id uint64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetUserByIDs(_ context.Context, ids []uint64) ([]*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			copied := *u
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByVerificationToken(_ context.Context, token string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.VerificationToken != nil && *u.VerificationToken == token {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListUsers(_ context.Context, limit, offset int) ([]*model.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.User, 0, len(f.users))
	for _, u := range f.users {
		copied := *u
		out = append(out, &copied)
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return &mysql.MySQLError{Number: 1062}
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id uint64, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		u.LastLoginAt = &at
	}
	return nil
}

func (f *fakeUserRepo) MarkVerified(_ context.Context, id uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok || u.IsVerified {
		return 0, nil
	}
	u.IsVerified = true
	u.VerificationToken = nil
	return 1, nil
}

func (f *fakeUserRepo) UpdateIsActive(_ context.Context, id uint64, active bool) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return 0, nil
	}
	u.IsActive = active
	return 1, nil
}

type fakeOrgRepo struct {
	mu     sync.Mutex
	nextID uint64
	orgs   map[uint64]*model.Organization
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{orgs: make(map[uint64]*model.Organization)}
}

func (f *fakeOrgRepo) seed(org *model.Organization) *model.Organization {
	f.mu.Lock()
	defer f.mu.Unlock()
	if org.ID == 0 {
		f.nextID++
		org.ID = f.nextID
	} else if org.ID > f.nextID {
		f.nextID = org.ID
	}
	f.orgs[org.ID] = org
	return org
}

func (f *fakeOrgRepo) GetOrgByID(_ context.Context, id uint64) (*model.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	org, ok := f.orgs[id]
	if !ok {
		return nil, nil
	}
	copied := *org
	return &copied, nil
}

func (f *fakeOrgRepo) GetOrgByName(_ context.Context, name string) (*model.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, org := range f.orgs {
		if org.OrgName == name {
			copied := *org
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeOrgRepo) GetOrgByURL(_ context.Context, url string) (*model.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, org := range f.orgs {
		if org.OrgURL == url {
			copied := *org
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeOrgRepo) ListOrgs(_ context.Context, limit, offset int) ([]*model.Organization, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.Organization, 0, len(f.orgs))
	for _, org := range f.orgs {
		copied := *org
		out = append(out, &copied)
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeOrgRepo) CreateOrg(_ context.Context, org *model.Organization) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.orgs {
		if existing.OrgName == org.OrgName || existing.OrgURL == org.OrgURL {
			return &mysql.MySQLError{Number: 1062}
		}
	}
	f.nextID++
	org.ID = f.nextID
	copied := *org
	f.orgs[org.ID] = &copied
	return nil
}

func (f *fakeOrgRepo) UpdateOrg(_ context.Context, org *model.Organization) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *org
	f.orgs[org.ID] = &copied
	return nil
}

func (f *fakeOrgRepo) UpdateIsActive(_ context.Context, id uint64, active bool) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	org, ok := f.orgs[id]
	if !ok {
		return 0, nil
	}
	org.IsActive = active
	return 1, nil
}

type fakeTagRepo struct {
	mu     sync.Mutex
	nextID uint64
	tags   map[uint64]*model.Tag
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[uint64]*model.Tag)}
}

func (f *fakeTagRepo) GetTagByID(_ context.Context, id uint64) (*model.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tags[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTagRepo) GetTagByName(_ context.Context, name string) (*model.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tags {
		if t.Name == name {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeTagRepo) GetTagBySlug(_ context.Context, slug string) (*model.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tags {
		if t.Slug == slug {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeTagRepo) GetOrCreateTag(_ context.Context, name, slug string) (*model.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tags {
		if t.Name == name {
			copied := *t
			return &copied, nil
		}
	}
	f.nextID++
	t := &model.Tag{ID: f.nextID, Name: name, Slug: slug}
	f.tags[t.ID] = t
	copied := *t
	return &copied, nil
}

func (f *fakeTagRepo) GetTagsByNames(_ context.Context, names []string) ([]*model.Tag, error) {
	out := make([]*model.Tag, 0, len(names))
	for _, name := range names {
		if t, _ := f.GetTagByName(context.Background(), name); t != nil {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTagRepo) ListTagsWithUsage(_ context.Context, keyword string, limit, offset int) ([]*repository.TagUsage, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*repository.TagUsage, 0, len(f.tags))
	for _, t := range f.tags {
		if keyword != "" && !strings.Contains(t.Name, keyword) {
			continue
		}
		out = append(out, &repository.TagUsage{Tag: *t})
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

type subKey struct {
	userID uint64
	orgID  uint64
}

type fakeSubscriptionRepo struct {
	mu   sync.Mutex
	subs map[subKey]struct{}
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: make(map[subKey]struct{})}
}

func (f *fakeSubscriptionRepo) CreateSubscription(_ context.Context, sub *model.UserOrgSubscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := subKey{sub.UserID, sub.OrganizationID}
	if _, ok := f.subs[key]; ok {
		return &mysql.MySQLError{Number: 1062}
	}
	f.subs[key] = struct{}{}
	return nil
}

func (f *fakeSubscriptionRepo) DeleteSubscription(_ context.Context, userID, orgID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := subKey{userID, orgID}
	if _, ok := f.subs[key]; !ok {
		return 0, nil
	}
	delete(f.subs, key)
	return 1, nil
}

func (f *fakeSubscriptionRepo) CheckSubscriptionExists(_ context.Context, userID, orgID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.subs[subKey{userID, orgID}]
	return ok, nil
}

func (f *fakeSubscriptionRepo) GetSubscribedOrgIDs(_ context.Context, userID uint64) ([]uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]uint64, 0)
	for key := range f.subs {
		if key.userID == userID {
			ids = append(ids, key.orgID)
		}
	}
	return ids, nil
}

func (f *fakeSubscriptionRepo) GetSubscriberIDs(_ context.Context, orgID uint64) ([]uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]uint64, 0)
	for key := range f.subs {
		if key.orgID == orgID {
			ids = append(ids, key.userID)
		}
	}
	return ids, nil
}

func (f *fakeSubscriptionRepo) CountByOrg(_ context.Context, orgID uint64) (int64, error) {
	ids, _ := f.GetSubscriberIDs(context.Background(), orgID)
	return int64(len(ids)), nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	nextID        uint64
	notifications map[uint64]*model.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[uint64]*model.Notification)}
}

func (f *fakeNotificationRepo) CreateNotification(_ context.Context, n *model.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	n.ID = f.nextID
	n.CreatedAt = time.Now()
	copied := *n
	f.notifications[n.ID] = &copied
	return nil
}

func (f *fakeNotificationRepo) GetNotificationByID(_ context.Context, id uint64) (*model.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notifications[id]
	if !ok {
		return nil, nil
	}
	copied := *n
	return &copied, nil
}

func (f *fakeNotificationRepo) GetNotificationsByReceiver(_ context.Context, receiverID uint64, unreadOnly bool, limit, offset int) ([]*model.Notification, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.Notification, 0)
	for _, n := range f.notifications {
		if n.ReceiverID != receiverID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		copied := *n
		out = append(out, &copied)
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, receiverID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, n := range f.notifications {
		if n.ReceiverID == receiverID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id, receiverID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notifications[id]
	if !ok || n.ReceiverID != receiverID || n.IsRead {
		return 0, nil
	}
	n.IsRead = true
	return 1, nil
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, receiverID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows int64
	for _, n := range f.notifications {
		if n.ReceiverID == receiverID && !n.IsRead {
			n.IsRead = true
			rows++
		}
	}
	return rows, nil
}

func (f *fakeNotificationRepo) DeleteNotification(_ context.Context, id, receiverID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notifications[id]
	if !ok || n.ReceiverID != receiverID {
		return 0, nil
	}
	delete(f.notifications, id)
	return 1, nil
}

type fakeApiKeyRepo struct {
	mu     sync.Mutex
	nextID uint64
	keys   map[uint64]*model.ApiKey
}

func newFakeApiKeyRepo() *fakeApiKeyRepo {
	return &fakeApiKeyRepo{keys: make(map[uint64]*model.ApiKey)}
}

func (f *fakeApiKeyRepo) CreateApiKey(_ context.Context, key *model.ApiKey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	key.ID = f.nextID
	key.CreatedAt = time.Now()
	copied := *key
	f.keys[key.ID] = &copied
	return nil
}

func (f *fakeApiKeyRepo) GetActiveByValue(_ context.Context, value string) (*model.ApiKey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range f.keys {
		if k.KeyValue == value && k.IsActive {
			copied := *k
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeApiKeyRepo) GetApiKeysByUser(_ context.Context, userID uint64) ([]*model.ApiKey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.ApiKey, 0)
	for _, k := range f.keys {
		if k.UserID == userID {
			copied := *k
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeApiKeyRepo) Deactivate(_ context.Context, id, userID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k, ok := f.keys[id]
	if !ok || k.UserID != userID || !k.IsActive {
		return 0, nil
	}
	k.IsActive = false
	return 1, nil
}

func (f *fakeApiKeyRepo) TouchLastUsed(_ context.Context, id uint64, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if k, ok := f.keys[id]; ok {
		k.LastUsedAt = &at
	}
	return nil
}

type likeKey struct {
	userID  uint64
	modelID uint64
}

type fakeEngagementRepo struct {
	mu       sync.Mutex
	models   *fakeModelRepo
	likes    map[likeKey]time.Time
	nextID   uint64
	ratings  map[uint64]*model.ModelRating
	comments map[uint64]*model.ModelComment
}

func newFakeEngagementRepo(models *fakeModelRepo) *fakeEngagementRepo {
	return &fakeEngagementRepo{
		models:   models,
		likes:    make(map[likeKey]time.Time),
		ratings:  make(map[uint64]*model.ModelRating),
		comments: make(map[uint64]*model.ModelComment),
	}
}

func (f *fakeEngagementRepo) CreateLike(_ context.Context, like *model.ModelLike) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := likeKey{like.UserID, like.AIModelID}
	if _, ok := f.likes[key]; ok {
		return &mysql.MySQLError{Number: 1062}
	}
	f.likes[key] = time.Now()
	f.models.mu.Lock()
	if m, ok := f.models.models[like.AIModelID]; ok {
		m.LikeCount++
	}
	f.models.mu.Unlock()
	return nil
}

func (f *fakeEngagementRepo) DeleteLike(_ context.Context, userID, modelID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := likeKey{userID, modelID}
	if _, ok := f.likes[key]; !ok {
		return false, nil
	}
	delete(f.likes, key)
	f.models.mu.Lock()
	if m, ok := f.models.models[modelID]; ok && m.LikeCount > 0 {
		m.LikeCount--
	}
	f.models.mu.Unlock()
	return true, nil
}

func (f *fakeEngagementRepo) CheckLikeExists(_ context.Context, userID, modelID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.likes[likeKey{userID, modelID}]
	return ok, nil
}

func (f *fakeEngagementRepo) GetLikeCountByModelID(_ context.Context, modelID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for key := range f.likes {
		if key.modelID == modelID {
			count++
		}
	}
	return count, nil
}

func (f *fakeEngagementRepo) GetLikedModelIDs(_ context.Context, userID uint64, limit, offset int) ([]uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]uint64, 0)
	for key := range f.likes {
		if key.userID == userID {
			ids = append(ids, key.modelID)
		}
	}
	if offset >= len(ids) {
		return nil, nil
	}
	ids = ids[offset:]
	if limit < len(ids) {
		ids = ids[:limit]
	}
	return ids, nil
}

func (f *fakeEngagementRepo) recomputeAggregateLocked(modelID uint64) {
	var count int64
	var sum int
	for _, r := range f.ratings {
		if r.AIModelID == modelID {
			count++
			sum += r.Rating
		}
	}
	var avg *float64
	if count > 0 {
		avg = util.PtrFloat64(util.RoundHalfUp2(float64(sum) / float64(count)))
	}
	f.models.mu.Lock()
	if m, ok := f.models.models[modelID]; ok {
		m.RatingCount = int(count)
		m.AverageRating = avg
	}
	f.models.mu.Unlock()
}

func (f *fakeEngagementRepo) CreateRating(_ context.Context, rating *model.ModelRating) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.ratings {
		if r.UserID == rating.UserID && r.AIModelID == rating.AIModelID {
			return &mysql.MySQLError{Number: 1062}
		}
	}
	f.nextID++
	rating.ID = f.nextID
	rating.CreatedAt = time.Now()
	rating.UpdatedAt = rating.CreatedAt
	copied := *rating
	f.ratings[rating.ID] = &copied
	f.recomputeAggregateLocked(rating.AIModelID)
	return nil
}

func (f *fakeEngagementRepo) UpdateRating(_ context.Context, rating *model.ModelRating) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rating.UpdatedAt = time.Now()
	copied := *rating
	f.ratings[rating.ID] = &copied
	f.recomputeAggregateLocked(rating.AIModelID)
	return nil
}

func (f *fakeEngagementRepo) DeleteRating(_ context.Context, ratingID, modelID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.ratings[ratingID]; !ok {
		return false, nil
	}
	delete(f.ratings, ratingID)
	f.recomputeAggregateLocked(modelID)
	return true, nil
}

func (f *fakeEngagementRepo) GetRatingByID(_ context.Context, ratingID uint64) (*model.ModelRating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.ratings[ratingID]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (f *fakeEngagementRepo) GetRatingByUserAndModel(_ context.Context, userID, modelID uint64) (*model.ModelRating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.ratings {
		if r.UserID == userID && r.AIModelID == modelID {
			copied := *r
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeEngagementRepo) GetRatingsByModelID(_ context.Context, modelID uint64, limit, offset int) ([]*model.ModelRating, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.ModelRating, 0)
	for _, r := range f.ratings {
		if r.AIModelID == modelID {
			copied := *r
			out = append(out, &copied)
		}
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeEngagementRepo) GetRatingsByUserID(_ context.Context, userID uint64, limit, offset int) ([]*model.ModelRating, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.ModelRating, 0)
	for _, r := range f.ratings {
		if r.UserID == userID {
			copied := *r
			out = append(out, &copied)
		}
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeEngagementRepo) GetRatingAggregate(_ context.Context, modelID uint64) (int64, *float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	var sum int
	for _, r := range f.ratings {
		if r.AIModelID == modelID {
			count++
			sum += r.Rating
		}
	}
	if count == 0 {
		return 0, nil, nil
	}
	return count, util.PtrFloat64(util.RoundHalfUp2(float64(sum) / float64(count))), nil
}

func (f *fakeEngagementRepo) CreateComment(_ context.Context, comment *model.ModelComment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	comment.ID = f.nextID
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	copied := *comment
	f.comments[comment.ID] = &copied
	f.models.mu.Lock()
	if m, ok := f.models.models[comment.AIModelID]; ok {
		m.CommentCount++
	}
	f.models.mu.Unlock()
	return nil
}

func (f *fakeEngagementRepo) UpdateCommentContent(_ context.Context, commentID uint64, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.comments[commentID]; ok && !c.IsDeleted {
		c.Content = content
		c.IsEdited = true
		c.UpdatedAt = time.Now()
	}
	return nil
}

func (f *fakeEngagementRepo) SoftDeleteComment(_ context.Context, commentID, modelID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.comments[commentID]
	if !ok || c.IsDeleted {
		return false, nil
	}
	c.IsDeleted = true
	f.models.mu.Lock()
	if m, ok := f.models.models[modelID]; ok && m.CommentCount > 0 {
		m.CommentCount--
	}
	f.models.mu.Unlock()
	return true, nil
}

func (f *fakeEngagementRepo) GetCommentByID(_ context.Context, commentID uint64) (*model.ModelComment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.comments[commentID]
	if !ok || c.IsDeleted {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeEngagementRepo) GetCommentsByModelID(_ context.Context, modelID uint64, limit, offset int) ([]*model.ModelComment, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.ModelComment, 0)
	for _, c := range f.comments {
		if c.AIModelID == modelID && c.ParentCommentID == 0 && !c.IsDeleted {
			copied := *c
			out = append(out, &copied)
		}
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeEngagementRepo) GetCommentsByUserID(_ context.Context, userID uint64, limit, offset int) ([]*model.ModelComment, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.ModelComment, 0)
	for _, c := range f.comments {
		if c.UserID == userID && !c.IsDeleted {
			copied := *c
			out = append(out, &copied)
		}
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeEngagementRepo) GetRepliesByParentID(_ context.Context, parentID uint64, limit, offset int) ([]*model.ModelComment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.ModelComment, 0)
	for _, c := range f.comments {
		if c.ParentCommentID == parentID && !c.IsDeleted {
			copied := *c
			out = append(out, &copied)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeEngagementRepo) GetCommentCountByModelID(_ context.Context, modelID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, c := range f.comments {
		if c.AIModelID == modelID && !c.IsDeleted {
			count++
		}
	}
	return count, nil
}

// recordingProducer captures published events for assertions.
type recordedEvent struct {
	action  string
	modelID uint64
	userID  uint64
}

type recordingProducer struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingProducer) PublishEngagement(_ context.Context, event *kafka.EngagementEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{action: event.Action, modelID: event.ModelID, userID: event.UserID})
}

func (p *recordingProducer) PublishModelChange(_ context.Context, modelID uint64, action string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{action: action, modelID: modelID})
}

func (p *recordingProducer) Close() error { return nil }

func (p *recordingProducer) actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.action)
	}
	return out
}
