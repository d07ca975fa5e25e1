package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/kafka"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/util"
)

func newRatingFixture() (*fakeModelRepo, *fakeUserRepo, *fakeEngagementRepo, *recordingProducer, RatingService) {
	modelRepo := newFakeModelRepo()
	userRepo := newFakeUserRepo()
	engagementRepo := newFakeEngagementRepo(modelRepo)
	producer := &recordingProducer{}
	svc := NewRatingService(engagementRepo, modelRepo, userRepo, producer)
	return modelRepo, userRepo, engagementRepo, producer, svc
}

func TestUpsertRatingCreateThenOverwrite(t *testing.T) {
	ctx := context.Background()
	modelRepo, userRepo, _, producer, svc := newRatingFixture()
	m := seedActiveModel(modelRepo, "gpt-helper")
	u := seedUser(userRepo, "alice")

	got, err := svc.UpsertRating(ctx, u.ID, m.ID, &dto.RatingCreateDTO{Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, "alice", got.Username)

	stored, _ := modelRepo.GetModelByID(ctx, m.ID)
	assert.Equal(t, 1, stored.RatingCount)
	require.NotNil(t, stored.AverageRating)
	assert.Equal(t, 4.0, *stored.AverageRating)

	// Overwrite keeps a single row per (user, model).
	got, err = svc.UpsertRating(ctx, u.ID, m.ID, &dto.RatingCreateDTO{Rating: 5, Review: util.PtrStr("great")})
	require.NoError(t, err)
	assert.Equal(t, 5, got.Rating)

	stored, _ = modelRepo.GetModelByID(ctx, m.ID)
	assert.Equal(t, 1, stored.RatingCount)
	assert.Equal(t, 5.0, *stored.AverageRating)

	// Only the initial create emits an event.
	assert.Equal(t, []string{kafka.ActionRated}, producer.actions())
}

func TestUpsertRatingOutOfRange(t *testing.T) {
	ctx := context.Background()
	modelRepo, userRepo, _, _, svc := newRatingFixture()
	m := seedActiveModel(modelRepo, "gpt-helper")
	u := seedUser(userRepo, "alice")

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.UpsertRating(ctx, u.ID, m.ID, &dto.RatingCreateDTO{Rating: rating})
		assert.ErrorIs(t, err, ErrRatingOutOfRange)
	}
}

func TestUpsertRatingAverageRounding(t *testing.T) {
	ctx := context.Background()
	modelRepo, userRepo, _, _, svc := newRatingFixture()
	m := seedActiveModel(modelRepo, "gpt-helper")

	for i, rating := range []int{5, 4, 4} {
		u := seedUser(userRepo, []string{"alice", "bob", "carol"}[i])
		_, err := svc.UpsertRating(ctx, u.ID, m.ID, &dto.RatingCreateDTO{Rating: rating})
		require.NoError(t, err)
	}

	stored, _ := modelRepo.GetModelByID(ctx, m.ID)
	assert.Equal(t, 3, stored.RatingCount)
	require.NotNil(t, stored.AverageRating)
	assert.Equal(t, 4.33, *stored.AverageRating)
}

func TestDeleteRatingClearsAggregate(t *testing.T) {
	ctx := context.Background()
	modelRepo, userRepo, _, producer, svc := newRatingFixture()
	m := seedActiveModel(modelRepo, "gpt-helper")
	u := seedUser(userRepo, "alice")

	rating, err := svc.UpsertRating(ctx, u.ID, m.ID, &dto.RatingCreateDTO{Rating: 3})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRating(ctx, u.ID, rating.ID))

	stored, _ := modelRepo.GetModelByID(ctx, m.ID)
	assert.Equal(t, 0, stored.RatingCount)
	assert.Nil(t, stored.AverageRating)

	// Nothing left to delete.
	err = svc.DeleteRating(ctx, u.ID, rating.ID)
	assert.ErrorIs(t, err, ErrRatingNotFound)

	assert.Equal(t, []string{kafka.ActionRated, kafka.ActionRatingDeleted}, producer.actions())
}

func TestDeleteRatingOwnerOnly(t *testing.T) {
	ctx := context.Background()
	modelRepo, userRepo, _, _, svc := newRatingFixture()
	m := seedActiveModel(modelRepo, "gpt-helper")
	u := seedUser(userRepo, "alice")
	stranger := seedUser(userRepo, "bob")

	rating, err := svc.UpsertRating(ctx, u.ID, m.ID, &dto.RatingCreateDTO{Rating: 3})
	require.NoError(t, err)

	err = svc.DeleteRating(ctx, stranger.ID, rating.ID)
	assert.ErrorIs(t, err, ErrNotRatingOwner)

	// The rating survives the refused delete.
	stored, _ := modelRepo.GetModelByID(ctx, m.ID)
	assert.Equal(t, 1, stored.RatingCount)
}

func TestGetUserRatingMissing(t *testing.T) {
	ctx := context.Background()
	_, userRepo, _, _, svc := newRatingFixture()
	u := seedUser(userRepo, "alice")

	_, err := svc.GetUserRating(ctx, u.ID, 1)
	assert.ErrorIs(t, err, ErrRatingNotFound)
}

func TestGetRatingsPaged(t *testing.T) {
	ctx := context.Background()
	modelRepo, userRepo, _, _, svc := newRatingFixture()
	m := seedActiveModel(modelRepo, "gpt-helper")
	for _, name := range []string{"alice", "bob", "carol"} {
		u := seedUser(userRepo, name)
		_, err := svc.UpsertRating(ctx, u.ID, m.ID, &dto.RatingCreateDTO{Rating: 4})
		require.NoError(t, err)
	}

	page, err := svc.GetRatings(ctx, m.ID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalItems)
	assert.Len(t, page.Content.([]*dto.RatingDTO), 2)
}

func TestGetRatingsByUserSpansModels(t *testing.T) {
	ctx := context.Background()
	modelRepo, userRepo, _, _, svc := newRatingFixture()
	u := seedUser(userRepo, "alice")
	other := seedUser(userRepo, "bob")

	first := seedActiveModel(modelRepo, "gpt-helper")
	second := seedActiveModel(modelRepo, "image-gen")
	_, err := svc.UpsertRating(ctx, u.ID, first.ID, &dto.RatingCreateDTO{Rating: 5})
	require.NoError(t, err)
	_, err = svc.UpsertRating(ctx, u.ID, second.ID, &dto.RatingCreateDTO{Rating: 3})
	require.NoError(t, err)
	_, err = svc.UpsertRating(ctx, other.ID, first.ID, &dto.RatingCreateDTO{Rating: 1})
	require.NoError(t, err)

	page, err := svc.GetRatingsByUser(ctx, u.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalItems)

	list := page.Content.([]*dto.RatingDTO)
	require.Len(t, list, 2)
	for _, r := range list {
		assert.Equal(t, u.ID, r.UserID)
	}
}
