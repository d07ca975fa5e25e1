package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
)

func TestListTagsWithUsage(t *testing.T) {
	ctx := context.Background()
	tagRepo := newFakeTagRepo()
	svc := NewTagService(tagRepo)

	_, err := tagRepo.GetOrCreateTag(ctx, "nlp", "nlp")
	require.NoError(t, err)
	_, err = tagRepo.GetOrCreateTag(ctx, "vision", "vision")
	require.NoError(t, err)

	page, err := svc.ListTags(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalItems)
	assert.Len(t, page.Content.([]*dto.TagUsageDTO), 2)

	// A keyword narrows the list by name.
	page, err = svc.ListTags(ctx, " vis ", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalItems)
	assert.Equal(t, "vision", page.Content.([]*dto.TagUsageDTO)[0].Name)
}

func TestGetTagBySlug(t *testing.T) {
	ctx := context.Background()
	tagRepo := newFakeTagRepo()
	svc := NewTagService(tagRepo)

	_, err := tagRepo.GetOrCreateTag(ctx, "nlp", "nlp")
	require.NoError(t, err)

	got, err := svc.GetTagBySlug(ctx, "nlp")
	require.NoError(t, err)
	assert.Equal(t, "nlp", got.Name)

	_, err = svc.GetTagBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrTagNotFound)
}

func TestSuggestTagsRequiresBackend(t *testing.T) {
	ctx := context.Background()
	svc := NewTagService(newFakeTagRepo())

	// No suggestion model is configured in tests.
	_, err := svc.SuggestTags(ctx, &dto.TagSuggestDTO{Description: "a text generation model"})
	assert.ErrorIs(t, err, ErrSuggestUnavailable)
}
