package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/kafka"
)

func newCommentFixture() (*fakeModelRepo, *fakeUserRepo, *fakeEngagementRepo, *recordingProducer, CommentService) {
	modelRepo := newFakeModelRepo()
	userRepo := newFakeUserRepo()
	engagementRepo := newFakeEngagementRepo(modelRepo)
	producer := &recordingProducer{}
	svc := NewCommentService(engagementRepo, modelRepo, userRepo, producer)
	return modelRepo, userRepo, engagementRepo, producer, svc
}

func TestCreateCommentBumpsCounter(t *testing.T) {
	ctx := context.Background()
	modelRepo, userRepo, _, producer, svc := newCommentFixture()
	m := seedActiveModel(modelRepo, "gpt-helper")
	u := seedUser(userRepo, "alice")

	got, err := svc.CreateComment(ctx, u.ID, m.ID, &dto.CommentCreateDTO{Content: "  nice model  "})
	require.NoError(t, err)
	assert.Equal(t, "nice model", got.Content)
	assert.Equal(t, "alice", got.Username)

	stored, _ := modelRepo.GetModelByID(ctx, m.ID)
	assert.Equal(t, 1, stored.CommentCount)
	assert.Equal(t, []string{kafka.ActionCommented}, producer.actions())
}

func TestCreateCommentBlankContent(t *testing.T) {
	ctx := context.Background()
	modelRepo, userRepo, _, _, svc := newCommentFixture()
	m := seedActiveModel(modelRepo, "gpt-helper")
	u := seedUser(userRepo, "alice")

	_, err := svc.CreateComment(ctx, u.ID, m.ID, &dto.CommentCreateDTO{Content: "   "})
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestCreateCommentReplyParentValidation(t *testing.T) {
	ctx := context.Background()
	modelRepo, userRepo, _, _, svc := newCommentFixture()
	m := seedActiveModel(modelRepo, "gpt-helper")
	other := seedActiveModel(modelRepo, "other-model")
	u := seedUser(userRepo, "alice")

	parent, err := svc.CreateComment(ctx, u.ID, m.ID, &dto.CommentCreateDTO{Content: "top level"})
	require.NoError(t, err)

	// Valid reply.
	reply, err := svc.CreateComment(ctx, u.ID, m.ID, &dto.CommentCreateDTO{Content: "agreed", ParentCommentID: &parent.ID})
	require.NoError(t, err)
	require.NotNil(t, reply.ParentCommentID)
	assert.Equal(t, parent.ID, *reply.ParentCommentID)

	// Parent belongs to a different model.
	_, err = svc.CreateComment(ctx, u.ID, other.ID, &dto.CommentCreateDTO{Content: "wrong thread", ParentCommentID: &parent.ID})
	assert.ErrorIs(t, err, ErrParentNotFound)

	// Unknown parent.
	missing := uint64(9999)
	_, err = svc.CreateComment(ctx, u.ID, m.ID, &dto.CommentCreateDTO{Content: "orphan", ParentCommentID: &missing})
	assert.ErrorIs(t, err, ErrParentNotFound)
}

func TestCreateCommentReplyToDeletedParent(t *testing.T) {
	ctx := context.Background()
	modelRepo, userRepo, _, _, svc := newCommentFixture()
	m := seedActiveModel(modelRepo, "gpt-helper")
	u := seedUser(userRepo, "alice")

	parent, err := svc.CreateComment(ctx, u.ID, m.ID, &dto.CommentCreateDTO{Content: "top level"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteComment(ctx, u.ID, parent.ID, false))

	_, err = svc.CreateComment(ctx, u.ID, m.ID, &dto.CommentCreateDTO{Content: "too late", ParentCommentID: &parent.ID})
	assert.ErrorIs(t, err, ErrParentNotFound)
}

func TestUpdateCommentOwnerOnly(t *testing.T) {
	ctx := context.Background()
	modelRepo, userRepo, _, _, svc := newCommentFixture()
	m := seedActiveModel(modelRepo, "gpt-helper")
	owner := seedUser(userRepo, "alice")
	stranger := seedUser(userRepo, "bob")

	comment, err := svc.CreateComment(ctx, owner.ID, m.ID, &dto.CommentCreateDTO{Content: "v1"})
	require.NoError(t, err)

	_, err = svc.UpdateComment(ctx, stranger.ID, comment.ID, &dto.CommentUpdateDTO{Content: "hijack"})
	assert.ErrorIs(t, err, ErrNotCommentOwner)

	updated, err := svc.UpdateComment(ctx, owner.ID, comment.ID, &dto.CommentUpdateDTO{Content: "v2"})
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.Content)
	assert.True(t, updated.IsEdited)
}

func TestDeleteCommentPermissions(t *testing.T) {
	ctx := context.Background()
	modelRepo, userRepo, _, producer, svc := newCommentFixture()
	m := seedActiveModel(modelRepo, "gpt-helper")
	owner := seedUser(userRepo, "alice")
	stranger := seedUser(userRepo, "bob")

	comment, err := svc.CreateComment(ctx, owner.ID, m.ID, &dto.CommentCreateDTO{Content: "hello"})
	require.NoError(t, err)

	err = svc.DeleteComment(ctx, stranger.ID, comment.ID, false)
	assert.ErrorIs(t, err, ErrNotCommentOwner)

	// An admin may remove anyone's comment.
	require.NoError(t, svc.DeleteComment(ctx, stranger.ID, comment.ID, true))

	stored, _ := modelRepo.GetModelByID(ctx, m.ID)
	assert.Equal(t, 0, stored.CommentCount)

	// Already gone.
	err = svc.DeleteComment(ctx, owner.ID, comment.ID, false)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	assert.Equal(t, []string{kafka.ActionCommented, kafka.ActionCommentDeleted}, producer.actions())
}

func TestGetCommentsExcludesRepliesAndDeleted(t *testing.T) {
	ctx := context.Background()
	modelRepo, userRepo, _, _, svc := newCommentFixture()
	m := seedActiveModel(modelRepo, "gpt-helper")
	u := seedUser(userRepo, "alice")

	first, err := svc.CreateComment(ctx, u.ID, m.ID, &dto.CommentCreateDTO{Content: "first"})
	require.NoError(t, err)
	_, err = svc.CreateComment(ctx, u.ID, m.ID, &dto.CommentCreateDTO{Content: "reply", ParentCommentID: &first.ID})
	require.NoError(t, err)
	second, err := svc.CreateComment(ctx, u.ID, m.ID, &dto.CommentCreateDTO{Content: "second"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteComment(ctx, u.ID, second.ID, false))

	page, err := svc.GetComments(ctx, m.ID, 1, 10)
	require.NoError(t, err)
	list := page.Content.([]*dto.CommentDTO)
	require.Len(t, list, 1)
	assert.Equal(t, "first", list[0].Content)

	replies, err := svc.GetReplies(ctx, first.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "reply", replies[0].Content)

	count, err := svc.GetCommentCount(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGetCommentsByUserIncludesReplies(t *testing.T) {
	ctx := context.Background()
	modelRepo, userRepo, _, _, svc := newCommentFixture()
	m := seedActiveModel(modelRepo, "gpt-helper")
	u := seedUser(userRepo, "alice")
	other := seedUser(userRepo, "bob")

	top, err := svc.CreateComment(ctx, u.ID, m.ID, &dto.CommentCreateDTO{Content: "top level"})
	require.NoError(t, err)
	_, err = svc.CreateComment(ctx, u.ID, m.ID, &dto.CommentCreateDTO{Content: "reply", ParentCommentID: &top.ID})
	require.NoError(t, err)
	deleted, err := svc.CreateComment(ctx, u.ID, m.ID, &dto.CommentCreateDTO{Content: "gone"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteComment(ctx, u.ID, deleted.ID, false))
	_, err = svc.CreateComment(ctx, other.ID, m.ID, &dto.CommentCreateDTO{Content: "not mine"})
	require.NoError(t, err)

	page, err := svc.GetCommentsByUser(ctx, u.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalItems)

	list := page.Content.([]*dto.CommentDTO)
	require.Len(t, list, 2)
	for _, c := range list {
		assert.Equal(t, u.ID, c.UserID)
		assert.Equal(t, "alice", c.Username)
	}
}
