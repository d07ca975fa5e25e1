package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/model"
)

func newOrgFixture() (*fakeOrgRepo, *fakeUserRepo, *fakeSubscriptionRepo, OrganizationService) {
	orgRepo := newFakeOrgRepo()
	userRepo := newFakeUserRepo()
	subscriptionRepo := newFakeSubscriptionRepo()
	svc := NewOrganizationService(orgRepo, userRepo, subscriptionRepo)
	return orgRepo, userRepo, subscriptionRepo, svc
}

func TestCreateOrgConflicts(t *testing.T) {
	ctx := context.Background()
	_, _, _, svc := newOrgFixture()

	got, err := svc.CreateOrg(ctx, &dto.OrgCreateDTO{OrgName: "OpenAI", OrgURL: "https://openai.com"})
	require.NoError(t, err)
	assert.Equal(t, "OpenAI", got.OrgName)
	assert.False(t, got.JoinedAt.IsZero())

	_, err = svc.CreateOrg(ctx, &dto.OrgCreateDTO{OrgName: "OpenAI", OrgURL: "https://other.com"})
	assert.ErrorIs(t, err, ErrOrgNameExists)

	_, err = svc.CreateOrg(ctx, &dto.OrgCreateDTO{OrgName: "Other", OrgURL: "https://openai.com"})
	assert.ErrorIs(t, err, ErrOrgURLExists)
}

func TestSubscribeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	orgRepo, userRepo, _, svc := newOrgFixture()
	org := orgRepo.seed(&model.Organization{OrgName: "OpenAI", OrgURL: "https://openai.com", IsActive: true})
	u := seedUser(userRepo, "alice")

	require.NoError(t, svc.Subscribe(ctx, u.ID, org.ID))
	require.NoError(t, svc.Subscribe(ctx, u.ID, org.ID))

	count, err := svc.GetSubscriberCount(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	err = svc.Subscribe(ctx, u.ID, 404)
	assert.ErrorIs(t, err, ErrOrgNotFound)
	err = svc.Subscribe(ctx, 404, org.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUnsubscribeAndListSubscriptions(t *testing.T) {
	ctx := context.Background()
	orgRepo, userRepo, _, svc := newOrgFixture()
	org := orgRepo.seed(&model.Organization{OrgName: "OpenAI", OrgURL: "https://openai.com", IsActive: true})
	other := orgRepo.seed(&model.Organization{OrgName: "DeepMind", OrgURL: "https://deepmind.com", IsActive: true})
	u := seedUser(userRepo, "alice")

	require.NoError(t, svc.Subscribe(ctx, u.ID, org.ID))
	require.NoError(t, svc.Subscribe(ctx, u.ID, other.ID))

	orgs, err := svc.GetSubscribedOrgs(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, orgs, 2)

	require.NoError(t, svc.Unsubscribe(ctx, u.ID, org.ID))
	orgs, err = svc.GetSubscribedOrgs(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, "DeepMind", orgs[0].OrgName)
}
