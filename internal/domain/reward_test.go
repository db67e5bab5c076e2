package domain

import (
	"testing"
	"time"

	"github.com/Doompy/event-reward-system/internal/common"
	"github.com/Doompy/event-reward-system/internal/model"
	"github.com/Doompy/event-reward-system/internal/repository"
	"github.com/Doompy/event-reward-system/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newRewardDomainForTest() RewardDomain {
	return NewRewardDomain(
		repository.NewRewardRepository(),
		repository.NewEventRepository(),
		common.NewAuditLogger(repository.NewEventLogRepository()),
	)
}

func Test_rewardDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newRewardDomainForTest()

	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.AdminID)
	resp, err := d.Create(authorizedCtx, &model.CreateRewardRequest{
		EventID:       testutil.ActiveEventID,
		Name:          "500 Points",
		Type:          "POINT",
		Value:         "500",
		TotalQuantity: 10,
		ExpiryDate:    time.Now().Add(30 * 24 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)
	require.Equal(t, "500 Points", resp.Reward.Name)
	require.Equal(t, int64(10), resp.Reward.TotalQuantity)
	require.Equal(t, int64(0), resp.Reward.IssuedQuantity)
}

func Test_rewardDomain_Create_Invalid(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newRewardDomainForTest()

	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.AdminID)

	_, err := d.Create(authorizedCtx, &model.CreateRewardRequest{
		EventID:       testutil.ActiveEventID,
		Name:          "Free Reward",
		Type:          "POINT",
		TotalQuantity: 0,
	})
	require.Error(t, err)
	require.Equal(t, "Total quantity must be positive", err.Error())

	_, err = d.Create(authorizedCtx, &model.CreateRewardRequest{
		EventID:       "missing",
		Name:          "Orphan Reward",
		Type:          "POINT",
		TotalQuantity: 1,
	})
	require.Error(t, err)
	require.Equal(t, "Not found event", err.Error())
}

func Test_rewardDomain_UpdateByID_ShrinkBelowIssued(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newRewardDomainForTest()
	rewardRepo := repository.NewRewardRepository()

	require.NoError(t, rewardRepo.IncreaseIssuedQuantity(ctx, testutil.Reward1ID))

	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.AdminID)
	zero := int64(0)
	_, err := d.UpdateByID(authorizedCtx, &model.UpdateRewardRequest{
		ID:            testutil.Reward1ID,
		TotalQuantity: &zero,
	})
	require.Error(t, err)
	require.Equal(t, "Total quantity must not be less than issued quantity", err.Error())

	five := int64(5)
	resp, err := d.UpdateByID(authorizedCtx, &model.UpdateRewardRequest{
		ID:            testutil.Reward1ID,
		TotalQuantity: &five,
	})
	require.NoError(t, err)
	require.Equal(t, int64(5), resp.Reward.TotalQuantity)
}

func Test_rewardDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newRewardDomainForTest()

	resp, err := d.GetList(ctx, &model.GetRewardsRequest{EventID: testutil.ActiveEventID})
	require.NoError(t, err)
	require.Len(t, resp.Rewards, 3)

	_, err = d.GetList(ctx, &model.GetRewardsRequest{})
	require.Error(t, err)
	require.Equal(t, "Not allow empty event id", err.Error())
}
