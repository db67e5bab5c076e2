package domain

import (
	"testing"

	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/internal/model"
	"github.com/Doompy/event-reward-system/internal/repository"
	"github.com/Doompy/event-reward-system/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_userRewardDomain_GetMyRewards(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	userRewardRepo := repository.NewUserRewardRepository()
	d := NewUserRewardDomain(userRewardRepo)

	err := userRewardRepo.Create(ctx, &entity.UserReward{
		Base:      entity.Base{ID: "grant1"},
		UserID:    testutil.User1ID,
		EventID:   testutil.ActiveEventID,
		RewardID:  testutil.Reward1ID,
		RequestID: "request1",
		Name:      "100 Points",
		Type:      entity.RewardPoint,
		Value:     "100",
		Status:    entity.UserRewardActive,
	})
	require.NoError(t, err)

	err = userRewardRepo.Create(ctx, &entity.UserReward{
		Base:      entity.Base{ID: "grant2"},
		UserID:    testutil.User2ID,
		EventID:   testutil.ActiveEventID,
		RewardID:  testutil.Reward2ID,
		RequestID: "request2",
		Name:      "Welcome Badge",
		Type:      entity.RewardBadge,
		Status:    entity.UserRewardActive,
	})
	require.NoError(t, err)

	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User1ID)
	resp, err := d.GetMyRewards(authorizedCtx, &model.GetMyRewardsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.UserRewards, 1)
	require.Equal(t, "100 Points", resp.UserRewards[0].Name)
	require.Equal(t, "ACTIVE", resp.UserRewards[0].Status)
}
