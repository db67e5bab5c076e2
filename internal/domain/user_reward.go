package domain

import (
	"context"

	"github.com/Doompy/event-reward-system/internal/model"
	"github.com/Doompy/event-reward-system/internal/repository"
	"github.com/Doompy/event-reward-system/pkg/errorx"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
)

type UserRewardDomain interface {
	GetMyRewards(context.Context, *model.GetMyRewardsRequest) (*model.GetMyRewardsResponse, error)
}

type userRewardDomain struct {
	userRewardRepo repository.UserRewardRepository
}

func NewUserRewardDomain(userRewardRepo repository.UserRewardRepository) UserRewardDomain {
	return &userRewardDomain{userRewardRepo: userRewardRepo}
}

func (d *userRewardDomain) GetMyRewards(
	ctx context.Context, req *model.GetMyRewardsRequest,
) (*model.GetMyRewardsResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	rewards, err := d.userRewardRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of user rewards: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetMyRewardsResponse{UserRewards: []model.UserReward{}}
	for i := range rewards {
		resp.UserRewards = append(resp.UserRewards, convertUserReward(&rewards[i]))
	}

	return resp, nil
}
