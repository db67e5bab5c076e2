package repository

import (
	"context"

	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
)

type UserRewardRepository interface {
	Create(ctx context.Context, userReward *entity.UserReward) error
	GetByUserID(ctx context.Context, userID string) ([]entity.UserReward, error)
	GetByRequestID(ctx context.Context, requestID string) ([]entity.UserReward, error)
}

type userRewardRepository struct{}

func NewUserRewardRepository() UserRewardRepository {
	return &userRewardRepository{}
}

func (r *userRewardRepository) Create(ctx context.Context, userReward *entity.UserReward) error {
	return xcontext.DB(ctx).Create(userReward).Error
}

func (r *userRewardRepository) GetByUserID(ctx context.Context, userID string) ([]entity.UserReward, error) {
	result := []entity.UserReward{}
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userRewardRepository) GetByRequestID(ctx context.Context, requestID string) ([]entity.UserReward, error) {
	result := []entity.UserReward{}
	err := xcontext.DB(ctx).
		Where("request_id=?", requestID).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
