package repository

import (
	"context"
	"errors"

	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
	"gorm.io/gorm"
)

// ErrNoRemainingQuantity is returned when an issuance increment finds the
// reward exhausted. The scarcity invariant issued_quantity <= total_quantity
// is enforced by the conditional update below.
var ErrNoRemainingQuantity = errors.New("reward has no remaining quantity")

type RewardRepository interface {
	Create(ctx context.Context, reward *entity.Reward) error
	GetByID(ctx context.Context, id string) (*entity.Reward, error)
	GetByIDs(ctx context.Context, eventID string, ids []string) ([]entity.Reward, error)
	GetByEventID(ctx context.Context, eventID string) ([]entity.Reward, error)
	Update(ctx context.Context, id string, data *entity.Reward) error
	IncreaseIssuedQuantity(ctx context.Context, id string) error
}

type rewardRepository struct{}

func NewRewardRepository() RewardRepository {
	return &rewardRepository{}
}

func (r *rewardRepository) Create(ctx context.Context, reward *entity.Reward) error {
	return xcontext.DB(ctx).Create(reward).Error
}

func (r *rewardRepository) GetByID(ctx context.Context, id string) (*entity.Reward, error) {
	result := &entity.Reward{}
	if err := xcontext.DB(ctx).Take(result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *rewardRepository) GetByIDs(
	ctx context.Context, eventID string, ids []string,
) ([]entity.Reward, error) {
	result := []entity.Reward{}
	err := xcontext.DB(ctx).
		Where("event_id=? AND id IN (?)", eventID, ids).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *rewardRepository) GetByEventID(ctx context.Context, eventID string) ([]entity.Reward, error) {
	result := []entity.Reward{}
	err := xcontext.DB(ctx).
		Where("event_id=?", eventID).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *rewardRepository) Update(ctx context.Context, id string, data *entity.Reward) error {
	return xcontext.DB(ctx).
		Model(&entity.Reward{}).
		Where("id=?", id).
		Updates(data).Error
}

func (r *rewardRepository) IncreaseIssuedQuantity(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Reward{}).
		Where("id=? AND issued_quantity < total_quantity", id).
		Update("issued_quantity", gorm.Expr("issued_quantity+1"))

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return ErrNoRemainingQuantity
	}

	return nil
}
