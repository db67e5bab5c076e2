package repository

import (
	"context"

	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
)

type RewardRequestFilter struct {
	EventID string
	UserID  string
	Status  []entity.RewardRequestStatus

	Offset int
	Limit  int
}

type RewardRequestRepository interface {
	Create(ctx context.Context, request *entity.RewardRequest) error
	GetByID(ctx context.Context, id string) (*entity.RewardRequest, error)
	GetList(ctx context.Context, filter RewardRequestFilter) ([]entity.RewardRequest, error)
	GetByEventUser(ctx context.Context, eventID, userID string, status []entity.RewardRequestStatus) ([]entity.RewardRequest, error)
	UpdateStatus(ctx context.Context, id string, data *entity.RewardRequest) error
	Count(ctx context.Context, eventID string, status []entity.RewardRequestStatus) (int64, error)
}

type rewardRequestRepository struct{}

func NewRewardRequestRepository() RewardRequestRepository {
	return &rewardRequestRepository{}
}

func (r *rewardRequestRepository) Create(ctx context.Context, request *entity.RewardRequest) error {
	return xcontext.DB(ctx).Create(request).Error
}

func (r *rewardRequestRepository) GetByID(ctx context.Context, id string) (*entity.RewardRequest, error) {
	result := &entity.RewardRequest{}
	if err := xcontext.DB(ctx).Take(result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *rewardRequestRepository) GetList(
	ctx context.Context, filter RewardRequestFilter,
) ([]entity.RewardRequest, error) {
	result := []entity.RewardRequest{}
	tx := xcontext.DB(ctx).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Order("created_at DESC")

	if filter.EventID != "" {
		tx = tx.Where("event_id=?", filter.EventID)
	}

	if filter.UserID != "" {
		tx = tx.Where("user_id=?", filter.UserID)
	}

	if len(filter.Status) > 0 {
		tx = tx.Where("status IN (?)", filter.Status)
	}

	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// GetByEventUser returns every request of a user for an event in the given
// statuses. Reward-id overlap is checked by the caller since reward ids are
// stored as a JSON array.
func (r *rewardRequestRepository) GetByEventUser(
	ctx context.Context, eventID, userID string, status []entity.RewardRequestStatus,
) ([]entity.RewardRequest, error) {
	result := []entity.RewardRequest{}
	tx := xcontext.DB(ctx).Where("event_id=? AND user_id=?", eventID, userID)
	if len(status) > 0 {
		tx = tx.Where("status IN (?)", status)
	}

	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *rewardRequestRepository) UpdateStatus(
	ctx context.Context, id string, data *entity.RewardRequest,
) error {
	return xcontext.DB(ctx).
		Model(&entity.RewardRequest{}).
		Where("id=?", id).
		Updates(data).Error
}

func (r *rewardRequestRepository) Count(
	ctx context.Context, eventID string, status []entity.RewardRequestStatus,
) (int64, error) {
	var result int64
	tx := xcontext.DB(ctx).
		Model(&entity.RewardRequest{}).
		Where("event_id=?", eventID)

	if len(status) > 0 {
		tx = tx.Where("status IN (?)", status)
	}

	if err := tx.Count(&result).Error; err != nil {
		return 0, err
	}

	return result, nil
}
