package repository

import (
	"context"

	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
)

type ParticipationFilter struct {
	EventID string
	UserID  string
	Status  entity.ParticipationStatus

	Offset int
	Limit  int
}

type DayCount struct {
	Day   string
	Count int64
}

type EventParticipationRepository interface {
	Create(ctx context.Context, participation *entity.EventParticipation) error
	GetLast(ctx context.Context, eventID, userID string, status entity.ParticipationStatus) (*entity.EventParticipation, error)
	GetList(ctx context.Context, filter ParticipationFilter) ([]entity.EventParticipation, error)
	Count(ctx context.Context, eventID string, status entity.ParticipationStatus) (int64, error)
	CountDistinctUsers(ctx context.Context, eventID string) (int64, error)
	CountByDay(ctx context.Context, eventID string) ([]DayCount, error)
	MarkRewardRequested(ctx context.Context, eventID, userID, requestID string) error
}

type eventParticipationRepository struct{}

func NewEventParticipationRepository() EventParticipationRepository {
	return &eventParticipationRepository{}
}

func (r *eventParticipationRepository) Create(
	ctx context.Context, participation *entity.EventParticipation,
) error {
	return xcontext.DB(ctx).Create(participation).Error
}

func (r *eventParticipationRepository) GetLast(
	ctx context.Context, eventID, userID string, status entity.ParticipationStatus,
) (*entity.EventParticipation, error) {
	result := entity.EventParticipation{}
	err := xcontext.DB(ctx).
		Where("event_id=? AND user_id=? AND status=?", eventID, userID, status).
		Order("participated_at desc").
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *eventParticipationRepository) GetList(
	ctx context.Context, filter ParticipationFilter,
) ([]entity.EventParticipation, error) {
	result := []entity.EventParticipation{}
	tx := xcontext.DB(ctx).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Order("participated_at DESC")

	if filter.EventID != "" {
		tx = tx.Where("event_id=?", filter.EventID)
	}

	if filter.UserID != "" {
		tx = tx.Where("user_id=?", filter.UserID)
	}

	if filter.Status != "" {
		tx = tx.Where("status=?", filter.Status)
	}

	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *eventParticipationRepository) Count(
	ctx context.Context, eventID string, status entity.ParticipationStatus,
) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.EventParticipation{}).
		Where("event_id=? AND status=?", eventID, status).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *eventParticipationRepository) CountDistinctUsers(
	ctx context.Context, eventID string,
) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.EventParticipation{}).
		Where("event_id=? AND status=?", eventID, entity.Participated).
		Distinct("user_id").
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *eventParticipationRepository) CountByDay(
	ctx context.Context, eventID string,
) ([]DayCount, error) {
	result := []DayCount{}
	err := xcontext.DB(ctx).
		Model(&entity.EventParticipation{}).
		Select("DATE(participated_at) as day, COUNT(*) as count").
		Where("event_id=? AND status=?", eventID, entity.Participated).
		Group("DATE(participated_at)").
		Order("day ASC").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *eventParticipationRepository) MarkRewardRequested(
	ctx context.Context, eventID, userID, requestID string,
) error {
	return xcontext.DB(ctx).
		Model(&entity.EventParticipation{}).
		Where("event_id=? AND user_id=? AND status=?", eventID, userID, entity.Participated).
		Updates(map[string]any{
			"is_reward_requested": true,
			"reward_request_id":   requestID,
		}).Error
}
