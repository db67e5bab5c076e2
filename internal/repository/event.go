package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
	"gorm.io/gorm"
)

// ErrEventFull is returned when a participant-count increment would exceed
// the event's participant cap.
var ErrEventFull = errors.New("event reached the maximum number of participants")

type EventFilter struct {
	Status entity.EventStatus

	Offset int
	Limit  int
}

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	GetList(ctx context.Context, filter EventFilter) ([]entity.Event, error)
	GetActive(ctx context.Context, now time.Time) ([]entity.Event, error)
	Update(ctx context.Context, id string, data *entity.Event) error
	IncreaseParticipantCount(ctx context.Context, id string) error
}

type eventRepository struct{}

func NewEventRepository() EventRepository {
	return &eventRepository{}
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	return xcontext.DB(ctx).Create(event).Error
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	result := &entity.Event{}
	if err := xcontext.DB(ctx).Take(result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *eventRepository) GetList(ctx context.Context, filter EventFilter) ([]entity.Event, error) {
	result := []entity.Event{}
	tx := xcontext.DB(ctx).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Order("created_at DESC")

	if filter.Status != "" {
		tx = tx.Where("status=?", filter.Status)
	}

	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *eventRepository) GetActive(ctx context.Context, now time.Time) ([]entity.Event, error) {
	result := []entity.Event{}
	err := xcontext.DB(ctx).
		Where("status=? AND start_date <= ? AND end_date >= ?", entity.EventActive, now, now).
		Order("start_date ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *eventRepository) Update(ctx context.Context, id string, data *entity.Event) error {
	return xcontext.DB(ctx).
		Model(&entity.Event{}).
		Where("id=?", id).
		Updates(data).Error
}

// IncreaseParticipantCount atomically advances the denormalized participant
// counter. The cap is enforced in the same statement so two concurrent
// participations cannot both slip under it.
func (r *eventRepository) IncreaseParticipantCount(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Event{}).
		Where("id=? AND (max_participants = 0 OR participant_count < max_participants)", id).
		Update("participant_count", gorm.Expr("participant_count+1"))

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return ErrEventFull
	}

	return nil
}
