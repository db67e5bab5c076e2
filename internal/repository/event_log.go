package repository

import (
	"context"

	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
)

type EventLogFilter struct {
	EventID string
	LogType entity.EventLogType

	Offset int
	Limit  int
}

type EventLogRepository interface {
	Create(ctx context.Context, log *entity.EventLog) error
	GetList(ctx context.Context, filter EventLogFilter) ([]entity.EventLog, error)
}

type eventLogRepository struct{}

func NewEventLogRepository() EventLogRepository {
	return &eventLogRepository{}
}

func (r *eventLogRepository) Create(ctx context.Context, log *entity.EventLog) error {
	return xcontext.DB(ctx).Create(log).Error
}

func (r *eventLogRepository) GetList(
	ctx context.Context, filter EventLogFilter,
) ([]entity.EventLog, error) {
	result := []entity.EventLog{}
	tx := xcontext.DB(ctx).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Order("id DESC")

	if filter.EventID != "" {
		tx = tx.Where("event_id=?", filter.EventID)
	}

	if filter.LogType != "" {
		tx = tx.Where("log_type=?", filter.LogType)
	}

	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
