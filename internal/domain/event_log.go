package domain

import (
	"context"

	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/internal/model"
	"github.com/Doompy/event-reward-system/internal/repository"
	"github.com/Doompy/event-reward-system/pkg/enum"
	"github.com/Doompy/event-reward-system/pkg/errorx"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
)

type EventLogDomain interface {
	GetList(context.Context, *model.GetEventLogsRequest) (*model.GetEventLogsResponse, error)
}

type eventLogDomain struct {
	eventLogRepo repository.EventLogRepository
}

func NewEventLogDomain(eventLogRepo repository.EventLogRepository) EventLogDomain {
	return &eventLogDomain{eventLogRepo: eventLogRepo}
}

func (d *eventLogDomain) GetList(
	ctx context.Context, req *model.GetEventLogsRequest,
) (*model.GetEventLogsResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit")
	}

	filter := repository.EventLogFilter{
		EventID: req.EventID,
		Offset:  req.Offset,
		Limit:   req.Limit,
	}

	if req.LogType != "" {
		logType, err := enum.ToEnum[entity.EventLogType](req.LogType)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid log type")
		}
		filter.LogType = logType
	}

	logs, err := d.eventLogRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of event logs: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetEventLogsResponse{EventLogs: []model.EventLog{}}
	for i := range logs {
		resp.EventLogs = append(resp.EventLogs, convertEventLog(&logs[i]))
	}

	return resp, nil
}
