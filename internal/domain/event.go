package domain

import (
	"context"
	"errors"
	"time"

	"github.com/Doompy/event-reward-system/internal/common"
	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/internal/model"
	"github.com/Doompy/event-reward-system/internal/repository"
	"github.com/Doompy/event-reward-system/pkg/enum"
	"github.com/Doompy/event-reward-system/pkg/errorx"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventDomain interface {
	Create(context.Context, *model.CreateEventRequest) (*model.CreateEventResponse, error)
	UpdateByID(context.Context, *model.UpdateEventRequest) (*model.UpdateEventResponse, error)
	Get(context.Context, *model.GetEventRequest) (*model.GetEventResponse, error)
	GetList(context.Context, *model.GetEventsRequest) (*model.GetEventsResponse, error)
	GetActiveList(context.Context, *model.GetActiveEventsRequest) (*model.GetActiveEventsResponse, error)
}

type eventDomain struct {
	eventRepo repository.EventRepository
	audit     *common.AuditLogger
}

func NewEventDomain(
	eventRepo repository.EventRepository,
	audit *common.AuditLogger,
) EventDomain {
	return &eventDomain{eventRepo: eventRepo, audit: audit}
}

func (d *eventDomain) Create(
	ctx context.Context, req *model.CreateEventRequest,
) (*model.CreateEventResponse, error) {
	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty title")
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid start date")
	}

	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid end date")
	}

	if !startDate.Before(endDate) {
		return nil, errorx.New(errorx.BadRequest, "Start date must be before end date")
	}

	conditionType, err := enum.ToEnum[entity.ConditionType](req.ConditionType)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid condition type")
	}

	status := entity.EventDraft
	if req.Status != "" {
		status, err = enum.ToEnum[entity.EventStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status")
		}
	}

	if req.MaxParticipants < 0 {
		return nil, errorx.New(errorx.BadRequest, "Max participants must not be negative")
	}

	userID := xcontext.RequestUserID(ctx)
	event := &entity.Event{
		Base:                       entity.Base{ID: uuid.NewString()},
		Title:                      req.Title,
		Description:                req.Description,
		StartDate:                  startDate,
		EndDate:                    endDate,
		Status:                     status,
		ConditionType:              conditionType,
		ConditionValue:             req.ConditionValue,
		AutoReward:                 req.AutoReward,
		AllowMultipleParticipation: req.AllowMultipleParticipation,
		MaxParticipants:            req.MaxParticipants,
		CreatedBy:                  userID,
	}

	if err := d.eventRepo.Create(ctx, event); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create event: %v", err)
		return nil, errorx.Unknown
	}

	d.audit.Record(ctx, &entity.EventLog{
		LogType: entity.LogEventCreated,
		ActorID: userID,
		EventID: event.ID,
		Details: entity.Map{"title": event.Title, "status": string(event.Status)},
	})

	return &model.CreateEventResponse{Event: convertEvent(event)}, nil
}

func (d *eventDomain) UpdateByID(
	ctx context.Context, req *model.UpdateEventRequest,
) (*model.UpdateEventResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty id")
	}

	event, err := d.eventRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	updated := &entity.Event{
		Title:          req.Title,
		Description:    req.Description,
		ConditionValue: req.ConditionValue,
		UpdatedBy:      userID,
	}

	startDate := event.StartDate
	if req.StartDate != "" {
		startDate, err = time.Parse(time.RFC3339, req.StartDate)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid start date")
		}
		updated.StartDate = startDate
	}

	endDate := event.EndDate
	if req.EndDate != "" {
		endDate, err = time.Parse(time.RFC3339, req.EndDate)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid end date")
		}
		updated.EndDate = endDate
	}

	if !startDate.Before(endDate) {
		return nil, errorx.New(errorx.BadRequest, "Start date must be before end date")
	}

	if req.MaxParticipants != nil {
		if *req.MaxParticipants < 0 {
			return nil, errorx.New(errorx.BadRequest, "Max participants must not be negative")
		}
		updated.MaxParticipants = *req.MaxParticipants
	}

	if req.Status != "" {
		status, err := enum.ToEnum[entity.EventStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status")
		}
		updated.Status = status

		if status != event.Status {
			d.audit.Record(ctx, &entity.EventLog{
				LogType: entity.LogEventStatusChanged,
				ActorID: userID,
				EventID: event.ID,
				Details: entity.Map{
					"previous_status": string(event.Status),
					"new_status":      string(status),
				},
			})
		}
	}

	if err := d.eventRepo.Update(ctx, event.ID, updated); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update event: %v", err)
		return nil, errorx.Unknown
	}

	event, err = d.eventRepo.GetByID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get event after update: %v", err)
		return nil, errorx.Unknown
	}

	d.audit.Record(ctx, &entity.EventLog{
		LogType: entity.LogEventUpdated,
		ActorID: userID,
		EventID: event.ID,
		Details: entity.Map{"title": event.Title, "status": string(event.Status)},
	})

	return &model.UpdateEventResponse{Event: convertEvent(event)}, nil
}

func (d *eventDomain) Get(
	ctx context.Context, req *model.GetEventRequest,
) (*model.GetEventResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty id")
	}

	event, err := d.eventRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetEventResponse{Event: convertEvent(event)}, nil
}

func (d *eventDomain) GetList(
	ctx context.Context, req *model.GetEventsRequest,
) (*model.GetEventsResponse, error) {
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

	filter := repository.EventFilter{Offset: req.Offset, Limit: req.Limit}
	if req.Status != "" {
		status, err := enum.ToEnum[entity.EventStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status")
		}
		filter.Status = status
	}

	events, err := d.eventRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of events: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetEventsResponse{Events: []model.Event{}}
	for i := range events {
		resp.Events = append(resp.Events, convertEvent(&events[i]))
	}

	return resp, nil
}

func (d *eventDomain) GetActiveList(
	ctx context.Context, req *model.GetActiveEventsRequest,
) (*model.GetActiveEventsResponse, error) {
	events, err := d.eventRepo.GetActive(ctx, time.Now())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get active events: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetActiveEventsResponse{Events: []model.Event{}}
	for i := range events {
		resp.Events = append(resp.Events, convertEvent(&events[i]))
	}

	return resp, nil
}
