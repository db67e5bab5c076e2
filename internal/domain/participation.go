package domain

import (
	"context"
	"errors"
	"time"

	"github.com/Doompy/event-reward-system/internal/common"
	"github.com/Doompy/event-reward-system/internal/domain/eventcond"
	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/internal/model"
	"github.com/Doompy/event-reward-system/internal/repository"
	"github.com/Doompy/event-reward-system/pkg/errorx"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParticipationDomain interface {
	Create(context.Context, *model.CreateParticipationRequest) (*model.CreateParticipationResponse, error)
	GetList(context.Context, *model.GetParticipationsRequest) (*model.GetParticipationsResponse, error)
	GetStats(context.Context, *model.GetParticipationStatsRequest) (*model.GetParticipationStatsResponse, error)
}

type participationDomain struct {
	participationRepo repository.EventParticipationRepository
	eventRepo         repository.EventRepository
	rewardRequestRepo repository.RewardRequestRepository
	locker            *common.KeyLocker
	audit             *common.AuditLogger
}

func NewParticipationDomain(
	participationRepo repository.EventParticipationRepository,
	eventRepo repository.EventRepository,
	rewardRequestRepo repository.RewardRequestRepository,
	locker *common.KeyLocker,
	audit *common.AuditLogger,
) ParticipationDomain {
	return &participationDomain{
		participationRepo: participationRepo,
		eventRepo:         eventRepo,
		rewardRequestRepo: rewardRequestRepo,
		locker:            locker,
		audit:             audit,
	}
}

func (d *participationDomain) Create(
	ctx context.Context, req *model.CreateParticipationRequest,
) (*model.CreateParticipationResponse, error) {
	if req.EventID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty event id")
	}

	userID := xcontext.RequestUserID(ctx)
	event, err := d.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	if !event.InActiveWindow(time.Now()) {
		return nil, errorx.New(errorx.Unavailable, "Event is not active")
	}

	if !eventcond.Verify(ctx, *event, req.VerificationData) {
		return nil, errorx.New(errorx.BadRequest, "Condition of event is not satisfied")
	}

	// The duplicate check and the insert must not race with another request
	// of the same user.
	d.locker.Lock("participation", event.ID, userID)
	defer d.locker.Unlock("participation", event.ID, userID)

	participationCount := 1
	last, err := d.participationRepo.GetLast(ctx, event.ID, userID, entity.Participated)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get last participation: %v", err)
		return nil, errorx.Unknown
	}

	if last != nil {
		if !event.AllowMultipleParticipation {
			return nil, errorx.New(errorx.AlreadyExists, "User already participated in this event")
		}

		participationCount = last.ParticipationCount + 1
	}

	participation := &entity.EventParticipation{
		Base:               entity.Base{ID: uuid.NewString()},
		EventID:            event.ID,
		UserID:             userID,
		Status:             entity.Participated,
		ParticipatedAt:     time.Now(),
		VerificationData:   req.VerificationData,
		AdditionalData:     req.AdditionalData,
		ParticipationCount: participationCount,
	}

	txCtx := xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(txCtx)

	if err := d.participationRepo.Create(txCtx, participation); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create participation: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.eventRepo.IncreaseParticipantCount(txCtx, event.ID); err != nil {
		if errors.Is(err, repository.ErrEventFull) {
			return nil, errorx.New(errorx.Unavailable, "Event reached the maximum number of participants")
		}

		xcontext.Logger(ctx).Errorf("Cannot increase participant count: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(txCtx)

	d.audit.Record(ctx, &entity.EventLog{
		LogType: entity.LogEventParticipated,
		ActorID: userID,
		EventID: event.ID,
		Details: entity.Map{"participation_id": participation.ID},
	})

	return &model.CreateParticipationResponse{
		Participation: convertParticipation(participation),
	}, nil
}

func (d *participationDomain) GetList(
	ctx context.Context, req *model.GetParticipationsRequest,
) (*model.GetParticipationsResponse, error) {
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

	participations, err := d.participationRepo.GetList(ctx, repository.ParticipationFilter{
		EventID: req.EventID,
		UserID:  req.UserID,
		Offset:  req.Offset,
		Limit:   req.Limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of participations: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetParticipationsResponse{Participations: []model.Participation{}}
	for i := range participations {
		resp.Participations = append(resp.Participations, convertParticipation(&participations[i]))
	}

	return resp, nil
}

func (d *participationDomain) GetStats(
	ctx context.Context, req *model.GetParticipationStatsRequest,
) (*model.GetParticipationStatsResponse, error) {
	if req.EventID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty event id")
	}

	if _, err := d.eventRepo.GetByID(ctx, req.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	total, err := d.participationRepo.Count(ctx, req.EventID, entity.Participated)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count participations: %v", err)
		return nil, errorx.Unknown
	}

	unique, err := d.participationRepo.CountDistinctUsers(ctx, req.EventID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count distinct participants: %v", err)
		return nil, errorx.Unknown
	}

	byDay, err := d.participationRepo.CountByDay(ctx, req.EventID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count participations by day: %v", err)
		return nil, errorx.Unknown
	}

	requested, err := d.rewardRequestRepo.Count(ctx, req.EventID, nil)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count reward requests: %v", err)
		return nil, errorx.Unknown
	}

	approved, err := d.rewardRequestRepo.Count(ctx, req.EventID,
		[]entity.RewardRequestStatus{entity.RequestApproved})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count approved requests: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetParticipationStatsResponse{
		TotalParticipations: total,
		UniqueParticipants:  unique,
		ParticipationsByDay: map[string]int64{},
	}

	for _, dc := range byDay {
		resp.ParticipationsByDay[dc.Day] = dc.Count
	}

	if total > 0 {
		resp.RewardRequestRate = float64(requested) / float64(total)
	}

	if requested > 0 {
		resp.SuccessRate = float64(approved) / float64(requested)
	}

	return resp, nil
}
