package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Doompy/event-reward-system/internal/common"
	"github.com/Doompy/event-reward-system/internal/domain/eventcond"
	"github.com/Doompy/event-reward-system/internal/domain/issuer"
	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/internal/model"
	"github.com/Doompy/event-reward-system/internal/repository"
	"github.com/Doompy/event-reward-system/pkg/enum"
	"github.com/Doompy/event-reward-system/pkg/errorx"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// AutoReviewerID is recorded as the processor of requests approved without a
// human operator.
const AutoReviewerID = "system"

type RewardRequestDomain interface {
	RequestRewards(context.Context, *model.RequestRewardsRequest) (*model.RequestRewardsResponse, error)
	Review(context.Context, *model.ReviewRewardRequestRequest) (*model.ReviewRewardRequestResponse, error)
	Cancel(context.Context, *model.CancelRewardRequestRequest) (*model.CancelRewardRequestResponse, error)
	Get(context.Context, *model.GetRewardRequestRequest) (*model.GetRewardRequestResponse, error)
	GetMyList(context.Context, *model.GetMyRewardRequestsRequest) (*model.GetMyRewardRequestsResponse, error)
	GetList(context.Context, *model.GetRewardRequestsRequest) (*model.GetRewardRequestsResponse, error)
}

type rewardRequestDomain struct {
	rewardRequestRepo repository.RewardRequestRepository
	eventRepo         repository.EventRepository
	rewardRepo        repository.RewardRepository
	participationRepo repository.EventParticipationRepository
	engine            *issuer.Engine
	locker            *common.KeyLocker
	audit             *common.AuditLogger
}

func NewRewardRequestDomain(
	rewardRequestRepo repository.RewardRequestRepository,
	eventRepo repository.EventRepository,
	rewardRepo repository.RewardRepository,
	participationRepo repository.EventParticipationRepository,
	engine *issuer.Engine,
	locker *common.KeyLocker,
	audit *common.AuditLogger,
) RewardRequestDomain {
	return &rewardRequestDomain{
		rewardRequestRepo: rewardRequestRepo,
		eventRepo:         eventRepo,
		rewardRepo:        rewardRepo,
		participationRepo: participationRepo,
		engine:            engine,
		locker:            locker,
		audit:             audit,
	}
}

func (d *rewardRequestDomain) RequestRewards(
	ctx context.Context, req *model.RequestRewardsRequest,
) (*model.RequestRewardsResponse, error) {
	if req.EventID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty event id")
	}

	if len(req.RewardIDs) == 0 {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty reward ids")
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

	rewards, err := d.rewardRepo.GetByIDs(ctx, event.ID, req.RewardIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get rewards: %v", err)
		return nil, errorx.Unknown
	}

	if len(rewards) != len(req.RewardIDs) {
		return nil, errorx.New(errorx.NotFound, "Some rewards do not belong to this event")
	}

	if !event.InActiveWindow(time.Now()) {
		return nil, errorx.New(errorx.Unavailable, "Event is not active")
	}

	if !eventcond.Verify(ctx, *event, req.VerificationData) {
		return nil, errorx.New(errorx.BadRequest, "Condition of event is not satisfied")
	}

	// Serialize the overlap check against concurrent requests of the same
	// user for the same event.
	d.locker.Lock("reward_request", event.ID, userID)
	defer d.locker.Unlock("reward_request", event.ID, userID)

	existing, err := d.rewardRequestRepo.GetByEventUser(ctx, event.ID, userID,
		[]entity.RewardRequestStatus{entity.RequestPending, entity.RequestApproved})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get existing requests: %v", err)
		return nil, errorx.Unknown
	}

	for _, prev := range existing {
		for _, rewardID := range req.RewardIDs {
			if slices.Contains(prev.RewardIDs, rewardID) {
				return nil, errorx.New(errorx.AlreadyExists,
					"Reward already requested for this event")
			}
		}
	}

	request := &entity.RewardRequest{
		Base:             entity.Base{ID: uuid.NewString()},
		UserID:           userID,
		EventID:          event.ID,
		RewardIDs:        req.RewardIDs,
		Status:           entity.RequestPending,
		VerificationData: req.VerificationData,
	}

	txCtx := xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(txCtx)

	if err := d.rewardRequestRepo.Create(txCtx, request); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create reward request: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.participationRepo.MarkRewardRequested(txCtx, event.ID, userID, request.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark participation: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(txCtx)

	d.audit.Record(ctx, &entity.EventLog{
		LogType:   entity.LogRewardRequested,
		ActorID:   userID,
		EventID:   event.ID,
		RequestID: request.ID,
		Details:   entity.Map{"reward_ids": req.RewardIDs},
	})

	if event.AutoReward {
		// Auto approval runs in its own transaction. A failure, out of stock
		// included, leaves the request PENDING for manual review.
		if err := d.approve(ctx, request, AutoReviewerID); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot auto approve request %s: %v", request.ID, err)
		} else {
			request, err = d.rewardRequestRepo.GetByID(ctx, request.ID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get request after auto approval: %v", err)
				return nil, errorx.Unknown
			}
		}
	}

	return &model.RequestRewardsResponse{RewardRequest: convertRewardRequest(request)}, nil
}

func (d *rewardRequestDomain) Review(
	ctx context.Context, req *model.ReviewRewardRequestRequest,
) (*model.ReviewRewardRequestResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty id")
	}

	status, err := enum.ToEnum[entity.RewardRequestStatus](req.Status)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid status")
	}

	if status != entity.RequestApproved && status != entity.RequestRejected {
		return nil, errorx.New(errorx.BadRequest, "Status must be either approved or rejected")
	}

	if status == entity.RequestRejected && req.RejectedReason == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty rejected reason")
	}

	// One review at a time per request.
	d.locker.Lock("review", req.ID)
	defer d.locker.Unlock("review", req.ID)

	request, err := d.rewardRequestRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found reward request")
		}

		xcontext.Logger(ctx).Errorf("Cannot get reward request: %v", err)
		return nil, errorx.Unknown
	}

	// Re-reviewing with the same outcome is a no-op.
	if request.Status == status {
		return &model.ReviewRewardRequestResponse{
			RewardRequest: convertRewardRequest(request),
		}, nil
	}

	if request.Status != entity.RequestPending {
		return nil, errorx.New(errorx.AlreadyExists, "Request has already been processed")
	}

	operatorID := xcontext.RequestUserID(ctx)
	switch status {
	case entity.RequestApproved:
		if err := d.approve(ctx, request, operatorID); err != nil {
			return nil, err
		}

	case entity.RequestRejected:
		update := &entity.RewardRequest{
			Status:         entity.RequestRejected,
			RejectedReason: req.RejectedReason,
			ProcessedBy:    operatorID,
		}

		if err := d.rewardRequestRepo.UpdateStatus(ctx, request.ID, update); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot reject reward request: %v", err)
			return nil, errorx.Unknown
		}

		d.audit.Record(ctx, &entity.EventLog{
			LogType:   entity.LogRewardRejected,
			ActorID:   operatorID,
			EventID:   request.EventID,
			RequestID: request.ID,
			Details:   entity.Map{"reason": req.RejectedReason},
		})

	}

	request, err = d.rewardRequestRepo.GetByID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get request after review: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ReviewRewardRequestResponse{
		RewardRequest: convertRewardRequest(request),
	}, nil
}

// Cancel withdraws a pending request. Only the requester can cancel, and a
// processed request can no longer be withdrawn.
func (d *rewardRequestDomain) Cancel(
	ctx context.Context, req *model.CancelRewardRequestRequest,
) (*model.CancelRewardRequestResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty id")
	}

	d.locker.Lock("review", req.ID)
	defer d.locker.Unlock("review", req.ID)

	request, err := d.rewardRequestRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found reward request")
		}

		xcontext.Logger(ctx).Errorf("Cannot get reward request: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	if request.UserID != userID {
		return nil, errorx.New(errorx.PermissionDenied, "Only the requester can cancel")
	}

	if request.Status == entity.RequestCancelled {
		return &model.CancelRewardRequestResponse{
			RewardRequest: convertRewardRequest(request),
		}, nil
	}

	if request.Status != entity.RequestPending {
		return nil, errorx.New(errorx.AlreadyExists, "Request has already been processed")
	}

	update := &entity.RewardRequest{
		Status:      entity.RequestCancelled,
		ProcessedBy: userID,
	}

	if err := d.rewardRequestRepo.UpdateStatus(ctx, request.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot cancel reward request: %v", err)
		return nil, errorx.Unknown
	}

	request, err = d.rewardRequestRepo.GetByID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get request after cancel: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CancelRewardRequestResponse{
		RewardRequest: convertRewardRequest(request),
	}, nil
}

// approve issues every reward of the request and flips it to APPROVED in one
// transaction. If any reward is exhausted the whole approval rolls back and
// the request stays PENDING.
func (d *rewardRequestDomain) approve(
	ctx context.Context, request *entity.RewardRequest, operatorID string,
) error {
	txCtx := xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(txCtx)

	grants, err := d.engine.Issue(txCtx, request.ID, operatorID)
	if err != nil {
		return err
	}

	now := sql.NullTime{Valid: true, Time: time.Now()}
	update := &entity.RewardRequest{
		Status:      entity.RequestApproved,
		ApprovedAt:  now,
		IssuedAt:    now,
		ProcessedBy: operatorID,
	}

	if err := d.rewardRequestRepo.UpdateStatus(txCtx, request.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot approve reward request: %v", err)
		return errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(txCtx)

	d.audit.Record(ctx, &entity.EventLog{
		LogType:   entity.LogRewardApproved,
		ActorID:   operatorID,
		EventID:   request.EventID,
		RequestID: request.ID,
		Details:   entity.Map{"granted": len(grants)},
	})

	return nil
}

func (d *rewardRequestDomain) Get(
	ctx context.Context, req *model.GetRewardRequestRequest,
) (*model.GetRewardRequestResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty id")
	}

	request, err := d.rewardRequestRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found reward request")
		}

		xcontext.Logger(ctx).Errorf("Cannot get reward request: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetRewardRequestResponse{
		RewardRequest: convertRewardRequest(request),
	}, nil
}

func (d *rewardRequestDomain) GetMyList(
	ctx context.Context, req *model.GetMyRewardRequestsRequest,
) (*model.GetMyRewardRequestsResponse, error) {
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

	requests, err := d.rewardRequestRepo.GetList(ctx, repository.RewardRequestFilter{
		EventID: req.EventID,
		UserID:  xcontext.RequestUserID(ctx),
		Offset:  req.Offset,
		Limit:   req.Limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of reward requests: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetMyRewardRequestsResponse{RewardRequests: []model.RewardRequest{}}
	for i := range requests {
		resp.RewardRequests = append(resp.RewardRequests, convertRewardRequest(&requests[i]))
	}

	return resp, nil
}

func (d *rewardRequestDomain) GetList(
	ctx context.Context, req *model.GetRewardRequestsRequest,
) (*model.GetRewardRequestsResponse, error) {
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

	filter := repository.RewardRequestFilter{
		EventID: req.EventID,
		UserID:  req.UserID,
		Offset:  req.Offset,
		Limit:   req.Limit,
	}

	if req.Status != "" {
		status, err := enum.ToEnum[entity.RewardRequestStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status")
		}
		filter.Status = []entity.RewardRequestStatus{status}
	}

	requests, err := d.rewardRequestRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of reward requests: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetRewardRequestsResponse{RewardRequests: []model.RewardRequest{}}
	for i := range requests {
		resp.RewardRequests = append(resp.RewardRequests, convertRewardRequest(&requests[i]))
	}

	return resp, nil
}
