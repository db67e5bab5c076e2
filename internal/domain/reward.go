package domain

import (
	"context"
	"database/sql"
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

type RewardDomain interface {
	Create(context.Context, *model.CreateRewardRequest) (*model.CreateRewardResponse, error)
	UpdateByID(context.Context, *model.UpdateRewardRequest) (*model.UpdateRewardResponse, error)
	GetList(context.Context, *model.GetRewardsRequest) (*model.GetRewardsResponse, error)
}

type rewardDomain struct {
	rewardRepo repository.RewardRepository
	eventRepo  repository.EventRepository
	audit      *common.AuditLogger
}

func NewRewardDomain(
	rewardRepo repository.RewardRepository,
	eventRepo repository.EventRepository,
	audit *common.AuditLogger,
) RewardDomain {
	return &rewardDomain{rewardRepo: rewardRepo, eventRepo: eventRepo, audit: audit}
}

func (d *rewardDomain) Create(
	ctx context.Context, req *model.CreateRewardRequest,
) (*model.CreateRewardResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty name")
	}

	if req.TotalQuantity <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Total quantity must be positive")
	}

	rewardType, err := enum.ToEnum[entity.RewardType](req.Type)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid reward type")
	}

	event, err := d.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	var expiryDate sql.NullTime
	if req.ExpiryDate != "" {
		t, err := time.Parse(time.RFC3339, req.ExpiryDate)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid expiry date")
		}
		expiryDate = sql.NullTime{Valid: true, Time: t}
	}

	userID := xcontext.RequestUserID(ctx)
	reward := &entity.Reward{
		Base:          entity.Base{ID: uuid.NewString()},
		EventID:       event.ID,
		Name:          req.Name,
		Description:   req.Description,
		Type:          rewardType,
		Value:         req.Value,
		Metadata:      req.Metadata,
		TotalQuantity: req.TotalQuantity,
		ExpiryDate:    expiryDate,
		CreatedBy:     userID,
	}

	if err := d.rewardRepo.Create(ctx, reward); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create reward: %v", err)
		return nil, errorx.Unknown
	}

	d.audit.Record(ctx, &entity.EventLog{
		LogType: entity.LogRewardCreated,
		ActorID: userID,
		EventID: event.ID,
		Details: entity.Map{"reward_id": reward.ID, "name": reward.Name},
	})

	return &model.CreateRewardResponse{Reward: convertReward(reward)}, nil
}

func (d *rewardDomain) UpdateByID(
	ctx context.Context, req *model.UpdateRewardRequest,
) (*model.UpdateRewardResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty id")
	}

	reward, err := d.rewardRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found reward")
		}

		xcontext.Logger(ctx).Errorf("Cannot get reward: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	updated := &entity.Reward{
		Name:        req.Name,
		Description: req.Description,
		Value:       req.Value,
		Metadata:    req.Metadata,
		UpdatedBy:   userID,
	}

	if req.TotalQuantity != nil {
		// Shrinking the pool below what is already issued would break the
		// scarcity invariant.
		if *req.TotalQuantity < reward.IssuedQuantity {
			return nil, errorx.New(errorx.BadRequest,
				"Total quantity must not be less than issued quantity")
		}
		updated.TotalQuantity = *req.TotalQuantity
	}

	if req.ExpiryDate != "" {
		t, err := time.Parse(time.RFC3339, req.ExpiryDate)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid expiry date")
		}
		updated.ExpiryDate = sql.NullTime{Valid: true, Time: t}
	}

	if err := d.rewardRepo.Update(ctx, reward.ID, updated); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update reward: %v", err)
		return nil, errorx.Unknown
	}

	reward, err = d.rewardRepo.GetByID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get reward after update: %v", err)
		return nil, errorx.Unknown
	}

	d.audit.Record(ctx, &entity.EventLog{
		LogType: entity.LogRewardUpdated,
		ActorID: userID,
		EventID: reward.EventID,
		Details: entity.Map{"reward_id": reward.ID, "name": reward.Name},
	})

	return &model.UpdateRewardResponse{Reward: convertReward(reward)}, nil
}

func (d *rewardDomain) GetList(
	ctx context.Context, req *model.GetRewardsRequest,
) (*model.GetRewardsResponse, error) {
	if req.EventID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty event id")
	}

	rewards, err := d.rewardRepo.GetByEventID(ctx, req.EventID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of rewards: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetRewardsResponse{Rewards: []model.Reward{}}
	for i := range rewards {
		resp.Rewards = append(resp.Rewards, convertReward(&rewards[i]))
	}

	return resp, nil
}
