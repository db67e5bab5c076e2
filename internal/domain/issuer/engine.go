package issuer

import (
	"context"
	"errors"

	"github.com/Doompy/event-reward-system/internal/common"
	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/internal/repository"
	"github.com/Doompy/event-reward-system/pkg/errorx"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Engine converts an approved reward request into user reward grants while
// keeping the catalog counters consistent. The caller is responsible for
// running Issue inside a database transaction together with the request
// status change.
type Engine struct {
	rewardRequestRepo repository.RewardRequestRepository
	rewardRepo        repository.RewardRepository
	userRewardRepo    repository.UserRewardRepository
	audit             *common.AuditLogger
}

func NewEngine(
	rewardRequestRepo repository.RewardRequestRepository,
	rewardRepo repository.RewardRepository,
	userRewardRepo repository.UserRewardRepository,
	audit *common.AuditLogger,
) *Engine {
	return &Engine{
		rewardRequestRepo: rewardRequestRepo,
		rewardRepo:        rewardRepo,
		userRewardRepo:    userRewardRepo,
		audit:             audit,
	}
}

// Issue creates one grant per reward of the request, snapshotting the reward
// fields at issuance time. A reward id that no longer resolves is logged and
// skipped; an exhausted reward aborts the whole issuance so the surrounding
// transaction can roll back. Issuing an already approved request is a no-op.
func (e *Engine) Issue(ctx context.Context, requestID, operatorID string) ([]entity.UserReward, error) {
	request, err := e.rewardRequestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found reward request")
		}

		xcontext.Logger(ctx).Errorf("Cannot get reward request: %v", err)
		return nil, errorx.Unknown
	}

	if request.Status == entity.RequestApproved {
		xcontext.Logger(ctx).Warnf("Reward request %s already approved", requestID)
		return nil, nil
	}

	if len(request.RewardIDs) == 0 {
		return nil, errorx.New(errorx.BadRequest, "No rewards to issue")
	}

	grants := []entity.UserReward{}
	for _, rewardID := range request.RewardIDs {
		reward, err := e.rewardRepo.GetByID(ctx, rewardID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				xcontext.Logger(ctx).Warnf("Reward %s not found, skipped", rewardID)
				continue
			}

			xcontext.Logger(ctx).Errorf("Cannot get reward: %v", err)
			return nil, errorx.Unknown
		}

		if err := e.rewardRepo.IncreaseIssuedQuantity(ctx, rewardID); err != nil {
			if errors.Is(err, repository.ErrNoRemainingQuantity) {
				return nil, errorx.New(errorx.Unavailable, "Reward %s is out of stock", reward.Name)
			}

			xcontext.Logger(ctx).Errorf("Cannot increase issued quantity: %v", err)
			return nil, errorx.Unknown
		}

		grant := entity.UserReward{
			Base:        entity.Base{ID: uuid.NewString()},
			UserID:      request.UserID,
			EventID:     request.EventID,
			RewardID:    rewardID,
			RequestID:   request.ID,
			Name:        reward.Name,
			Description: reward.Description,
			Type:        reward.Type,
			Value:       reward.Value,
			Metadata:    reward.Metadata,
			Status:      entity.UserRewardActive,
			ExpiryDate:  reward.ExpiryDate,
		}

		if err := e.userRewardRepo.Create(ctx, &grant); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create user reward: %v", err)
			return nil, errorx.New(errorx.Internal, "Unable to issue rewards")
		}

		e.audit.Record(ctx, &entity.EventLog{
			LogType:   entity.LogRewardIssued,
			ActorID:   operatorID,
			EventID:   request.EventID,
			RewardID:  rewardID,
			RequestID: request.ID,
			Details:   entity.Map{"user_id": request.UserID, "name": reward.Name},
		})

		grants = append(grants, grant)
	}

	return grants, nil
}
