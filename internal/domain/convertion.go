package domain

import (
	"database/sql"
	"time"

	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/internal/model"
)

func formatNullTime(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}

	return t.Time.Format(time.RFC3339Nano)
}

func convertEvent(event *entity.Event) model.Event {
	return model.Event{
		ID:                         event.ID,
		Title:                      event.Title,
		Description:                event.Description,
		StartDate:                  event.StartDate.Format(time.RFC3339Nano),
		EndDate:                    event.EndDate.Format(time.RFC3339Nano),
		Status:                     string(event.Status),
		ConditionType:              string(event.ConditionType),
		ConditionValue:             event.ConditionValue,
		AutoReward:                 event.AutoReward,
		AllowMultipleParticipation: event.AllowMultipleParticipation,
		ParticipantCount:           event.ParticipantCount,
		MaxParticipants:            event.MaxParticipants,
		CreatedBy:                  event.CreatedBy,
		UpdatedBy:                  event.UpdatedBy,
	}
}

func convertReward(reward *entity.Reward) model.Reward {
	return model.Reward{
		ID:             reward.ID,
		EventID:        reward.EventID,
		Name:           reward.Name,
		Description:    reward.Description,
		Type:           string(reward.Type),
		Value:          reward.Value,
		Metadata:       reward.Metadata,
		TotalQuantity:  reward.TotalQuantity,
		IssuedQuantity: reward.IssuedQuantity,
		ExpiryDate:     formatNullTime(reward.ExpiryDate),
		CreatedBy:      reward.CreatedBy,
		UpdatedBy:      reward.UpdatedBy,
	}
}

func convertParticipation(participation *entity.EventParticipation) model.Participation {
	return model.Participation{
		ID:                 participation.ID,
		EventID:            participation.EventID,
		UserID:             participation.UserID,
		Status:             string(participation.Status),
		ParticipatedAt:     participation.ParticipatedAt.Format(time.RFC3339Nano),
		VerificationData:   participation.VerificationData,
		AdditionalData:     participation.AdditionalData,
		IsRewardRequested:  participation.IsRewardRequested,
		RewardRequestID:    participation.RewardRequestID,
		ParticipationCount: participation.ParticipationCount,
	}
}

func convertRewardRequest(request *entity.RewardRequest) model.RewardRequest {
	return model.RewardRequest{
		ID:               request.ID,
		EventID:          request.EventID,
		UserID:           request.UserID,
		RewardIDs:        request.RewardIDs,
		Status:           string(request.Status),
		VerificationData: request.VerificationData,
		ApprovedAt:       formatNullTime(request.ApprovedAt),
		IssuedAt:         formatNullTime(request.IssuedAt),
		RejectedReason:   request.RejectedReason,
		ProcessedBy:      request.ProcessedBy,
	}
}

func convertEventLog(log *entity.EventLog) model.EventLog {
	return model.EventLog{
		ID:        log.ID,
		CreatedAt: log.CreatedAt.Format(time.RFC3339Nano),
		LogType:   string(log.LogType),
		ActorID:   log.ActorID,
		EventID:   log.EventID,
		RewardID:  log.RewardID,
		RequestID: log.RequestID,
		Details:   log.Details,
	}
}

func convertUserReward(userReward *entity.UserReward) model.UserReward {
	return model.UserReward{
		ID:          userReward.ID,
		EventID:     userReward.EventID,
		RewardID:    userReward.RewardID,
		RequestID:   userReward.RequestID,
		Name:        userReward.Name,
		Description: userReward.Description,
		Type:        string(userReward.Type),
		Value:       userReward.Value,
		Metadata:    userReward.Metadata,
		Status:      string(userReward.Status),
		ExpiryDate:  formatNullTime(userReward.ExpiryDate),
		UsedAt:      formatNullTime(userReward.UsedAt),
	}
}
