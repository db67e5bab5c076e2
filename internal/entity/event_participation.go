package entity

import (
	"time"

	"github.com/Doompy/event-reward-system/pkg/enum"
)

type ParticipationStatus string

var (
	Participated        = enum.New(ParticipationStatus("PARTICIPATED"))
	ParticipantRewarded = enum.New(ParticipationStatus("REWARDED"))
	ParticipationFailed = enum.New(ParticipationStatus("FAILED"))
)

type EventParticipation struct {
	Base

	UserID  string `gorm:"index:idx_participations_event_user"`
	EventID string `gorm:"index:idx_participations_event_user"`
	Event   Event  `gorm:"foreignKey:EventID"`

	Status         ParticipationStatus
	ParticipatedAt time.Time

	VerificationData Map
	AdditionalData   Map

	IsRewardRequested bool
	RewardRequestID   string

	ParticipationCount int
}
