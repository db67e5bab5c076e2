package entity

import (
	"time"

	"github.com/Doompy/event-reward-system/pkg/enum"
)

type EventLogType string

var (
	LogEventCreated       = enum.New(EventLogType("EVENT_CREATED"))
	LogEventUpdated       = enum.New(EventLogType("EVENT_UPDATED"))
	LogEventStatusChanged = enum.New(EventLogType("EVENT_STATUS_CHANGED"))
	LogEventParticipated  = enum.New(EventLogType("EVENT_PARTICIPATED"))
	LogRewardCreated      = enum.New(EventLogType("REWARD_CREATED"))
	LogRewardUpdated      = enum.New(EventLogType("REWARD_UPDATED"))
	LogRewardRequested    = enum.New(EventLogType("REWARD_REQUESTED"))
	LogRewardApproved     = enum.New(EventLogType("REWARD_APPROVED"))
	LogRewardRejected     = enum.New(EventLogType("REWARD_REJECTED"))
	LogRewardIssued       = enum.New(EventLogType("REWARD_ISSUED"))
)

// EventLog is an append-only lifecycle record. Rows are never updated or
// deleted, so it carries a snowflake id instead of Base.
type EventLog struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time

	LogType EventLogType `gorm:"index"`
	ActorID string

	EventID   string `gorm:"index"`
	RewardID  string
	RequestID string

	Details Map
}
