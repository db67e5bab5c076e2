package entity

import (
	"database/sql"

	"github.com/Doompy/event-reward-system/pkg/enum"
)

type UserRewardStatus string

var (
	UserRewardActive  = enum.New(UserRewardStatus("ACTIVE"))
	UserRewardUsed    = enum.New(UserRewardStatus("USED"))
	UserRewardExpired = enum.New(UserRewardStatus("EXPIRED"))
)

// UserReward is the issued outcome of an approved reward request. The reward
// fields are snapshotted at issuance time so later catalog edits do not
// change grants that were already handed out.
type UserReward struct {
	Base

	UserID  string `gorm:"index"`
	EventID string

	RewardID  string `gorm:"uniqueIndex:idx_user_rewards_request_reward"`
	RequestID string `gorm:"uniqueIndex:idx_user_rewards_request_reward"`

	Name        string
	Description string
	Type        RewardType
	Value       string
	Metadata    Map

	Status     UserRewardStatus
	ExpiryDate sql.NullTime
	UsedAt     sql.NullTime
}
