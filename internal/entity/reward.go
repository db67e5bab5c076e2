package entity

import (
	"database/sql"

	"github.com/Doompy/event-reward-system/pkg/enum"
)

type RewardType string

var (
	RewardPoint    = enum.New(RewardType("POINT"))
	RewardItem     = enum.New(RewardType("ITEM"))
	RewardCoupon   = enum.New(RewardType("COUPON"))
	RewardCurrency = enum.New(RewardType("CURRENCY"))
	RewardBadge    = enum.New(RewardType("BADGE"))
)

type Reward struct {
	Base

	EventID string
	Event   Event `gorm:"foreignKey:EventID"`

	Name        string
	Description string
	Type        RewardType
	Value       string
	Metadata    Map

	// IssuedQuantity is only advanced through a conditional update guarded
	// by TotalQuantity. It never exceeds TotalQuantity.
	TotalQuantity  int64
	IssuedQuantity int64

	ExpiryDate sql.NullTime

	CreatedBy string
	UpdatedBy string
}

// Remaining returns how many grants can still be issued from this reward.
func (r *Reward) Remaining() int64 {
	return r.TotalQuantity - r.IssuedQuantity
}
