package entity

import (
	"database/sql"

	"github.com/Doompy/event-reward-system/pkg/enum"
)

type RewardRequestStatus string

var (
	RequestPending   = enum.New(RewardRequestStatus("PENDING"))
	RequestApproved  = enum.New(RewardRequestStatus("APPROVED"))
	RequestRejected  = enum.New(RewardRequestStatus("REJECTED"))
	RequestIssued    = enum.New(RewardRequestStatus("ISSUED"))
	RequestCancelled = enum.New(RewardRequestStatus("CANCELLED"))
)

type RewardRequest struct {
	Base

	UserID  string
	EventID string
	Event   Event `gorm:"foreignKey:EventID"`

	RewardIDs        Array[string]
	Status           RewardRequestStatus
	VerificationData Map

	ApprovedAt     sql.NullTime
	IssuedAt       sql.NullTime
	RejectedReason string
	ProcessedBy    string
}
