package entity

import (
	"time"

	"github.com/Doompy/event-reward-system/pkg/enum"
)

type EventStatus string

var (
	EventDraft  = enum.New(EventStatus("DRAFT"))
	EventActive = enum.New(EventStatus("ACTIVE"))
	EventPaused = enum.New(EventStatus("PAUSED"))
	EventEnded  = enum.New(EventStatus("ENDED"))
)

type ConditionType string

var (
	ConditionLoginDays       = enum.New(ConditionType("LOGIN_DAYS"))
	ConditionInviteFriends   = enum.New(ConditionType("INVITE_FRIENDS"))
	ConditionPurchaseAmount  = enum.New(ConditionType("PURCHASE_AMOUNT"))
	ConditionQuestCompletion = enum.New(ConditionType("QUEST_COMPLETION"))
	ConditionAttendance      = enum.New(ConditionType("ATTENDANCE"))
	ConditionCustom          = enum.New(ConditionType("CUSTOM"))
)

type Event struct {
	Base

	Title          string
	Description    string
	StartDate      time.Time
	EndDate        time.Time
	Status         EventStatus
	ConditionType  ConditionType
	ConditionValue Map

	AutoReward                 bool
	AllowMultipleParticipation bool
	ParticipantCount           int64
	MaxParticipants            int64

	CreatedBy string
	UpdatedBy string
}

// InActiveWindow reports whether the event accepts participations and reward
// requests at the given time.
func (e *Event) InActiveWindow(now time.Time) bool {
	return e.Status == EventActive && !now.Before(e.StartDate) && !now.After(e.EndDate)
}
