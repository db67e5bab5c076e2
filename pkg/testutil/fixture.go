package testutil

import (
	"context"
	"time"

	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/internal/repository"
)

const (
	ActiveEventID   = "event1"
	DraftEventID    = "event2"
	ExpiredEventID  = "event3"
	Reward1ID       = "reward1"
	Reward2ID       = "reward2"
	ScarceRewardID  = "reward3"
	User1ID         = "user1"
	User2ID         = "user2"
	AdminID         = "admin"
)

// CreateFixtureDb seeds the database of the given context with a small set of
// events and rewards that most tests start from.
func CreateFixtureDb(ctx context.Context) {
	InsertEvents(ctx)
	InsertRewards(ctx)
}

func InsertEvents(ctx context.Context) {
	eventRepo := repository.NewEventRepository()
	now := time.Now()

	err := eventRepo.Create(ctx, &entity.Event{
		Base:          entity.Base{ID: ActiveEventID},
		Title:         "Attendance Week",
		Status:        entity.EventActive,
		ConditionType: entity.ConditionAttendance,
		StartDate:     now.Add(-24 * time.Hour),
		EndDate:       now.Add(24 * time.Hour),
		CreatedBy:     AdminID,
	})
	if err != nil {
		panic(err)
	}

	err = eventRepo.Create(ctx, &entity.Event{
		Base:          entity.Base{ID: DraftEventID},
		Title:         "Unpublished Event",
		Status:        entity.EventDraft,
		ConditionType: entity.ConditionAttendance,
		StartDate:     now.Add(-24 * time.Hour),
		EndDate:       now.Add(24 * time.Hour),
		CreatedBy:     AdminID,
	})
	if err != nil {
		panic(err)
	}

	err = eventRepo.Create(ctx, &entity.Event{
		Base:          entity.Base{ID: ExpiredEventID},
		Title:         "Last Month Event",
		Status:        entity.EventActive,
		ConditionType: entity.ConditionAttendance,
		StartDate:     now.Add(-48 * time.Hour),
		EndDate:       now.Add(-24 * time.Hour),
		CreatedBy:     AdminID,
	})
	if err != nil {
		panic(err)
	}
}

func InsertRewards(ctx context.Context) {
	rewardRepo := repository.NewRewardRepository()

	err := rewardRepo.Create(ctx, &entity.Reward{
		Base:          entity.Base{ID: Reward1ID},
		EventID:       ActiveEventID,
		Name:          "100 Points",
		Type:          entity.RewardPoint,
		Value:         "100",
		TotalQuantity: 100,
		CreatedBy:     AdminID,
	})
	if err != nil {
		panic(err)
	}

	err = rewardRepo.Create(ctx, &entity.Reward{
		Base:          entity.Base{ID: Reward2ID},
		EventID:       ActiveEventID,
		Name:          "Welcome Badge",
		Type:          entity.RewardBadge,
		Value:         "welcome",
		TotalQuantity: 100,
		CreatedBy:     AdminID,
	})
	if err != nil {
		panic(err)
	}

	err = rewardRepo.Create(ctx, &entity.Reward{
		Base:          entity.Base{ID: ScarceRewardID},
		EventID:       ActiveEventID,
		Name:          "Limited Coupon",
		Type:          entity.RewardCoupon,
		Value:         "GOLD-CPN",
		TotalQuantity: 1,
		CreatedBy:     AdminID,
	})
	if err != nil {
		panic(err)
	}
}
