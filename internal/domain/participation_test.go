package domain

import (
	"testing"
	"time"

	"github.com/Doompy/event-reward-system/internal/common"
	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/internal/model"
	"github.com/Doompy/event-reward-system/internal/repository"
	"github.com/Doompy/event-reward-system/pkg/testutil"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newParticipationDomainForTest() ParticipationDomain {
	return NewParticipationDomain(
		repository.NewEventParticipationRepository(),
		repository.NewEventRepository(),
		repository.NewRewardRequestRepository(),
		common.NewKeyLocker(),
		common.NewAuditLogger(repository.NewEventLogRepository()),
	)
}

func Test_participationDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newParticipationDomainForTest()
	eventRepo := repository.NewEventRepository()

	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User1ID)
	resp, err := d.Create(authorizedCtx, &model.CreateParticipationRequest{
		EventID: testutil.ActiveEventID,
	})
	require.NoError(t, err)
	require.Equal(t, "PARTICIPATED", resp.Participation.Status)
	require.Equal(t, 1, resp.Participation.ParticipationCount)

	event, err := eventRepo.GetByID(ctx, testutil.ActiveEventID)
	require.NoError(t, err)
	require.Equal(t, int64(1), event.ParticipantCount)
}

func Test_participationDomain_Create_InactiveEvent(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newParticipationDomainForTest()

	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User1ID)

	_, err := d.Create(authorizedCtx, &model.CreateParticipationRequest{
		EventID: testutil.DraftEventID,
	})
	require.Error(t, err)
	require.Equal(t, "Event is not active", err.Error())

	_, err = d.Create(authorizedCtx, &model.CreateParticipationRequest{
		EventID: testutil.ExpiredEventID,
	})
	require.Error(t, err)
	require.Equal(t, "Event is not active", err.Error())
}

func Test_participationDomain_Create_ConcurrentDuplicate(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newParticipationDomainForTest()
	participationRepo := repository.NewEventParticipationRepository()

	// The in-memory database exists per connection, so the pool must not
	// grow a second one under concurrency.
	sqlDB, err := xcontext.DB(ctx).DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User1ID)
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := d.Create(authorizedCtx, &model.CreateParticipationRequest{
				EventID: testutil.ActiveEventID,
			})
			errs <- err
		}()
	}

	var failures []error
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			failures = append(failures, err)
		}
	}

	require.Len(t, failures, 1)
	require.Equal(t, "User already participated in this event", failures[0].Error())

	count, err := participationRepo.Count(ctx, testutil.ActiveEventID, entity.Participated)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func Test_participationDomain_Create_Duplicate(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newParticipationDomainForTest()

	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User1ID)
	_, err := d.Create(authorizedCtx, &model.CreateParticipationRequest{
		EventID: testutil.ActiveEventID,
	})
	require.NoError(t, err)

	_, err = d.Create(authorizedCtx, &model.CreateParticipationRequest{
		EventID: testutil.ActiveEventID,
	})
	require.Error(t, err)
	require.Equal(t, "User already participated in this event", err.Error())
}

func Test_participationDomain_Create_MultipleAllowed(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newParticipationDomainForTest()
	eventRepo := repository.NewEventRepository()

	now := time.Now()
	dailyEventID := uuid.NewString()
	err := eventRepo.Create(ctx, &entity.Event{
		Base:                       entity.Base{ID: dailyEventID},
		Title:                      "Daily Check-in",
		Status:                     entity.EventActive,
		ConditionType:              entity.ConditionAttendance,
		StartDate:                  now.Add(-time.Hour),
		EndDate:                    now.Add(time.Hour),
		AllowMultipleParticipation: true,
	})
	require.NoError(t, err)

	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User1ID)
	resp, err := d.Create(authorizedCtx, &model.CreateParticipationRequest{EventID: dailyEventID})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Participation.ParticipationCount)

	resp, err = d.Create(authorizedCtx, &model.CreateParticipationRequest{EventID: dailyEventID})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Participation.ParticipationCount)
}

func Test_participationDomain_Create_EventFull(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newParticipationDomainForTest()
	eventRepo := repository.NewEventRepository()

	now := time.Now()
	err := eventRepo.Create(ctx, &entity.Event{
		Base:            entity.Base{ID: "small-event"},
		Title:           "One Seat Only",
		Status:          entity.EventActive,
		ConditionType:   entity.ConditionAttendance,
		StartDate:       now.Add(-time.Hour),
		EndDate:         now.Add(time.Hour),
		MaxParticipants: 1,
	})
	require.NoError(t, err)

	user1Ctx := testutil.MockContextWithUserID(ctx, testutil.User1ID)
	_, err = d.Create(user1Ctx, &model.CreateParticipationRequest{EventID: "small-event"})
	require.NoError(t, err)

	user2Ctx := testutil.MockContextWithUserID(ctx, testutil.User2ID)
	_, err = d.Create(user2Ctx, &model.CreateParticipationRequest{EventID: "small-event"})
	require.Error(t, err)
	require.Equal(t, "Event reached the maximum number of participants", err.Error())

	// The failed participation must not leave a row behind.
	participations, err := repository.NewEventParticipationRepository().GetList(ctx,
		repository.ParticipationFilter{EventID: "small-event", Limit: 10})
	require.NoError(t, err)
	require.Len(t, participations, 1)
}

func Test_participationDomain_GetStats(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newParticipationDomainForTest()

	user1Ctx := testutil.MockContextWithUserID(ctx, testutil.User1ID)
	_, err := d.Create(user1Ctx, &model.CreateParticipationRequest{EventID: testutil.ActiveEventID})
	require.NoError(t, err)

	user2Ctx := testutil.MockContextWithUserID(ctx, testutil.User2ID)
	_, err = d.Create(user2Ctx, &model.CreateParticipationRequest{EventID: testutil.ActiveEventID})
	require.NoError(t, err)

	resp, err := d.GetStats(ctx, &model.GetParticipationStatsRequest{
		EventID: testutil.ActiveEventID,
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), resp.TotalParticipations)
	require.Equal(t, int64(2), resp.UniqueParticipants)
	require.Len(t, resp.ParticipationsByDay, 1)
	require.Equal(t, float64(0), resp.RewardRequestRate)

	_, err = d.GetStats(ctx, &model.GetParticipationStatsRequest{EventID: "missing"})
	require.Error(t, err)
	require.Equal(t, "Not found event", err.Error())
}
