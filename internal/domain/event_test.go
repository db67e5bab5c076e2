package domain

import (
	"testing"
	"time"

	"github.com/Doompy/event-reward-system/internal/common"
	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/internal/model"
	"github.com/Doompy/event-reward-system/internal/repository"
	"github.com/Doompy/event-reward-system/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newEventDomainForTest() (EventDomain, repository.EventLogRepository) {
	eventLogRepo := repository.NewEventLogRepository()
	d := NewEventDomain(repository.NewEventRepository(), common.NewAuditLogger(eventLogRepo))
	return d, eventLogRepo
}

func Test_eventDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	d, eventLogRepo := newEventDomainForTest()

	now := time.Now()
	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.AdminID)
	resp, err := d.Create(authorizedCtx, &model.CreateEventRequest{
		Title:         "Launch Week",
		StartDate:     now.Format(time.RFC3339),
		EndDate:       now.Add(72 * time.Hour).Format(time.RFC3339),
		ConditionType: "ATTENDANCE",
	})
	require.NoError(t, err)
	require.Equal(t, "Launch Week", resp.Event.Title)
	require.Equal(t, "DRAFT", resp.Event.Status)
	require.Equal(t, testutil.AdminID, resp.Event.CreatedBy)

	logs, err := eventLogRepo.GetList(ctx, repository.EventLogFilter{
		EventID: resp.Event.ID, Limit: 10,
	})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, entity.LogEventCreated, logs[0].LogType)
}

func Test_eventDomain_Create_Invalid(t *testing.T) {
	ctx := testutil.MockContext()
	d, _ := newEventDomainForTest()

	now := time.Now()
	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.AdminID)

	_, err := d.Create(authorizedCtx, &model.CreateEventRequest{
		Title:         "No dates",
		StartDate:     "tomorrow",
		EndDate:       now.Format(time.RFC3339),
		ConditionType: "ATTENDANCE",
	})
	require.Error(t, err)
	require.Equal(t, "Invalid start date", err.Error())

	_, err = d.Create(authorizedCtx, &model.CreateEventRequest{
		Title:         "Backwards window",
		StartDate:     now.Add(time.Hour).Format(time.RFC3339),
		EndDate:       now.Format(time.RFC3339),
		ConditionType: "ATTENDANCE",
	})
	require.Error(t, err)
	require.Equal(t, "Start date must be before end date", err.Error())

	_, err = d.Create(authorizedCtx, &model.CreateEventRequest{
		Title:         "Unknown condition",
		StartDate:     now.Format(time.RFC3339),
		EndDate:       now.Add(time.Hour).Format(time.RFC3339),
		ConditionType: "WIN_LOTTERY",
	})
	require.Error(t, err)
	require.Equal(t, "Invalid condition type", err.Error())
}

func Test_eventDomain_UpdateByID_StatusChange(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d, eventLogRepo := newEventDomainForTest()

	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.AdminID)
	resp, err := d.UpdateByID(authorizedCtx, &model.UpdateEventRequest{
		ID:     testutil.DraftEventID,
		Status: "ACTIVE",
	})
	require.NoError(t, err)
	require.Equal(t, "ACTIVE", resp.Event.Status)

	logs, err := eventLogRepo.GetList(ctx, repository.EventLogFilter{
		EventID: testutil.DraftEventID, Limit: 10,
	})
	require.NoError(t, err)

	logTypes := []entity.EventLogType{}
	for _, log := range logs {
		logTypes = append(logTypes, log.LogType)
	}
	require.Contains(t, logTypes, entity.LogEventStatusChanged)
	require.Contains(t, logTypes, entity.LogEventUpdated)
}

func Test_eventDomain_UpdateByID_NotFound(t *testing.T) {
	ctx := testutil.MockContext()
	d, _ := newEventDomainForTest()

	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.AdminID)
	_, err := d.UpdateByID(authorizedCtx, &model.UpdateEventRequest{ID: "missing"})
	require.Error(t, err)
	require.Equal(t, "Not found event", err.Error())
}

func Test_eventDomain_GetActiveList(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d, _ := newEventDomainForTest()

	// The draft event and the event whose window already closed must not
	// appear.
	resp, err := d.GetActiveList(ctx, &model.GetActiveEventsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Events, 1)
	require.Equal(t, testutil.ActiveEventID, resp.Events[0].ID)
}

func Test_eventDomain_GetList_Limit(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d, _ := newEventDomainForTest()

	resp, err := d.GetList(ctx, &model.GetEventsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Events, 3)

	resp, err = d.GetList(ctx, &model.GetEventsRequest{Status: "DRAFT"})
	require.NoError(t, err)
	require.Len(t, resp.Events, 1)

	_, err = d.GetList(ctx, &model.GetEventsRequest{Limit: 51})
	require.Error(t, err)
	require.Equal(t, "Exceed the maximum of limit", err.Error())
}
