package eventcond

import (
	"testing"
	"time"

	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func activeEvent(conditionType entity.ConditionType) entity.Event {
	now := time.Now()
	return entity.Event{
		Base:          entity.Base{ID: "event"},
		Status:        entity.EventActive,
		ConditionType: conditionType,
		StartDate:     now.Add(-time.Hour),
		EndDate:       now.Add(time.Hour),
	}
}

func Test_Verify_Attendance(t *testing.T) {
	ctx := testutil.MockContext()

	require.True(t, Verify(ctx, activeEvent(entity.ConditionAttendance), nil))
	require.True(t, Verify(ctx, activeEvent(entity.ConditionLoginDays), nil))
}

func Test_Verify_OutsideWindow(t *testing.T) {
	ctx := testutil.MockContext()

	expired := activeEvent(entity.ConditionAttendance)
	expired.StartDate = time.Now().Add(-48 * time.Hour)
	expired.EndDate = time.Now().Add(-24 * time.Hour)
	require.False(t, Verify(ctx, expired, nil))

	upcoming := activeEvent(entity.ConditionAttendance)
	upcoming.StartDate = time.Now().Add(24 * time.Hour)
	upcoming.EndDate = time.Now().Add(48 * time.Hour)
	require.False(t, Verify(ctx, upcoming, nil))

	draft := activeEvent(entity.ConditionAttendance)
	draft.Status = entity.EventDraft
	require.False(t, Verify(ctx, draft, nil))
}

func Test_Verify_Purchase(t *testing.T) {
	ctx := testutil.MockContext()
	event := activeEvent(entity.ConditionPurchaseAmount)

	require.False(t, Verify(ctx, event, nil))
	require.False(t, Verify(ctx, event, entity.Map{"purchase_id": ""}))
	require.True(t, Verify(ctx, event, entity.Map{"purchase_id": "order-1"}))
}

func Test_Verify_Invite(t *testing.T) {
	ctx := testutil.MockContext()
	event := activeEvent(entity.ConditionInviteFriends)

	require.False(t, Verify(ctx, event, nil))
	require.False(t, Verify(ctx, event, entity.Map{"invited_users": []string{}}))
	require.True(t, Verify(ctx, event, entity.Map{"invited_users": []string{"friend"}}))
}

func Test_Verify_Unsupported(t *testing.T) {
	ctx := testutil.MockContext()

	require.False(t, Verify(ctx, activeEvent(entity.ConditionCustom), nil))
	require.False(t, Verify(ctx, activeEvent(entity.ConditionQuestCompletion), nil))
}
