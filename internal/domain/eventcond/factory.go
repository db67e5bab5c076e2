package eventcond

import (
	"context"
	"time"

	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
)

// New constructs the Verifier matching the event's condition type. New
// condition kinds are added by implementing Verifier and extending this
// switch.
func New(ctx context.Context, event entity.Event, data entity.Map) (Verifier, error) {
	switch event.ConditionType {
	case entity.ConditionLoginDays, entity.ConditionAttendance:
		return newAttendanceVerifier(), nil

	case entity.ConditionPurchaseAmount:
		return newPurchaseVerifier(ctx, data)

	case entity.ConditionInviteFriends:
		return newInviteVerifier(ctx, data)

	default:
		return newUnsupportedVerifier(event.ConditionType), nil
	}
}

// Verify answers whether the user satisfies the event's participation
// condition right now. The event must be ACTIVE with the current time inside
// its window regardless of condition type; any failure short-circuits to
// false, never to an error.
func Verify(ctx context.Context, event entity.Event, data entity.Map) bool {
	if !event.InActiveWindow(time.Now()) {
		return false
	}

	verifier, err := New(ctx, event, data)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot construct verifier for %s: %v", event.ConditionType, err)
		return false
	}

	ok, err := verifier.Verify(ctx)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot verify condition %s: %v", event.ConditionType, err)
		return false
	}

	return ok
}
