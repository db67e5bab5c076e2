package eventcond

import (
	"context"

	"github.com/Doompy/event-reward-system/internal/entity"
	"github.com/Doompy/event-reward-system/pkg/errorx"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
	"github.com/mitchellh/mapstructure"
)

// Attendance condition. The request itself is the proof: a real deployment
// would substitute an external login-count lookup here.
type attendanceVerifier struct{}

func newAttendanceVerifier() *attendanceVerifier {
	return &attendanceVerifier{}
}

func (v *attendanceVerifier) Statement() string {
	return "Participate while the event is running"
}

func (v *attendanceVerifier) Verify(context.Context) (bool, error) {
	return true, nil
}

// Purchase condition. Satisfied when the verification data carries a
// purchase id. No amount threshold is enforced despite the condition name;
// that mirrors the upstream behavior and is pending product clarification.
type purchaseVerifier struct {
	PurchaseID string `mapstructure:"purchase_id"`
}

func newPurchaseVerifier(ctx context.Context, data entity.Map) (*purchaseVerifier, error) {
	verifier := purchaseVerifier{}
	if err := mapstructure.Decode(map[string]any(data), &verifier); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode map to struct: %v", err)
		return nil, errorx.Unknown
	}

	return &verifier, nil
}

func (v *purchaseVerifier) Statement() string {
	return "Make a purchase during the event"
}

func (v *purchaseVerifier) Verify(context.Context) (bool, error) {
	return v.PurchaseID != "", nil
}

// Invite condition. Satisfied when at least one invited user is reported.
type inviteVerifier struct {
	InvitedUsers []string `mapstructure:"invited_users"`
}

func newInviteVerifier(ctx context.Context, data entity.Map) (*inviteVerifier, error) {
	verifier := inviteVerifier{}
	if err := mapstructure.Decode(map[string]any(data), &verifier); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode map to struct: %v", err)
		return nil, errorx.Unknown
	}

	return &verifier, nil
}

func (v *inviteVerifier) Statement() string {
	return "Invite at least one friend during the event"
}

func (v *inviteVerifier) Verify(context.Context) (bool, error) {
	return len(v.InvitedUsers) > 0, nil
}

// Unsupported conditions (CUSTOM and anything unrecognized) never pass.
type unsupportedVerifier struct {
	conditionType entity.ConditionType
}

func newUnsupportedVerifier(conditionType entity.ConditionType) *unsupportedVerifier {
	return &unsupportedVerifier{conditionType: conditionType}
}

func (v *unsupportedVerifier) Statement() string {
	return "This condition cannot be verified automatically"
}

func (v *unsupportedVerifier) Verify(context.Context) (bool, error) {
	return false, nil
}
