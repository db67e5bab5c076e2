package eventcond

import "context"

// Verifier decides whether a user satisfies an event's participation
// condition. Implementations are pure: they read the decoded verification
// data and answer, they never write anything.
type Verifier interface {
	// Statement describes the condition to end users.
	Statement() string

	// Verify reports whether the condition is satisfied.
	Verify(ctx context.Context) (bool, error)
}
