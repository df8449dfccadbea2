package notify

import "context"

type Kind string

const (
	KindWelcome         Kind = "welcome"
	KindPasswordReset   Kind = "password_reset"
	KindPasswordChanged Kind = "password_changed"
)

// Sender delivers a templated notification to one recipient. Callers treat
// delivery as fire-and-forget; a returned error is logged, never propagated
// into the request that triggered it.
type Sender interface {
	Send(ctx context.Context, kind Kind, to string, data map[string]string) error
}
