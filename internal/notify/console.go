package notify

import (
	"context"
	"log/slog"
)

// ConsoleSender logs notifications instead of delivering them. Used in dev
// and in tests when no SMTP credentials are configured.
type ConsoleSender struct{}

func (ConsoleSender) Send(ctx context.Context, kind Kind, to string, data map[string]string) error {
	subject, _, err := Render(kind, data)
	if err != nil {
		return err
	}
	slog.Info("notification (console)", "kind", string(kind), "to", to, "subject", subject)
	return nil
}
