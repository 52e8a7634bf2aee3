// Package mailermock is a function-backed mock of mail.Mailer.
package mailermock

import (
	"context"

	"credit-simplicity-backend/internal/domain/mail"
)

type Mailer struct {
	SendFn func(ctx context.Context, m mail.Email) (string, error)
}

func (m *Mailer) Send(ctx context.Context, msg mail.Email) (string, error) {
	if m.SendFn != nil {
		return m.SendFn(ctx, msg)
	}
	return "mock-email-id", nil
}
