// Package identitymock is a function-backed mock of identity.Store.
package identitymock

import (
	"context"
	"errors"

	"credit-simplicity-backend/internal/domain/identity"
)

type Store struct {
	CreateAccountFn      func(ctx context.Context, email string, meta identity.Metadata) (string, error)
	GenerateInviteLinkFn func(ctx context.Context, email, redirectTo string) (string, error)
	UserIDFromTokenFn    func(ctx context.Context, accessToken string) (string, error)
}

func (m *Store) CreateAccount(ctx context.Context, email string, meta identity.Metadata) (string, error) {
	if m.CreateAccountFn != nil {
		return m.CreateAccountFn(ctx, email, meta)
	}
	return "", errors.New("not implemented")
}

func (m *Store) GenerateInviteLink(ctx context.Context, email, redirectTo string) (string, error) {
	if m.GenerateInviteLinkFn != nil {
		return m.GenerateInviteLinkFn(ctx, email, redirectTo)
	}
	return "", nil
}

func (m *Store) UserIDFromToken(ctx context.Context, accessToken string) (string, error) {
	if m.UserIDFromTokenFn != nil {
		return m.UserIDFromTokenFn(ctx, accessToken)
	}
	return "", errors.New("not implemented")
}
