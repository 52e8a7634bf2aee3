package identity

import (
	"context"
	"errors"
)

// ErrAlreadyRegistered reports that the email already has an account. The
// intake workflow treats it as success (idempotent re-application).
var ErrAlreadyRegistered = errors.New("email already registered")

// Metadata is the profile attached to a newly provisioned account.
type Metadata struct {
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
}

// Store is the identity-provider capability consumed by the workflows:
// provision unconfirmed accounts, mint account-setup invite links, and
// resolve portal session tokens to a user id.
type Store interface {
	CreateAccount(ctx context.Context, email string, meta Metadata) (userID string, err error)
	GenerateInviteLink(ctx context.Context, email, redirectTo string) (string, error)
	UserIDFromToken(ctx context.Context, accessToken string) (string, error)
}
