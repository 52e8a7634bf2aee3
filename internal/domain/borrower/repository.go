package borrower

import "context"

type Repository interface {
	// Upsert inserts the borrower or, when the email already exists, updates
	// the existing row's profile fields. Returns the canonical row (the one
	// actually stored, carrying its original ID on conflict).
	Upsert(ctx context.Context, b *Borrower) (*Borrower, error)
	GetByAuthUserID(ctx context.Context, authUserID string) (*Borrower, error)
	GetByEmail(ctx context.Context, email string) (*Borrower, error)
}
