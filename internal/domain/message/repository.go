package message

import "context"

type Repository interface {
	Create(ctx context.Context, m *Message) error
	// ListByLoanID returns the loan's messages ordered by created_at ascending.
	ListByLoanID(ctx context.Context, loanID string) ([]Message, error)
}
