package meeting

import "context"

type Repository interface {
	// ListByLoanID returns the loan's meetings ordered by scheduled_at ascending.
	ListByLoanID(ctx context.Context, loanID string) ([]Meeting, error)
}
