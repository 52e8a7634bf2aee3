package loan

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	// LatestByBorrowerID returns the most recently created application for
	// the borrower, or gorm.ErrRecordNotFound when there is none.
	LatestByBorrowerID(ctx context.Context, borrowerID string) (*Application, error)
}
