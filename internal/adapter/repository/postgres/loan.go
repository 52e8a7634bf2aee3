package postgres

import (
	"context"

	"gorm.io/gorm"

	"credit-simplicity-backend/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, a *loan.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id string) (*loan.Application, error) {
	var out loan.Application
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) LatestByBorrowerID(ctx context.Context, borrowerID string) (*loan.Application, error) {
	var out loan.Application
	res := r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Order("created_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}
