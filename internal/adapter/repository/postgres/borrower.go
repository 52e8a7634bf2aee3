package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"credit-simplicity-backend/internal/domain/borrower"
)

type BorrowerRepository struct{ db *gorm.DB }

func NewBorrowerRepository(db *gorm.DB) *BorrowerRepository { return &BorrowerRepository{db: db} }

// Upsert inserts, or on an email conflict updates the existing row's profile
// fields (the provider arbitrates concurrent writers, last write wins). The
// stored ID is preserved on conflict, so the row is re-read by email to
// return the canonical record. A re-application carries no auth user id;
// the stored auth link must survive it, so auth_user_id only joins the
// update set when the incoming value is non-empty.
func (r *BorrowerRepository) Upsert(ctx context.Context, b *borrower.Borrower) (*borrower.Borrower, error) {
	cols := []string{
		"name", "phone", "company_name", "industry",
		"years_in_business", "annual_revenue", "updated_at",
	}
	if b.AuthUserID != "" {
		cols = append(cols, "auth_user_id")
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(b).Error
	if err != nil {
		return nil, err
	}
	return r.GetByEmail(ctx, b.Email)
}

func (r *BorrowerRepository) GetByEmail(ctx context.Context, email string) (*borrower.Borrower, error) {
	var out borrower.Borrower
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *BorrowerRepository) GetByAuthUserID(ctx context.Context, authUserID string) (*borrower.Borrower, error) {
	var out borrower.Borrower
	res := r.db.WithContext(ctx).Where("auth_user_id = ?", authUserID).First(&out)
	return &out, res.Error
}
