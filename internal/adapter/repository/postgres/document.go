package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"credit-simplicity-backend/internal/domain/document"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) CreateBatch(ctx context.Context, docs []document.Document) error {
	if len(docs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&docs).Error
}

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*document.Document, error) {
	var out document.Document
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *DocumentRepository) ListByLoanID(ctx context.Context, loanID string) ([]document.Document, error) {
	var out []document.Document
	res := r.db.WithContext(ctx).
		Where("loan_application_id = ?", loanID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *DocumentRepository) MarkUploaded(ctx context.Context, id, filename, filePath string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&document.Document{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"filename":    filename,
			"file_path":   filePath,
			"status":      document.StatusUploaded,
			"uploaded_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
