package postgres

import (
	"context"

	"gorm.io/gorm"

	"credit-simplicity-backend/internal/domain/message"
)

type MessageRepository struct{ db *gorm.DB }

func NewMessageRepository(db *gorm.DB) *MessageRepository { return &MessageRepository{db: db} }

func (r *MessageRepository) Create(ctx context.Context, m *message.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MessageRepository) ListByLoanID(ctx context.Context, loanID string) ([]message.Message, error) {
	var out []message.Message
	res := r.db.WithContext(ctx).
		Where("loan_application_id = ?", loanID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
