package postgres

import (
	"context"

	"gorm.io/gorm"

	"credit-simplicity-backend/internal/domain/meeting"
)

type MeetingRepository struct{ db *gorm.DB }

func NewMeetingRepository(db *gorm.DB) *MeetingRepository { return &MeetingRepository{db: db} }

func (r *MeetingRepository) ListByLoanID(ctx context.Context, loanID string) ([]meeting.Meeting, error) {
	var out []meeting.Meeting
	res := r.db.WithContext(ctx).
		Where("loan_application_id = ?", loanID).
		Order("scheduled_at ASC").
		Find(&out)
	return out, res.Error
}
