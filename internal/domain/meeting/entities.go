package meeting

import (
	"time"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
)

// Meeting rows are written by the scheduling back office; this service only
// reads them for the portal.
type Meeting struct {
	ID                string    `gorm:"primaryKey;size:32;column:id" json:"id"`
	LoanApplicationID string    `gorm:"size:32;index:idx_meetings_loan" json:"loan_application_id"`
	MeetingType       string    `gorm:"size:128" json:"meeting_type"`
	ScheduledAt       time.Time `json:"scheduled_at"`
	Status            Status    `gorm:"size:32;default:'scheduled'" json:"status"`
	Notes             string    `gorm:"type:text" json:"notes"`
}

func (Meeting) TableName() string { return "meetings" }
