package message

import (
	"time"
)

// Message is one portal inbox entry. The intake workflow writes exactly one
// welcome message per new loan; everything else comes from the back office.
type Message struct {
	ID                string    `gorm:"primaryKey;size:32;column:id" json:"id"`
	LoanApplicationID string    `gorm:"size:32;index:idx_messages_loan" json:"loan_application_id"`
	FromName          string    `gorm:"size:255;column:from_name" json:"from_name"`
	Body              string    `gorm:"type:text;column:message" json:"message"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Message) TableName() string { return "messages" }
