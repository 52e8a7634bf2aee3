package document

import (
	"time"
)

type Status string

const (
	StatusNotStarted  Status = "not_started"
	StatusUploaded    Status = "uploaded"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
)

// DefaultCategories is the needs list seeded for every new loan, one row per
// entry, all not_started. Categories repeat where several files are expected
// (three years of tax returns, two financial statements).
var DefaultCategories = []string{
	"Tax Returns (3 Years)",
	"Tax Returns (3 Years)",
	"Tax Returns (3 Years)",
	"Financial Statements",
	"Financial Statements",
	"Personal Financial Statement",
	"Business Plan",
	"AR/AP Aging Report",
	"Debt Schedule",
	"Bank Statements (6 Months)",
}

// Document is one slot on a loan's needs list. Filename/FilePath/UploadedAt
// stay empty until the borrower uploads a file; review states are set by the
// back office.
type Document struct {
	ID                string     `gorm:"primaryKey;size:32;column:id" json:"id"`
	LoanApplicationID string     `gorm:"size:32;index:idx_documents_loan" json:"loan_application_id"`
	Category          string     `gorm:"size:128" json:"category"`
	Filename          string     `gorm:"size:255" json:"filename"`
	FilePath          string     `gorm:"size:512" json:"file_path"`
	Status            Status     `gorm:"size:32;default:'not_started'" json:"status"`
	UploadedAt        *time.Time `json:"uploaded_at,omitempty"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"-"`
}

func (Document) TableName() string { return "documents" }
