package loan

import (
	"time"
)

type Status string

const (
	StatusApplied        Status = "applied"
	StatusInitialMeeting Status = "initial_meeting"
	StatusNeedsList      Status = "needs_list"
	StatusUnderReview    Status = "under_review"
	StatusBanksReviewing Status = "banks_reviewing"
	StatusTermSheets     Status = "term_sheets"
	StatusClosing        Status = "closing"
)

// Steps is the fixed status pipeline in display order. The portal's step
// indicator marks the index of the current status and everything before it
// as complete.
var Steps = []struct {
	Key   Status
	Label string
}{
	{StatusApplied, "Applied"},
	{StatusInitialMeeting, "Initial Meeting"},
	{StatusNeedsList, "Needs List"},
	{StatusUnderReview, "Under Review"},
	{StatusBanksReviewing, "Banks Reviewing"},
	{StatusTermSheets, "Term Sheets"},
	{StatusClosing, "Closing"},
}

// StepIndex returns the position of s in the pipeline, or -1 for an
// unknown status.
func StepIndex(s Status) int {
	for i, step := range Steps {
		if step.Key == s {
			return i
		}
	}
	return -1
}

// Application is one funding request tied to a borrower. A borrower may
// hold several; the portal always shows the most recently created one.
type Application struct {
	ID              string    `gorm:"primaryKey;size:32;column:id" json:"id"`
	BorrowerID      string    `gorm:"size:32;index:idx_loan_applications_borrower" json:"borrower_id"`
	AmountRequested string    `gorm:"size:64" json:"amount_requested"`
	LoanPurpose     string    `gorm:"type:text" json:"loan_purpose"`
	Status          Status    `gorm:"size:32;default:'applied'" json:"status"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string { return "loan_applications" }
