// Package demo holds the fixed sample data served whenever no live backend
// is configured, and the fallback shown when a live read fails. It is not a
// cache: nothing here ever reconciles with real data.
package demo

import (
	"time"

	"credit-simplicity-backend/internal/domain/borrower"
	"credit-simplicity-backend/internal/domain/document"
	"credit-simplicity-backend/internal/domain/loan"
	"credit-simplicity-backend/internal/domain/meeting"
	"credit-simplicity-backend/internal/domain/message"
)

const (
	BorrowerID = "demo-borrower-001"
	LoanID     = "demo-loan-001"
)

func ts(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// Borrower returns the sample applicant shown on every demo portal page.
func Borrower() *borrower.Borrower {
	return &borrower.Borrower{
		ID:              BorrowerID,
		Email:           "demo@example.com",
		Name:            "John Smith",
		Phone:           "(555) 123-4567",
		CompanyName:     "Smith Manufacturing LLC",
		Industry:        "Manufacturing",
		YearsInBusiness: "12",
		AnnualRevenue:   "$2M - $5M",
		CreatedAt:       ts("2024-01-15T10:00:00Z"),
	}
}

func Loan() *loan.Application {
	return &loan.Application{
		ID:              LoanID,
		BorrowerID:      BorrowerID,
		AmountRequested: "500000",
		LoanPurpose:     "Equipment purchase and working capital",
		Status:          loan.StatusNeedsList,
		CreatedAt:       ts("2024-01-15T10:00:00Z"),
		UpdatedAt:       ts("2024-01-20T14:30:00Z"),
	}
}

// Documents returns a needs list mid-way through review, covering every
// display state the portal renders.
func Documents() []document.Document {
	return []document.Document{
		{ID: "1", LoanApplicationID: LoanID, Category: "Tax Returns (3 Years)", Filename: "2023_tax_return.pdf", Status: document.StatusUploaded},
		{ID: "2", LoanApplicationID: LoanID, Category: "Tax Returns (3 Years)", Filename: "2022_tax_return.pdf", Status: document.StatusApproved},
		{ID: "3", LoanApplicationID: LoanID, Category: "Tax Returns (3 Years)", Status: document.StatusNotStarted},
		{ID: "4", LoanApplicationID: LoanID, Category: "Financial Statements", Filename: "balance_sheet_2023.pdf", Status: document.StatusUnderReview},
		{ID: "5", LoanApplicationID: LoanID, Category: "Financial Statements", Status: document.StatusNotStarted},
		{ID: "6", LoanApplicationID: LoanID, Category: "Personal Financial Statement", Status: document.StatusNotStarted},
		{ID: "7", LoanApplicationID: LoanID, Category: "Business Plan", Filename: "business_plan_v3.pdf", Status: document.StatusUploaded},
		{ID: "8", LoanApplicationID: LoanID, Category: "AR/AP Aging Report", Status: document.StatusNotStarted},
		{ID: "9", LoanApplicationID: LoanID, Category: "Debt Schedule", Filename: "debt_schedule.xlsx", Status: document.StatusUploaded},
		{ID: "10", LoanApplicationID: LoanID, Category: "Bank Statements (6 Months)", Status: document.StatusNotStarted},
	}
}

func Meetings() []meeting.Meeting {
	return []meeting.Meeting{
		{ID: "1", LoanApplicationID: LoanID, MeetingType: "Initial Consultation", ScheduledAt: ts("2024-01-18T14:00:00Z"), Status: meeting.StatusCompleted, Notes: "Discussed business history and loan needs. Strong candidate."},
		{ID: "2", LoanApplicationID: LoanID, MeetingType: "Document Review", ScheduledAt: ts("2024-01-25T10:00:00Z"), Status: meeting.StatusScheduled},
	}
}

func Messages() []message.Message {
	return []message.Message{
		{ID: "1", LoanApplicationID: LoanID, FromName: "Credit Simplicity Team", Body: "Welcome! We've received your application and assigned you a dedicated analyst.", CreatedAt: ts("2024-01-15T10:30:00Z")},
		{ID: "2", LoanApplicationID: LoanID, FromName: "Sarah Chen, Analyst", Body: "I've reviewed your initial application. Looking forward to our meeting on the 18th!", CreatedAt: ts("2024-01-16T09:00:00Z")},
		{ID: "3", LoanApplicationID: LoanID, FromName: "Sarah Chen, Analyst", Body: "Great meeting today. I've uploaded your needs list — please start gathering the documents when you can.", CreatedAt: ts("2024-01-18T15:00:00Z")},
	}
}
