// Package storemock provides function-backed mocks for the repository
// interfaces. Only the methods a test sets are meaningful; unset methods
// return zero values or errNotImplemented.
package storemock

import (
	"context"
	"errors"
	"time"

	"credit-simplicity-backend/internal/domain/borrower"
	"credit-simplicity-backend/internal/domain/document"
	"credit-simplicity-backend/internal/domain/loan"
	"credit-simplicity-backend/internal/domain/meeting"
	"credit-simplicity-backend/internal/domain/message"
)

var errNotImplemented = errors.New("not implemented")

type Borrowers struct {
	UpsertFn          func(ctx context.Context, b *borrower.Borrower) (*borrower.Borrower, error)
	GetByAuthUserIDFn func(ctx context.Context, authUserID string) (*borrower.Borrower, error)
	GetByEmailFn      func(ctx context.Context, email string) (*borrower.Borrower, error)
}

func (m *Borrowers) Upsert(ctx context.Context, b *borrower.Borrower) (*borrower.Borrower, error) {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, b)
	}
	return b, nil
}

func (m *Borrowers) GetByAuthUserID(ctx context.Context, authUserID string) (*borrower.Borrower, error) {
	if m.GetByAuthUserIDFn != nil {
		return m.GetByAuthUserIDFn(ctx, authUserID)
	}
	return nil, errNotImplemented
}

func (m *Borrowers) GetByEmail(ctx context.Context, email string) (*borrower.Borrower, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, errNotImplemented
}

type Loans struct {
	CreateFn             func(ctx context.Context, a *loan.Application) error
	GetByIDFn            func(ctx context.Context, id string) (*loan.Application, error)
	LatestByBorrowerIDFn func(ctx context.Context, borrowerID string) (*loan.Application, error)
}

func (m *Loans) Create(ctx context.Context, a *loan.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Loans) GetByID(ctx context.Context, id string) (*loan.Application, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *Loans) LatestByBorrowerID(ctx context.Context, borrowerID string) (*loan.Application, error) {
	if m.LatestByBorrowerIDFn != nil {
		return m.LatestByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, errNotImplemented
}

type Documents struct {
	CreateBatchFn  func(ctx context.Context, docs []document.Document) error
	GetByIDFn      func(ctx context.Context, id string) (*document.Document, error)
	ListByLoanIDFn func(ctx context.Context, loanID string) ([]document.Document, error)
	MarkUploadedFn func(ctx context.Context, id, filename, filePath string, at time.Time) error
}

func (m *Documents) CreateBatch(ctx context.Context, docs []document.Document) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, docs)
	}
	return nil
}

func (m *Documents) GetByID(ctx context.Context, id string) (*document.Document, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *Documents) ListByLoanID(ctx context.Context, loanID string) ([]document.Document, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Documents) MarkUploaded(ctx context.Context, id, filename, filePath string, at time.Time) error {
	if m.MarkUploadedFn != nil {
		return m.MarkUploadedFn(ctx, id, filename, filePath, at)
	}
	return nil
}

type Meetings struct {
	ListByLoanIDFn func(ctx context.Context, loanID string) ([]meeting.Meeting, error)
}

func (m *Meetings) ListByLoanID(ctx context.Context, loanID string) ([]meeting.Meeting, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

type Messages struct {
	CreateFn       func(ctx context.Context, msg *message.Message) error
	ListByLoanIDFn func(ctx context.Context, loanID string) ([]message.Message, error)
}

func (m *Messages) Create(ctx context.Context, msg *message.Message) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, msg)
	}
	return nil
}

func (m *Messages) ListByLoanID(ctx context.Context, loanID string) ([]message.Message, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}
