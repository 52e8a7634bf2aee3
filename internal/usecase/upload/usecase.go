package upload

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"credit-simplicity-backend/internal/domain/blob"
	"credit-simplicity-backend/internal/domain/document"
)

// ErrNotFound: the document slot does not exist or belongs to another loan.
var ErrNotFound = errors.New("document not found")

type Input struct {
	LoanID     string
	DocumentID string
	BorrowerID string
	FileName   string
	Data       []byte
	// ContentType is informational only; no type/size validation here.
	ContentType string
}

type Result struct {
	Success  bool   `json:"success"`
	Demo     bool   `json:"demo,omitempty"`
	FilePath string `json:"filePath,omitempty"`
}

// Usecase stores one file per invocation and flips the checklist slot to
// uploaded. The blob write lands first; if the row update then fails the
// caller sees a failure even though the blob persists (accepted gap, no
// compensating delete).
type Usecase struct {
	blobs blob.Store
	docs  document.Repository
	demo  bool
}

func NewUsecase(blobs blob.Store, docs document.Repository, demo bool) *Usecase {
	return &Usecase{blobs: blobs, docs: docs, demo: demo}
}

// Path is where the slot's file lives in blob storage. Deterministic per
// slot+filename so re-uploads overwrite.
func Path(borrowerID, loanID, documentID, fileName string) string {
	return fmt.Sprintf("%s/%s/%s_%s", borrowerID, loanID, documentID, fileName)
}

func (u *Usecase) Upload(ctx context.Context, in Input) (*Result, error) {
	if u.demo {
		return &Result{Success: true, Demo: true}, nil
	}

	doc, err := u.docs.GetByID(ctx, in.DocumentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load document: %w", err)
	}
	if doc.LoanApplicationID != in.LoanID {
		return nil, ErrNotFound
	}

	path := Path(in.BorrowerID, in.LoanID, in.DocumentID, in.FileName)
	if err := u.blobs.Put(ctx, path, in.Data, in.ContentType); err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}
	if err := u.docs.MarkUploaded(ctx, in.DocumentID, in.FileName, path, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("update document row: %w", err)
	}
	return &Result{Success: true, FilePath: path}, nil
}
