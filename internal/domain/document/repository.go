package document

import (
	"context"
	"time"
)

type Repository interface {
	CreateBatch(ctx context.Context, docs []Document) error
	GetByID(ctx context.Context, id string) (*Document, error)
	ListByLoanID(ctx context.Context, loanID string) ([]Document, error)
	// MarkUploaded records a stored file against the slot: filename,
	// file_path, status=uploaded, uploaded_at. Last write wins per slot.
	MarkUploaded(ctx context.Context, id, filename, filePath string, at time.Time) error
}
