package upload

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"credit-simplicity-backend/internal/domain/document"
	"credit-simplicity-backend/internal/testutil/blobmock"
	"credit-simplicity-backend/internal/testutil/storemock"
)

const (
	borrowerID = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	loanID     = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	docID      = "dddddddddddddddddddddddddddddddd"
)

func input() Input {
	return Input{
		LoanID:      loanID,
		DocumentID:  docID,
		BorrowerID:  borrowerID,
		FileName:    "2023_tax_return.pdf",
		Data:        []byte("%PDF-1.7 fake"),
		ContentType: "application/pdf",
	}
}

func slot(status document.Status) *document.Document {
	return &document.Document{ID: docID, LoanApplicationID: loanID, Category: "Tax Returns (3 Years)", Status: status}
}

func TestUpload_Success(t *testing.T) {
	var gotPath string
	var gotData []byte
	blobs := &blobmock.Store{
		PutFn: func(ctx context.Context, path string, data []byte, contentType string) error {
			gotPath, gotData = path, data
			return nil
		},
	}
	var marked struct {
		filename, path string
		at             time.Time
	}
	docs := &storemock.Documents{
		GetByIDFn: func(ctx context.Context, id string) (*document.Document, error) {
			return slot(document.StatusNotStarted), nil
		},
		MarkUploadedFn: func(ctx context.Context, id, filename, filePath string, at time.Time) error {
			marked.filename, marked.path, marked.at = filename, filePath, at
			return nil
		},
	}

	res, err := NewUsecase(blobs, docs, false).Upload(context.Background(), input())
	if err != nil {
		t.Fatalf("Upload err: %v", err)
	}
	wantPath := borrowerID + "/" + loanID + "/" + docID + "_2023_tax_return.pdf"
	if res.FilePath != wantPath || gotPath != wantPath {
		t.Fatalf("path = %q / %q, want %q", res.FilePath, gotPath, wantPath)
	}
	if !bytes.Equal(gotData, []byte("%PDF-1.7 fake")) {
		t.Fatal("blob payload mismatch")
	}
	if marked.filename != "2023_tax_return.pdf" || marked.path != wantPath {
		t.Fatalf("row update: %+v", marked)
	}
	if marked.at.IsZero() {
		t.Fatal("uploaded_at not set")
	}
}

func TestUpload_ReuploadOverwritesSameSlot(t *testing.T) {
	puts := 0
	blobs := &blobmock.Store{
		PutFn: func(ctx context.Context, path string, data []byte, contentType string) error {
			puts++
			return nil
		},
	}
	docs := &storemock.Documents{
		GetByIDFn: func(ctx context.Context, id string) (*document.Document, error) {
			// Second upload sees the slot already uploaded; still allowed.
			return slot(document.StatusUploaded), nil
		},
	}
	uc := NewUsecase(blobs, docs, false)
	for i := 0; i < 2; i++ {
		res, err := uc.Upload(context.Background(), input())
		if err != nil || !res.Success {
			t.Fatalf("upload %d: res=%+v err=%v", i, res, err)
		}
	}
	if puts != 2 {
		t.Fatalf("puts = %d, want 2 (same path, overwritten)", puts)
	}
}

func TestUpload_UnknownSlot(t *testing.T) {
	docs := &storemock.Documents{
		GetByIDFn: func(ctx context.Context, id string) (*document.Document, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	_, err := NewUsecase(&blobmock.Store{}, docs, false).Upload(context.Background(), input())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpload_SlotFromAnotherLoan(t *testing.T) {
	docs := &storemock.Documents{
		GetByIDFn: func(ctx context.Context, id string) (*document.Document, error) {
			d := slot(document.StatusNotStarted)
			d.LoanApplicationID = "other-loan"
			return d, nil
		},
	}
	_, err := NewUsecase(&blobmock.Store{}, docs, false).Upload(context.Background(), input())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpload_BlobFailure(t *testing.T) {
	blobs := &blobmock.Store{
		PutFn: func(ctx context.Context, path string, data []byte, contentType string) error {
			return errors.New("storage 503")
		},
	}
	rowUpdated := false
	docs := &storemock.Documents{
		GetByIDFn: func(ctx context.Context, id string) (*document.Document, error) {
			return slot(document.StatusNotStarted), nil
		},
		MarkUploadedFn: func(ctx context.Context, id, filename, filePath string, at time.Time) error {
			rowUpdated = true
			return nil
		},
	}
	if _, err := NewUsecase(blobs, docs, false).Upload(context.Background(), input()); err == nil {
		t.Fatal("want error on blob failure")
	}
	if rowUpdated {
		t.Fatal("row must not be updated when the blob write fails")
	}
}

func TestUpload_RowUpdateFailure_ReportsFailure(t *testing.T) {
	docs := &storemock.Documents{
		GetByIDFn: func(ctx context.Context, id string) (*document.Document, error) {
			return slot(document.StatusNotStarted), nil
		},
		MarkUploadedFn: func(ctx context.Context, id, filename, filePath string, at time.Time) error {
			return errors.New("update failed")
		},
	}
	// The blob write succeeded; the result must still be a failure.
	if _, err := NewUsecase(&blobmock.Store{}, docs, false).Upload(context.Background(), input()); err == nil {
		t.Fatal("want error when the row update fails after a stored blob")
	}
}

func TestUpload_DemoMode_NoCalls(t *testing.T) {
	res, err := NewUsecase(nil, nil, true).Upload(context.Background(), input())
	if err != nil {
		t.Fatalf("Upload err: %v", err)
	}
	if !res.Success || !res.Demo {
		t.Fatalf("want simulated success, got %+v", res)
	}
}
