package http

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"credit-simplicity-backend/internal/usecase/upload"
)

type UploadHandler struct{ uc *upload.Usecase }

func NewUploadHandler(uc *upload.Usecase) *UploadHandler { return &UploadHandler{uc: uc} }

// Upload handles POST /api/portal/loans/:loan_id/documents/:document_id with
// a multipart body: one "file" part and a "borrower_id" field. Exactly one
// file per invocation; size/type limits are the client's concern.
func (h *UploadHandler) Upload(c echo.Context) error {
	loanID := c.Param("loan_id")
	documentID := c.Param("document_id")
	borrowerID := c.FormValue("borrower_id")
	if loanID == "" || documentID == "" || borrowerID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan, document or borrower id"})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing file"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable file"})
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable file"})
	}

	res, err := h.uc.Upload(c.Request().Context(), upload.Input{
		LoanID:      loanID,
		DocumentID:  documentID,
		BorrowerID:  borrowerID,
		FileName:    fh.Filename,
		Data:        data,
		ContentType: fh.Header.Get("Content-Type"),
	})
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, res)
	case errors.Is(err, upload.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "document not found"})
	default:
		log.Printf("upload: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store document"})
	}
}
