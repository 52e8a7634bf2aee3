package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"credit-simplicity-backend/internal/domain/mail"
)

const fromAddress = "Credit Simplicity <noreply@creditsimplicity.com>"

// EmailHandler fronts the transactional email provider. A nil mailer means
// outbound email is unconfigured; sends then short-circuit to a demo result.
type EmailHandler struct{ mailer mail.Mailer }

func NewEmailHandler(mailer mail.Mailer) *EmailHandler { return &EmailHandler{mailer: mailer} }

type sendEmailReq struct {
	To      string `json:"to" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	HTML    string `json:"html" validate:"required"`
}

// Send handles POST /api/email. Provider rejections pass through with the
// provider's status code; transport failures are a plain 500.
func (h *EmailHandler) Send(c echo.Context) error {
	var req sendEmailReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields", Details: ToFieldErrors(err)})
	}

	if h.mailer == nil {
		return c.JSON(http.StatusOK, map[string]any{
			"success": true, "demo": true, "message": "Email skipped (no API key)",
		})
	}

	id, err := h.mailer.Send(c.Request().Context(), mail.Email{
		From:    fromAddress,
		To:      req.To,
		Subject: req.Subject,
		HTML:    req.HTML,
	})
	if err != nil {
		var pe *mail.ProviderError
		if errors.As(err, &pe) {
			return c.JSON(pe.StatusCode, ErrorResponse{Error: pe.Body})
		}
		log.Printf("email: send failed: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to send email"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "id": id})
}
