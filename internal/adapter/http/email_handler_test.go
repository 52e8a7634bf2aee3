package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"testing"

	"credit-simplicity-backend/internal/domain/mail"
	"credit-simplicity-backend/internal/testutil/mailermock"
)

func emailPayload() map[string]string {
	return map[string]string{"to": "john@x.com", "subject": "Hello", "html": "<p>hi</p>"}
}

func TestSendEmail_Success(t *testing.T) {
	e := newEchoWithValidator()
	var sent mail.Email
	h := NewEmailHandler(&mailermock.Mailer{
		SendFn: func(ctx context.Context, m mail.Email) (string, error) {
			sent = m
			return "email-1", nil
		},
	})

	rec := postJSON(e, "/api/email", emailPayload(), h.Send)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var res struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &res)
	if !res.Success || res.ID != "email-1" {
		t.Fatalf("res: %+v", res)
	}
	if sent.From != fromAddress || sent.To != "john@x.com" {
		t.Fatalf("sent: %+v", sent)
	}
}

func TestSendEmail_Unconfigured_DemoResult(t *testing.T) {
	e := newEchoWithValidator()
	h := NewEmailHandler(nil)

	rec := postJSON(e, "/api/email", emailPayload(), h.Send)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var res struct {
		Success bool `json:"success"`
		Demo    bool `json:"demo"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &res)
	if !res.Success || !res.Demo {
		t.Fatalf("res: %+v", res)
	}
}

func TestSendEmail_ProviderStatusPassthrough(t *testing.T) {
	e := newEchoWithValidator()
	h := NewEmailHandler(&mailermock.Mailer{
		SendFn: func(ctx context.Context, m mail.Email) (string, error) {
			return "", &mail.ProviderError{StatusCode: stdhttp.StatusUnprocessableEntity, Body: "invalid to address"}
		},
	})

	rec := postJSON(e, "/api/email", emailPayload(), h.Send)
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want provider's 422", rec.Code)
	}
}

func TestSendEmail_MissingFields(t *testing.T) {
	e := newEchoWithValidator()
	h := NewEmailHandler(nil)

	rec := postJSON(e, "/api/email", map[string]string{"to": "john@x.com"}, h.Send)
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
