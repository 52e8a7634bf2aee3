package mail

import (
	"context"
	"fmt"
)

type Email struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// ProviderError carries the email provider's HTTP status and body so the
// email endpoint can pass them through to the caller.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("email provider returned %d: %s", e.StatusCode, e.Body)
}

// Mailer sends one transactional email and returns the provider's message id.
type Mailer interface {
	Send(ctx context.Context, m Email) (id string, err error)
}
