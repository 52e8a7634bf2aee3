package intake

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"credit-simplicity-backend/internal/domain/borrower"
	"credit-simplicity-backend/internal/domain/document"
	"credit-simplicity-backend/internal/domain/identity"
	"credit-simplicity-backend/internal/domain/loan"
	"credit-simplicity-backend/internal/domain/mail"
	"credit-simplicity-backend/internal/domain/message"
	"credit-simplicity-backend/pkg/id"
)

const (
	teamName    = "Credit Simplicity Team"
	mailFrom    = "Credit Simplicity <noreply@creditsimplicity.com>"
	mailSubject = "Set Up Your Account — Credit Simplicity"
)

// Usecase runs the application-intake workflow: a fixed sequence of writes
// where the first three are required and the rest are best-effort. It is
// deliberately not transactional; a loan can outlive a failed checklist or
// welcome message (repaired out of band).
type Usecase struct {
	identity  identity.Store
	borrowers borrower.Repository
	loans     loan.Repository
	documents document.Repository
	messages  message.Repository
	mailer    mail.Mailer // nil when outbound email is unconfigured

	setupURL string
	demo     bool
}

func NewUsecase(
	ids identity.Store,
	borrowers borrower.Repository,
	loans loan.Repository,
	documents document.Repository,
	messages message.Repository,
	mailer mail.Mailer,
	setupURL string,
	demo bool,
) *Usecase {
	return &Usecase{
		identity:  ids,
		borrowers: borrowers,
		loans:     loans,
		documents: documents,
		messages:  messages,
		mailer:    mailer,
		setupURL:  setupURL,
		demo:      demo,
	}
}

type stepKind int

const (
	required stepKind = iota
	bestEffort
)

// step makes the abort-vs-continue policy visible as data: a required step's
// error stops the workflow, a best-effort step's error is logged and dropped.
type step struct {
	name string
	kind stepKind
	run  func(ctx context.Context) error
}

// workflow is the per-submission state threaded through the steps.
type workflow struct {
	u  *Usecase
	in SubmitInput

	authUserID string
	borrower   *borrower.Borrower
	loan       *loan.Application
	inviteURL  string
}

// Submit validates the payload and executes the write sequence. The returned
// error is one of the sentinels in errors.go (wrapped with detail).
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*Result, error) {
	if in.Name == "" || in.Email == "" || in.AmountRequested == "" {
		return nil, ErrMissingFields
	}
	if u.demo {
		return &Result{Success: true, Demo: true, Message: "Application received (demo mode)"}, nil
	}

	w := &workflow{u: u, in: in, inviteURL: u.setupURL}
	steps := []step{
		{"create account", required, w.createAccount},
		{"upsert borrower", required, w.upsertBorrower},
		{"create loan", required, w.createLoan},
		{"seed checklist", bestEffort, w.seedChecklist},
		{"welcome message", bestEffort, w.createWelcomeMessage},
		{"generate invite link", bestEffort, w.generateInviteLink},
		{"send confirmation email", bestEffort, w.sendConfirmationEmail},
	}
	for _, s := range steps {
		if err := s.run(ctx); err != nil {
			if s.kind == required {
				return nil, err
			}
			log.Printf("intake: %s failed (non-fatal): %v", s.name, err)
		}
	}
	return &Result{Success: true, LoanID: w.loan.ID, BorrowerID: w.borrower.ID}, nil
}

func (w *workflow) createAccount(ctx context.Context) error {
	userID, err := w.u.identity.CreateAccount(ctx, w.in.Email, identity.Metadata{
		Name:        w.in.Name,
		CompanyName: w.in.CompanyName,
	})
	switch {
	case err == nil:
		w.authUserID = userID
		return nil
	case errors.Is(err, identity.ErrAlreadyRegistered):
		// Re-application from an existing account holder. No new identity,
		// and the later invite step falls back to the static setup URL.
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrAccountCreation, err)
	}
}

func (w *workflow) upsertBorrower(ctx context.Context) error {
	b, err := w.u.borrowers.Upsert(ctx, &borrower.Borrower{
		ID:              id.NewID32(),
		Email:           w.in.Email,
		Name:            w.in.Name,
		Phone:           w.in.Phone,
		CompanyName:     w.in.CompanyName,
		Industry:        w.in.Industry,
		YearsInBusiness: w.in.YearsInBusiness,
		AnnualRevenue:   w.in.AnnualRevenue,
		AuthUserID:      w.authUserID,
	})
	if err != nil {
		return fmt.Errorf("%w: save borrower: %v", ErrPersistence, err)
	}
	w.borrower = b
	return nil
}

func (w *workflow) createLoan(ctx context.Context) error {
	l := &loan.Application{
		ID:              id.NewID32(),
		BorrowerID:      w.borrower.ID,
		AmountRequested: w.in.AmountRequested,
		LoanPurpose:     w.in.LoanPurpose,
		Status:          loan.StatusApplied,
	}
	if err := w.u.loans.Create(ctx, l); err != nil {
		return fmt.Errorf("%w: create loan application: %v", ErrPersistence, err)
	}
	w.loan = l
	return nil
}

func (w *workflow) seedChecklist(ctx context.Context) error {
	docs := make([]document.Document, 0, len(document.DefaultCategories))
	for _, category := range document.DefaultCategories {
		docs = append(docs, document.Document{
			ID:                id.NewID32(),
			LoanApplicationID: w.loan.ID,
			Category:          category,
			Status:            document.StatusNotStarted,
		})
	}
	return w.u.documents.CreateBatch(ctx, docs)
}

func (w *workflow) createWelcomeMessage(ctx context.Context) error {
	return w.u.messages.Create(ctx, &message.Message{
		ID:                id.NewID32(),
		LoanApplicationID: w.loan.ID,
		FromName:          teamName,
		Body: fmt.Sprintf(
			"Welcome, %s! We've received your application and will assign you a dedicated analyst shortly.",
			firstName(w.in.Name),
		),
	})
}

func (w *workflow) generateInviteLink(ctx context.Context) error {
	if w.authUserID == "" {
		return nil
	}
	link, err := w.u.identity.GenerateInviteLink(ctx, w.in.Email, w.u.setupURL)
	if err != nil {
		return err
	}
	if link != "" {
		w.inviteURL = link
	}
	return nil
}

func (w *workflow) sendConfirmationEmail(ctx context.Context) error {
	if w.u.mailer == nil {
		return nil
	}
	_, err := w.u.mailer.Send(ctx, mail.Email{
		From:    mailFrom,
		To:      w.in.Email,
		Subject: mailSubject,
		HTML:    confirmationHTML(firstName(w.in.Name), w.in.AmountRequested, w.inviteURL),
	})
	return err
}

// firstName is the portion of a full name before the first space.
func firstName(name string) string {
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i]
	}
	return name
}

func confirmationHTML(first, amount, inviteURL string) string {
	return fmt.Sprintf(`<h2>Welcome, %s!</h2>
<p>We've received your loan application for %s.</p>
<p>Your dedicated portal is ready. Click the button below to set up your account and start tracking your application progress, upload documents, and communicate with your analyst.</p>
<p style="margin: 24px 0;">
  <a href="%s" style="background: #1e293b; color: white; padding: 12px 24px; text-decoration: none; border-radius: 8px; display: inline-block; font-weight: 500;">Set Up Your Account &rarr;</a>
</p>
<p style="font-size: 14px; color: #666;">If the button doesn't work, copy and paste this link: %s</p>
<p>&mdash; The Credit Simplicity Team</p>`, first, amount, inviteURL, inviteURL)
}
