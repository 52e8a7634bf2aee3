package portal

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"credit-simplicity-backend/internal/demo"
	"credit-simplicity-backend/internal/domain/borrower"
	"credit-simplicity-backend/internal/domain/document"
	"credit-simplicity-backend/internal/domain/loan"
	"credit-simplicity-backend/internal/domain/meeting"
	"credit-simplicity-backend/internal/domain/message"
)

// Snapshot is the aggregated read model behind every portal view: the
// borrower, their most recent loan, and that loan's child collections.
// Consumers never probe for missing fields; absent data is an empty slice
// or nil Loan.
type Snapshot struct {
	Borrower  *borrower.Borrower  `json:"borrower"`
	Loan      *loan.Application   `json:"loan"`
	Documents []document.Document `json:"documents"`
	Meetings  []meeting.Meeting   `json:"meetings"`
	Messages  []message.Message   `json:"messages"`
	IsDemo    bool                `json:"is_demo"`
}

type Usecase struct {
	borrowers borrower.Repository
	loans     loan.Repository
	documents document.Repository
	meetings  meeting.Repository
	messages  message.Repository
	demo      bool
}

func NewUsecase(
	borrowers borrower.Repository,
	loans loan.Repository,
	documents document.Repository,
	meetings meeting.Repository,
	messages message.Repository,
	demo bool,
) *Usecase {
	return &Usecase{
		borrowers: borrowers,
		loans:     loans,
		documents: documents,
		meetings:  meetings,
		messages:  messages,
		demo:      demo,
	}
}

// DemoSnapshot is the fixed sample view served in demo mode and substituted
// whole whenever a live read fails.
func DemoSnapshot() *Snapshot {
	return &Snapshot{
		Borrower:  demo.Borrower(),
		Loan:      demo.Loan(),
		Documents: demo.Documents(),
		Meetings:  demo.Meetings(),
		Messages:  demo.Messages(),
		IsDemo:    true,
	}
}

// LoadSnapshot resolves the portal view for the given identity. A nil return
// means no borrower matches and the caller should redirect to login/apply.
// It never returns an error: any provider failure collapses the whole read
// to the demo snapshot so the portal is never blank or partially real.
func (u *Usecase) LoadSnapshot(ctx context.Context, authUserID string) *Snapshot {
	if u.demo {
		return DemoSnapshot()
	}

	b, err := u.borrowers.GetByAuthUserID(ctx, authUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		log.Printf("portal: borrower lookup failed: %v", err)
		return DemoSnapshot()
	}

	l, err := u.loans.LatestByBorrowerID(ctx, b.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Borrower exists, nothing else does yet.
			return &Snapshot{
				Borrower:  b,
				Documents: []document.Document{},
				Meetings:  []meeting.Meeting{},
				Messages:  []message.Message{},
			}
		}
		log.Printf("portal: loan lookup failed: %v", err)
		return DemoSnapshot()
	}

	// The three child reads are independent and populate disjoint fields;
	// fan out and join before returning.
	snap := &Snapshot{Borrower: b, Loan: l}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		docs, err := u.documents.ListByLoanID(gctx, l.ID)
		if err != nil {
			return err
		}
		snap.Documents = docs
		return nil
	})
	g.Go(func() error {
		ms, err := u.meetings.ListByLoanID(gctx, l.ID)
		if err != nil {
			return err
		}
		snap.Meetings = ms
		return nil
	})
	g.Go(func() error {
		ms, err := u.messages.ListByLoanID(gctx, l.ID)
		if err != nil {
			return err
		}
		snap.Messages = ms
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Printf("portal: snapshot load failed: %v", err)
		return DemoSnapshot()
	}

	if snap.Documents == nil {
		snap.Documents = []document.Document{}
	}
	if snap.Meetings == nil {
		snap.Meetings = []meeting.Meeting{}
	}
	if snap.Messages == nil {
		snap.Messages = []message.Message{}
	}
	return snap
}
