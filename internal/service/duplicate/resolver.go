package duplicate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"quotes-backend/internal/service/billing"
	"quotes-backend/internal/storage"
)

type QuoteIndex interface {
	ListQuoteSummaries(ctx context.Context) ([]storage.QuoteSummary, error)
	NextSequence(ctx context.Context, companyName string) (int, error)
}

// Resolver decides whether a candidate invoice number already belongs
// to a persisted quote. Matching is an exact comparison of normalized
// invoice numbers, never a substring search over display labels.
type Resolver struct {
	storage QuoteIndex
}

func NewResolver(storage QuoteIndex) *Resolver {
	return &Resolver{storage: storage}
}

// Suggestion is a proposed invoice number for a new document. The
// sequence is a hint read from storage, not a reservation: a concurrent
// save in another session can still claim the same number, which the
// save path then catches as a duplicate.
type Suggestion struct {
	InvoiceNumber string `json:"invoice_number"`
	Sequence      int    `json:"sequence"`
	Exists        bool   `json:"exists"`
	ExistingID    int64  `json:"existing_id,omitempty"`
}

// Resolve reports the id of the persisted quote carrying this invoice
// number, if any.
func (r *Resolver) Resolve(ctx context.Context, invoiceNumber string) (int64, bool, error) {
	const op = "service.duplicate.Resolve"

	candidate := normalize(invoiceNumber)
	if candidate == "" {
		return 0, false, nil
	}

	summaries, err := r.storage.ListQuoteSummaries(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", op, err)
	}

	for _, s := range summaries {
		if normalize(s.InvoiceNumber) == candidate {
			return s.ID, true, nil
		}
	}

	return 0, false, nil
}

// Suggest generates the next invoice number for a company and date. The
// sequence and the existing summaries are fetched concurrently; a
// failed sequence lookup degrades to 1 instead of blocking the form.
func (r *Resolver) Suggest(ctx context.Context, companyName string, date time.Time) (Suggestion, error) {
	const op = "service.duplicate.Suggest"

	var (
		sequence  int
		summaries []storage.QuoteSummary
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sequence, err = r.storage.NextSequence(gCtx, companyName)
		if err != nil {
			// Sequence is only a hint; fall back to the first number.
			sequence = 1
		}
		return nil
	})
	g.Go(func() error {
		var err error
		summaries, err = r.storage.ListQuoteSummaries(gCtx)
		if err != nil {
			return fmt.Errorf("summaries: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Suggestion{}, fmt.Errorf("%s: %w", op, err)
	}

	if sequence < 1 {
		sequence = 1
	}

	s := Suggestion{
		InvoiceNumber: billing.InvoiceNumber(companyName, date, sequence),
		Sequence:      sequence,
	}

	candidate := normalize(s.InvoiceNumber)
	for _, summary := range summaries {
		if normalize(summary.InvoiceNumber) == candidate {
			s.Exists = true
			s.ExistingID = summary.ID
			break
		}
	}

	return s, nil
}

func normalize(invoiceNumber string) string {
	return strings.ToUpper(strings.TrimSpace(invoiceNumber))
}
