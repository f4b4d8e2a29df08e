package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"quotes-backend/internal/service/document"
	"quotes-backend/internal/storage"
)

type QuoteProvider interface {
	GetQuote(ctx context.Context, id int64) (*storage.Quote, error)
	ListQuoteSummaries(ctx context.Context) ([]storage.QuoteSummary, error)
}

func GetQuotes(log *slog.Logger, provider QuoteProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.quotes.get.GetQuotes"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		summaries, err := provider.ListQuoteSummaries(ctx)
		if err != nil {
			log.Error("failed to list quotes", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if summaries == nil {
			summaries = []storage.QuoteSummary{}
		}

		render.JSON(w, r, summaries)
	}
}

// GetQuote loads one quote and re-derives all breakdowns and totals
// from the persisted raw fields, so a reloaded document reproduces its
// numbers instead of trusting cached ones.
func GetQuote(log *slog.Logger, provider QuoteProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.quotes.get.GetQuote"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid quote id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		quote, err := provider.GetQuote(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrQuoteNotFound) {
				http.Error(w, "quote not found", http.StatusNotFound)
				return
			}
			log.Error("failed to get quote", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		document.Recalculate(quote)

		render.JSON(w, r, quote)
	}
}
