package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"quotes-backend/internal/service/duplicate"
)

type NumberSuggester interface {
	Suggest(ctx context.Context, companyName string, date time.Time) (duplicate.Suggestion, error)
}

// GetInvoiceNumber proposes the next invoice number for a company and
// document date, flagging whether it already identifies a saved quote.
func GetInvoiceNumber(log *slog.Logger, suggester NumberSuggester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invoice-number.get.GetInvoiceNumber"

		company := r.URL.Query().Get("company")
		if company == "" {
			http.Error(w, "company is required", http.StatusBadRequest)
			return
		}

		date := time.Now()
		if dateStr := r.URL.Query().Get("date"); dateStr != "" {
			parsed, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				http.Error(w, "invalid date", http.StatusBadRequest)
				return
			}
			date = parsed
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		suggestion, err := suggester.Suggest(ctx, company, date)
		if err != nil {
			log.Error("failed to suggest invoice number", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, suggestion)
	}
}
