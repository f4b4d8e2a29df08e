package generate

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"quotes-backend/internal/service/billing"
	"quotes-backend/internal/service/document"
	"quotes-backend/internal/storage"
)

type Request struct {
	storage.BillingConfig
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

type Response struct {
	LineItems []storage.LineItem `json:"line_items"`
	Totals    billing.Totals     `json:"totals"`
}

// GenerateDays builds one default work day per calendar day in the
// requested range, priced under the supplied billing config.
func GenerateDays(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.quotes.generate.GenerateDays"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		doc := document.New(req.BillingConfig)
		if err := doc.GenerateRange(req.DateFrom, req.DateTo); err != nil {
			if errors.Is(err, document.ErrInvalidRange) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error("failed to generate days", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{
			LineItems: doc.Entries(),
			Totals:    doc.Totals(),
		})
	}
}
