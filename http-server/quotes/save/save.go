package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"quotes-backend/internal/service/document"
	"quotes-backend/internal/storage"
)

type QuoteSaver interface {
	SaveQuote(ctx context.Context, q storage.Quote) (int64, error)
	UpdateQuote(ctx context.Context, id int64, q storage.Quote) error
}

type DuplicateResolver interface {
	Resolve(ctx context.Context, invoiceNumber string) (int64, bool, error)
}

type Request struct {
	storage.Quote
	// Overwrite routes a save whose invoice number already exists into
	// an update of that quote instead of failing with a conflict.
	Overwrite bool `json:"overwrite"`
}

type Response struct {
	ID         int64  `json:"id,omitempty"`
	Updated    bool   `json:"updated,omitempty"`
	Error      string `json:"error,omitempty"`
	ExistingID int64  `json:"existing_id,omitempty"`
}

// SaveQuote creates a quote. All derived values are recomputed
// server-side from the raw entries; a duplicate invoice number is
// surfaced as 409 with the existing id so the client can choose
// between overwriting and cancelling.
func SaveQuote(log *slog.Logger, saver QuoteSaver, resolver DuplicateResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.quotes.save.SaveQuote"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ClientCompany) == "" {
			http.Error(w, "client company is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		document.Recalculate(&req.Quote)

		existingID, found, err := resolver.Resolve(ctx, req.InvoiceNumber)
		if err != nil {
			log.Error("failed to check invoice number", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if found && !req.Overwrite {
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, Response{
				Error:      "duplicate invoice number",
				ExistingID: existingID,
			})
			return
		}

		if found {
			if err := saver.UpdateQuote(ctx, existingID, req.Quote); err != nil {
				log.Error("failed to overwrite quote", slog.String("op", op), slog.String("error", err.Error()))
				http.Error(w, "Internal error", http.StatusInternalServerError)
				return
			}
			render.JSON(w, r, Response{ID: existingID, Updated: true})
			return
		}

		id, err := saver.SaveQuote(ctx, req.Quote)
		if err != nil {
			log.Error("failed to save quote", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{ID: id})
	}
}
