package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"quotes-backend/internal/service/document"
	"quotes-backend/internal/storage"
)

type QuoteUpdater interface {
	UpdateQuote(ctx context.Context, id int64, q storage.Quote) error
}

type Response struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func UpdateQuote(log *slog.Logger, updater QuoteUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.quotes.update.UpdateQuote"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid quote id", http.StatusBadRequest)
			return
		}

		var req storage.Quote
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

		document.Recalculate(&req)

		if err := updater.UpdateQuote(ctx, id, req); err != nil {
			if errors.Is(err, storage.ErrQuoteNotFound) {
				http.Error(w, "quote not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update quote", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{ID: id, Status: "updated"})
	}
}
