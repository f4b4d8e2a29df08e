package delete

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"quotes-backend/internal/storage"
)

type QuoteDeleter interface {
	DeleteQuote(ctx context.Context, id int64) error
}

type Response struct {
	Status string `json:"status"`
}

func DeleteQuote(log *slog.Logger, deleter QuoteDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.quotes.delete.DeleteQuote"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid quote id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteQuote(ctx, id); err != nil {
			if errors.Is(err, storage.ErrQuoteNotFound) {
				http.Error(w, "quote not found", http.StatusNotFound)
				return
			}
			log.Error("failed to delete quote", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "deleted"})
	}
}
