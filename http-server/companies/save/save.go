package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
)

type CompanySaver interface {
	SaveCompany(ctx context.Context, name, address string) (int64, error)
}

type Request struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type Response struct {
	ID int64 `json:"id"`
}

func SaveCompany(log *slog.Logger, saver CompanySaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.companies.save.SaveCompany"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Name) == "" {
			http.Error(w, "company name is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.SaveCompany(ctx, req.Name, req.Address)
		if err != nil {
			log.Error("failed to save company", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{ID: id})
	}
}
