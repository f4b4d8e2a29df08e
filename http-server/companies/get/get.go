package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"quotes-backend/internal/storage"
)

type CompanyProvider interface {
	ListCompanies(ctx context.Context) ([]storage.Company, error)
}

func GetCompanies(log *slog.Logger, provider CompanyProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.companies.get.GetCompanies"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		companies, err := provider.ListCompanies(ctx)
		if err != nil {
			log.Error("failed to list companies", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if companies == nil {
			companies = []storage.Company{}
		}

		render.JSON(w, r, companies)
	}
}
