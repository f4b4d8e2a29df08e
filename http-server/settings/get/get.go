package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"quotes-backend/internal/storage"
)

type SettingsProvider interface {
	GetSettings(ctx context.Context) (*storage.Settings, error)
}

func GetSettings(log *slog.Logger, provider SettingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.settings.get.GetSettings"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		settings, err := provider.GetSettings(ctx)
		if err != nil {
			log.Error("failed to get settings", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, settings)
	}
}
