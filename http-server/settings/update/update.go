package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"quotes-backend/internal/storage"
)

type SettingsUpdater interface {
	UpdateSettings(ctx context.Context, hourlyRate float64) (*storage.Settings, error)
}

type Request struct {
	HourlyRate float64 `json:"hourly_rate"`
}

func UpdateSettings(log *slog.Logger, updater SettingsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.settings.update.UpdateSettings"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		if req.HourlyRate < 0 {
			http.Error(w, "hourly rate must not be negative", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		settings, err := updater.UpdateSettings(ctx, req.HourlyRate)
		if err != nil {
			log.Error("failed to update settings", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, settings)
	}
}
