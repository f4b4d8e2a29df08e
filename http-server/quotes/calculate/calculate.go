package calculate

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"quotes-backend/internal/service/billing"
	"quotes-backend/internal/service/document"
	"quotes-backend/internal/storage"
)

type Request struct {
	storage.BillingConfig
	LineItems      []storage.LineItem      `json:"line_items"`
	EquipmentItems []storage.EquipmentItem `json:"equipment_items"`
}

type Response struct {
	LineItems      []storage.LineItem      `json:"line_items"`
	EquipmentItems []storage.EquipmentItem `json:"equipment_items"`
	Totals         billing.Totals          `json:"totals"`
}

// CalculateQuote derives the per-row breakdowns and totals for a draft
// document without touching storage. The editor calls it after every
// mutation and re-reads all values from the response.
func CalculateQuote(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		doc := document.New(req.BillingConfig)
		doc.Load(req.LineItems, req.EquipmentItems)

		render.JSON(w, r, Response{
			LineItems:      doc.Entries(),
			EquipmentItems: doc.Equipment(),
			Totals:         doc.Totals(),
		})
	}
}
