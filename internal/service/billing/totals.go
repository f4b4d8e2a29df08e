package billing

import "quotes-backend/internal/storage"

// Totals is the aggregate money view of a document. LaborTotal covers
// work entries plus per diem only; it is shown on its own whenever
// equipment is billed alongside labor.
type Totals struct {
	LaborTotal     float64 `json:"labor_total"`
	PerDiemTotal   float64 `json:"per_diem_total"`
	EquipmentTotal float64 `json:"equipment_total"`
	EnabledDays    int     `json:"enabled_days"`
	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"tax_amount"`
	Total          float64 `json:"total"`
}

// CalculateTotals sums the enabled entries, per diem, equipment and the
// ad-hoc expense into subtotal and taxed total. Disabled entries
// ("holiday" days) contribute nothing, not even to the per-diem count,
// but stay in the list so they can be re-enabled.
func CalculateTotals(entries []storage.LineItem, equipment []storage.EquipmentItem, cfg storage.BillingConfig) Totals {
	var t Totals

	for _, entry := range entries {
		if !entry.IsEnabled() {
			continue
		}
		t.EnabledDays++
		t.LaborTotal += CalculateEntry(entry, cfg).LineTotal
	}

	if cfg.PerDiemEnabled {
		t.PerDiemTotal = float64(t.EnabledDays) * cfg.PerDiemRate
		t.LaborTotal += t.PerDiemTotal
	}

	for _, item := range equipment {
		t.EquipmentTotal += EquipmentTotal(item)
	}

	if !cfg.HideLabor {
		t.Subtotal += t.LaborTotal
	}
	if cfg.EquipmentsEnabled {
		t.Subtotal += t.EquipmentTotal
	}
	if cfg.AdditionalExpenseEnabled {
		t.Subtotal += cfg.AdditionalExpenseAmount
	}

	t.TaxAmount = t.Subtotal * cfg.TaxRate / 100
	t.Total = t.Subtotal + t.TaxAmount

	return t
}
