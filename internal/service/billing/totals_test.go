package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quotes-backend/internal/storage"
)

func boolPtr(b bool) *bool { return &b }

func twoDays() []storage.LineItem {
	return []storage.LineItem{
		{ID: "d1", TimeIn: "08:00", TimeOut: "16:00", Rate: 200, Enabled: boolPtr(true)}, // 8h regular
		{ID: "d2", TimeIn: "06:00", TimeOut: "17:00", Rate: 200, Enabled: boolPtr(true)}, // 8h + 3h OT
	}
}

func TestCalculateTotals_LaborAndTax(t *testing.T) {
	cfg := hourlyConfig()
	cfg.TaxRate = 5

	totals := CalculateTotals(twoDays(), nil, cfg)

	labor := 8*200.0 + (8*200.0 + 3*220.0)
	assert.Equal(t, 2, totals.EnabledDays)
	assert.InDelta(t, labor, totals.LaborTotal, 1e-9)
	assert.InDelta(t, labor, totals.Subtotal, 1e-9)
	assert.InDelta(t, labor*0.05, totals.TaxAmount, 1e-9)
	assert.InDelta(t, labor*1.05, totals.Total, 1e-9)
}

func TestCalculateTotals_PerDiem(t *testing.T) {
	cfg := hourlyConfig()
	cfg.PerDiemEnabled = true
	cfg.PerDiemRate = 100

	totals := CalculateTotals(twoDays(), nil, cfg)

	assert.InDelta(t, 200, totals.PerDiemTotal, 1e-9)
	labor := 8*200.0 + (8*200.0 + 3*220.0) + 200.0
	assert.InDelta(t, labor, totals.LaborTotal, 1e-9)
}

// Disabled entries drop out of pay and per-diem count but stay listed.
func TestCalculateTotals_DisabledEntry(t *testing.T) {
	cfg := hourlyConfig()
	cfg.PerDiemEnabled = true
	cfg.PerDiemRate = 100

	entries := twoDays()
	entries[1].Enabled = boolPtr(false)

	totals := CalculateTotals(entries, nil, cfg)

	assert.Equal(t, 1, totals.EnabledDays)
	assert.InDelta(t, 100, totals.PerDiemTotal, 1e-9)
	assert.InDelta(t, 8*200.0+100, totals.LaborTotal, 1e-9)
}

// A missing enabled flag counts as enabled for rows persisted before
// the holiday toggle existed.
func TestCalculateTotals_NilEnabled(t *testing.T) {
	entries := []storage.LineItem{{ID: "d1", TimeIn: "08:00", TimeOut: "16:00", Rate: 200}}

	totals := CalculateTotals(entries, nil, hourlyConfig())

	assert.Equal(t, 1, totals.EnabledDays)
	assert.InDelta(t, 1600, totals.Subtotal, 1e-9)
}

func TestCalculateTotals_EquipmentAndExpense(t *testing.T) {
	cfg := hourlyConfig()
	cfg.EquipmentsEnabled = true
	cfg.AdditionalExpenseEnabled = true
	cfg.AdditionalExpenseAmount = 500

	equipment := []storage.EquipmentItem{
		{ID: "e1", Qty: "260m", Price: 5},
		{ID: "e2", Qty: "set", Price: 50},
	}

	totals := CalculateTotals(twoDays(), equipment, cfg)

	labor := 8*200.0 + (8*200.0 + 3*220.0)
	assert.InDelta(t, 1350, totals.EquipmentTotal, 1e-9)
	assert.InDelta(t, labor+1350+500, totals.Subtotal, 1e-9)
	assert.InDelta(t, labor, totals.LaborTotal, 1e-9)
}

func TestCalculateTotals_HideLabor(t *testing.T) {
	cfg := hourlyConfig()
	cfg.HideLabor = true
	cfg.EquipmentsEnabled = true

	equipment := []storage.EquipmentItem{{ID: "e1", Qty: "2", Price: 100}}

	totals := CalculateTotals(twoDays(), equipment, cfg)

	// Labor is still derivable for display even when excluded.
	assert.Greater(t, totals.LaborTotal, 0.0)
	assert.InDelta(t, 200, totals.Subtotal, 1e-9)
}

// Equipment rows only count once the equipment section is switched on.
func TestCalculateTotals_EquipmentDisabled(t *testing.T) {
	equipment := []storage.EquipmentItem{{ID: "e1", Qty: "2", Price: 100}}

	totals := CalculateTotals(nil, equipment, hourlyConfig())

	assert.InDelta(t, 200, totals.EquipmentTotal, 1e-9)
	assert.InDelta(t, 0, totals.Subtotal, 1e-9)
}
