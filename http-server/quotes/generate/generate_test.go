package generate

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotes-backend/internal/service/billing"
	"quotes-backend/internal/storage"
)

func postGenerate(t *testing.T, req Request) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/quotes/generate-days", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	GenerateDays(slog.Default()).ServeHTTP(rr, r)
	return rr
}

func TestGenerateDays(t *testing.T) {
	rr := postGenerate(t, Request{
		BillingConfig: storage.BillingConfig{
			BillingType:        billing.BillingHourly,
			HourlyRate:         200,
			OvertimePercentage: 10,
			RegularCallHours:   8,
		},
		DateFrom: "2025-03-01",
		DateTo:   "2025-03-03",
	})

	require.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.LineItems, 3)

	for _, item := range resp.LineItems {
		assert.Equal(t, "08:00", item.TimeIn)
		assert.Equal(t, "18:00", item.TimeOut)
		assert.NotEmpty(t, item.ID)
		// 08:00-18:00 prices as 8 regular + 2 overtime hours.
		assert.InDelta(t, 8*200+2*220, item.LineTotal, 1e-9)
	}
	assert.Equal(t, 3, resp.Totals.EnabledDays)
	assert.InDelta(t, 3*(8*200+2*220), resp.Totals.Subtotal, 1e-9)
}

func TestGenerateDays_InvalidRange(t *testing.T) {
	rr := postGenerate(t, Request{
		BillingConfig: storage.BillingConfig{HourlyRate: 200},
		DateFrom:      "2025-03-05",
		DateTo:        "2025-03-01",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGenerateDays_MissingDates(t *testing.T) {
	rr := postGenerate(t, Request{
		BillingConfig: storage.BillingConfig{HourlyRate: 200},
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
