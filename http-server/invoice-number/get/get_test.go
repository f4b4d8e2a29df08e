package get

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quotes-backend/internal/service/duplicate"
)

type MockNumberSuggester struct {
	mock.Mock
}

func (m *MockNumberSuggester) Suggest(ctx context.Context, companyName string, date time.Time) (duplicate.Suggestion, error) {
	args := m.Called(ctx, companyName, date)
	return args.Get(0).(duplicate.Suggestion), args.Error(1)
}

func TestGetInvoiceNumber(t *testing.T) {
	mockSuggester := new(MockNumberSuggester)
	date := time.Date(2025, time.December, 26, 0, 0, 0, 0, time.UTC)
	mockSuggester.On("Suggest", mock.Anything, "Acme Corp", date).Return(duplicate.Suggestion{
		InvoiceNumber: "007-ACME-DEC-26",
		Sequence:      7,
	}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/invoice-number?company=Acme+Corp&date=2025-12-26", nil)
	rr := httptest.NewRecorder()
	GetInvoiceNumber(slog.Default(), mockSuggester).ServeHTTP(rr, r)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp duplicate.Suggestion
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "007-ACME-DEC-26", resp.InvoiceNumber)
	assert.Equal(t, 7, resp.Sequence)
	assert.False(t, resp.Exists)
}

func TestGetInvoiceNumber_MissingCompany(t *testing.T) {
	mockSuggester := new(MockNumberSuggester)

	r := httptest.NewRequest(http.MethodGet, "/api/invoice-number", nil)
	rr := httptest.NewRecorder()
	GetInvoiceNumber(slog.Default(), mockSuggester).ServeHTTP(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockSuggester.AssertNotCalled(t, "Suggest", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetInvoiceNumber_BadDate(t *testing.T) {
	mockSuggester := new(MockNumberSuggester)

	r := httptest.NewRequest(http.MethodGet, "/api/invoice-number?company=Acme&date=26-12-2025", nil)
	rr := httptest.NewRecorder()
	GetInvoiceNumber(slog.Default(), mockSuggester).ServeHTTP(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetInvoiceNumber_Error(t *testing.T) {
	mockSuggester := new(MockNumberSuggester)
	mockSuggester.On("Suggest", mock.Anything, "Acme", mock.Anything).
		Return(duplicate.Suggestion{}, errors.New("db down"))

	r := httptest.NewRequest(http.MethodGet, "/api/invoice-number?company=Acme", nil)
	rr := httptest.NewRecorder()
	GetInvoiceNumber(slog.Default(), mockSuggester).ServeHTTP(rr, r)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
