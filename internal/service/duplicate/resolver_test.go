package duplicate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"quotes-backend/internal/storage"
)

type MockQuoteIndex struct {
	mock.Mock
}

func (m *MockQuoteIndex) ListQuoteSummaries(ctx context.Context) ([]storage.QuoteSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.QuoteSummary), args.Error(1)
}

func (m *MockQuoteIndex) NextSequence(ctx context.Context, companyName string) (int, error) {
	args := m.Called(ctx, companyName)
	return args.Int(0), args.Error(1)
}

func summaries() []storage.QuoteSummary {
	return []storage.QuoteSummary{
		{ID: 11, InvoiceNumber: "006-ACME-NOV-02", ClientCompany: "Acme Corp"},
		{ID: 12, InvoiceNumber: "001-LIVE-DEC-10", ClientCompany: "Live Events"},
	}
}

func TestResolve_Match(t *testing.T) {
	mockIndex := new(MockQuoteIndex)
	mockIndex.On("ListQuoteSummaries", mock.Anything).Return(summaries(), nil)

	resolver := NewResolver(mockIndex)

	id, found, err := resolver.Resolve(context.Background(), "006-ACME-NOV-02")

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(11), id)
}

// Matching is exact comparison of normalized numbers, never substring.
func TestResolve_NoSubstringMatch(t *testing.T) {
	mockIndex := new(MockQuoteIndex)
	mockIndex.On("ListQuoteSummaries", mock.Anything).Return(summaries(), nil)

	resolver := NewResolver(mockIndex)

	_, found, err := resolver.Resolve(context.Background(), "06-ACME-NOV-02")

	assert.NoError(t, err)
	assert.False(t, found)
}

func TestResolve_CaseAndSpaceInsensitive(t *testing.T) {
	mockIndex := new(MockQuoteIndex)
	mockIndex.On("ListQuoteSummaries", mock.Anything).Return(summaries(), nil)

	resolver := NewResolver(mockIndex)

	id, found, err := resolver.Resolve(context.Background(), " 006-acme-nov-02 ")

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(11), id)
}

func TestResolve_EmptyNumber(t *testing.T) {
	mockIndex := new(MockQuoteIndex)

	resolver := NewResolver(mockIndex)

	_, found, err := resolver.Resolve(context.Background(), "  ")

	assert.NoError(t, err)
	assert.False(t, found)
	mockIndex.AssertNotCalled(t, "ListQuoteSummaries", mock.Anything)
}

func TestResolve_StorageError(t *testing.T) {
	mockIndex := new(MockQuoteIndex)
	mockIndex.On("ListQuoteSummaries", mock.Anything).Return(nil, errors.New("db down"))

	resolver := NewResolver(mockIndex)

	_, _, err := resolver.Resolve(context.Background(), "006-ACME-NOV-02")

	assert.Error(t, err)
}

func TestSuggest(t *testing.T) {
	mockIndex := new(MockQuoteIndex)
	mockIndex.On("NextSequence", mock.Anything, "Acme Corp").Return(7, nil)
	mockIndex.On("ListQuoteSummaries", mock.Anything).Return(summaries(), nil)

	resolver := NewResolver(mockIndex)
	date := time.Date(2025, time.December, 26, 0, 0, 0, 0, time.UTC)

	s, err := resolver.Suggest(context.Background(), "Acme Corp", date)

	assert.NoError(t, err)
	assert.Equal(t, "007-ACME-DEC-26", s.InvoiceNumber)
	assert.Equal(t, 7, s.Sequence)
	assert.False(t, s.Exists)
}

// A failed sequence lookup degrades to 1 instead of blocking the form.
func TestSuggest_SequenceFallback(t *testing.T) {
	mockIndex := new(MockQuoteIndex)
	mockIndex.On("NextSequence", mock.Anything, "Acme Corp").Return(0, errors.New("db down"))
	mockIndex.On("ListQuoteSummaries", mock.Anything).Return(summaries(), nil)

	resolver := NewResolver(mockIndex)
	date := time.Date(2025, time.December, 26, 0, 0, 0, 0, time.UTC)

	s, err := resolver.Suggest(context.Background(), "Acme Corp", date)

	assert.NoError(t, err)
	assert.Equal(t, 1, s.Sequence)
	assert.Equal(t, "001-ACME-DEC-26", s.InvoiceNumber)
}

func TestSuggest_ExistingNumberFlagged(t *testing.T) {
	mockIndex := new(MockQuoteIndex)
	mockIndex.On("NextSequence", mock.Anything, "Acme Corp").Return(6, nil)
	mockIndex.On("ListQuoteSummaries", mock.Anything).Return(summaries(), nil)

	resolver := NewResolver(mockIndex)
	date := time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC)

	s, err := resolver.Suggest(context.Background(), "Acme Corp", date)

	assert.NoError(t, err)
	assert.Equal(t, "006-ACME-NOV-02", s.InvoiceNumber)
	assert.True(t, s.Exists)
	assert.Equal(t, int64(11), s.ExistingID)
}
