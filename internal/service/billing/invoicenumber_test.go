package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceNumber(t *testing.T) {
	date := time.Date(2025, time.December, 26, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "007-ACME-DEC-26", InvoiceNumber("Acme Corp", date, 7))
}

func TestInvoiceNumber_ShortNamePadded(t *testing.T) {
	date := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "001-AAXX-JAN-05", InvoiceNumber("A.A.", date, 1))
}

func TestInvoiceNumber_StripsNonLetters(t *testing.T) {
	date := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "012-LIVE-MAR-09", InvoiceNumber("24/7 Live Events", date, 12))
}

// A sequence the storage could not supply falls back to 1.
func TestInvoiceNumber_SequenceFallback(t *testing.T) {
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "001-ACME-JUN-01", InvoiceNumber("Acme", date, 0))
	assert.Equal(t, "001-ACME-JUN-01", InvoiceNumber("Acme", date, -3))
}

func TestInvoiceNumber_EmptyCompany(t *testing.T) {
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "002-XXXX-JUN-01", InvoiceNumber("", date, 2))
}
