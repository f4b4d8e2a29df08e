package billing

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

const companyCodeLen = 4

// InvoiceNumber formats a document identifier as SSS-CCCC-MMM-DD:
// zero-padded sequence, 4-letter company code, month abbreviation and
// day of month, e.g. 007-ACME-DEC-26. The sequence comes from storage
// as a hint and falls back to 1 when it could not be supplied.
func InvoiceNumber(companyName string, date time.Time, sequence int) string {
	if sequence < 1 {
		sequence = 1
	}

	return fmt.Sprintf("%03d-%s-%s-%02d",
		sequence,
		companyCode(companyName),
		strings.ToUpper(date.Format("Jan")),
		date.Day(),
	)
}

// companyCode keeps the first 4 letters of the name, upper-cased, and
// right-pads short names with X so the code stays fixed-width.
func companyCode(name string) string {
	code := make([]rune, 0, companyCodeLen)
	for _, r := range name {
		if !unicode.IsLetter(r) {
			continue
		}
		code = append(code, unicode.ToUpper(r))
		if len(code) == companyCodeLen {
			break
		}
	}

	for len(code) < companyCodeLen {
		code = append(code, 'X')
	}

	return string(code)
}
