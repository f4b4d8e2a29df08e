package billing

import (
	"strconv"
	"strings"

	"quotes-backend/internal/storage"
)

const (
	BillingHourly = "hourly"
	BillingDaily  = "daily"
)

// A single shift longer than this many hours is billed as two calendar
// days in hourly mode.
const additionalDayThresholdHours = 16.0

// Breakdown is the derived view of one work day under the active
// billing config.
type Breakdown struct {
	TotalHours    float64 `json:"total_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	LineTotal     float64 `json:"line_total"`
	BillingType   string  `json:"billing_type"`

	// Hourly mode only.
	OvertimeRate  float64 `json:"overtime_rate,omitempty"`
	AdditionalDay bool    `json:"additional_day,omitempty"`

	// Daily mode only.
	OvertimePay float64 `json:"overtime_pay,omitempty"`
}

// CalculateEntry prices one work entry. The entry's own rate is used in
// hourly mode (it was snapshotted when the day was generated, so later
// edits of the global rate leave existing rows alone).
func CalculateEntry(entry storage.LineItem, cfg storage.BillingConfig) Breakdown {
	totalHours := ElapsedHours(entry.TimeIn, entry.TimeOut)

	regularHours := totalHours
	if regularHours > cfg.RegularCallHours {
		regularHours = cfg.RegularCallHours
	}
	overtimeHours := totalHours - regularHours
	if overtimeHours < 0 {
		overtimeHours = 0
	}

	b := Breakdown{
		TotalHours:    totalHours,
		RegularHours:  regularHours,
		OvertimeHours: overtimeHours,
		BillingType:   cfg.BillingType,
	}

	if cfg.BillingType == BillingDaily {
		b.OvertimePay = overtimeHours * cfg.OTHourlyRate
		b.LineTotal = cfg.DailyRate + b.OvertimePay
		return b
	}

	b.BillingType = BillingHourly
	b.OvertimeRate = entry.Rate * (1 + cfg.OvertimePercentage/100)
	b.LineTotal = regularHours*entry.Rate + overtimeHours*b.OvertimeRate

	// A shift past 16 hours runs into a second calendar day and carries
	// one extra full-day charge.
	if totalHours > additionalDayThresholdHours {
		b.AdditionalDay = true
		b.LineTotal += cfg.RegularCallHours * entry.Rate
	}

	return b
}

// ParseQty reads the leading numeric part of a free-form quantity token,
// so "260m" counts as 260. A token with no numeric prefix, such as
// "set", denotes a single unit and counts as 1.
func ParseQty(qty string) float64 {
	qty = strings.TrimSpace(qty)

	end := 0
	seenDot := false
	for end < len(qty) {
		c := qty[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}

	if end == 0 {
		return 1
	}

	n, err := strconv.ParseFloat(qty[:end], 64)
	if err != nil {
		return 1
	}
	return n
}

// EquipmentTotal derives the row total; it is never edited directly.
func EquipmentTotal(item storage.EquipmentItem) float64 {
	return ParseQty(item.Qty) * item.Price
}
