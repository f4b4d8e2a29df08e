package storage

import (
	"errors"
	"time"
)

var (
	ErrQuoteNotFound   = errors.New("quote not found")
	ErrCompanyNotFound = errors.New("company not found")
)

// BillingConfig is the billing setup captured on every quote. It is a
// plain value: calculators receive it as an argument and never mutate it.
type BillingConfig struct {
	BillingType              string  `json:"billing_type"`
	HourlyRate               float64 `json:"hourly_rate"`
	OvertimePercentage       float64 `json:"overtime_percentage"`
	DailyRate                float64 `json:"daily_rate"`
	OTHourlyRate             float64 `json:"ot_hourly_rate"`
	RegularCallHours         float64 `json:"regular_call_hours"`
	PerDiemEnabled           bool    `json:"per_diem_enabled"`
	PerDiemRate              float64 `json:"per_diem_rate"`
	TaxRate                  float64 `json:"tax_rate"`
	EquipmentsEnabled        bool    `json:"equipments_enabled"`
	HideLabor                bool    `json:"hide_labor"`
	AdditionalExpenseEnabled bool    `json:"additional_expense_enabled"`
	AdditionalExpenseAmount  float64 `json:"additional_expense_amount"`
}

// LineItem is one calendar day of labor. The derived fields
// (total_hours, regular_hours, overtime_hours, line_total) are always
// recomputed from time_in/time_out and the billing config before the
// record is persisted or returned; cached values coming from a client
// are never trusted.
type LineItem struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"`
	TimeIn         string  `json:"time_in"`
	TimeOut        string  `json:"time_out"`
	Rate           float64 `json:"rate"`
	Enabled        *bool   `json:"enabled"`
	JobDescription string  `json:"job_description,omitempty"`
	TotalHours     float64 `json:"total_hours"`
	RegularHours   float64 `json:"regular_hours"`
	OvertimeHours  float64 `json:"overtime_hours"`
	LineTotal      float64 `json:"line_total"`
}

// IsEnabled treats a missing enabled flag as true so that rows persisted
// before the holiday toggle existed keep counting.
func (li LineItem) IsEnabled() bool {
	return li.Enabled == nil || *li.Enabled
}

// EquipmentItem is a non-labor billable row. Qty is a free-form operator
// token ("260m", "set", "2"); Total is derived from qty and price.
type EquipmentItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Qty         string  `json:"qty"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

type Quote struct {
	ID                int64  `json:"id"`
	DocType           string `json:"doc_type"`
	Date              string `json:"date"`
	InvoiceNumber     string `json:"invoice_number"`
	Sequence          int    `json:"sequence"`
	PONumber          string `json:"po_number"`
	JobID             string `json:"job_id"`
	ClientCompany     string `json:"client_company"`
	ClientAddress     string `json:"client_address"`
	POC               string `json:"poc"`
	Venue             string `json:"venue"`
	JobDescription    string `json:"job_description"`
	DateFrom          string `json:"date_from"`
	DateTo            string `json:"date_to"`
	BankAccountHolder string `json:"bank_account_holder"`
	BankName          string `json:"bank_name"`
	BankAccountNumber string `json:"bank_account_number"`
	BankIBAN          string `json:"bank_iban"`

	BillingConfig

	Subtotal       float64         `json:"subtotal"`
	Total          float64         `json:"total"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	LineItems      []LineItem      `json:"line_items"`
	EquipmentItems []EquipmentItem `json:"equipment_items"`
}

// QuoteSummary is the list-view projection used by the saved-quotes
// dropdown and by duplicate detection before a create.
type QuoteSummary struct {
	ID             int64     `json:"id"`
	DocType        string    `json:"doc_type"`
	Date           string    `json:"date"`
	InvoiceNumber  string    `json:"invoice_number"`
	ClientCompany  string    `json:"client_company"`
	JobDescription string    `json:"job_description"`
	Total          float64   `json:"total"`
	CreatedAt      time.Time `json:"created_at"`
}
