package document

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"quotes-backend/internal/service/billing"
	"quotes-backend/internal/storage"
)

var (
	// ErrInvalidRange means from/to is missing or reversed; no state is
	// mutated when it is returned.
	ErrInvalidRange = errors.New("invalid date range")
	ErrRowNotFound  = errors.New("row not found")
)

const (
	dateLayout     = "2006-01-02"
	defaultTimeIn  = "08:00"
	defaultTimeOut = "18:00"
)

// Document is the single source of truth for the work-entry and
// equipment lists of the quote being edited. Every mutator re-derives
// all per-row breakdowns and the aggregate totals; consumers always
// read freshly derived values, there is no partial recomputation.
type Document struct {
	cfg       storage.BillingConfig
	entries   []storage.LineItem
	equipment []storage.EquipmentItem
	totals    billing.Totals
}

func New(cfg storage.BillingConfig) *Document {
	d := &Document{cfg: cfg}
	d.recompute()
	return d
}

// Load replaces the document state with rows coming from a persisted
// quote. Derived fields on the incoming rows are discarded and rebuilt
// from the raw ones, so a reloaded quote always reproduces its totals.
func (d *Document) Load(entries []storage.LineItem, equipment []storage.EquipmentItem) {
	d.entries = make([]storage.LineItem, len(entries))
	copy(d.entries, entries)
	d.equipment = make([]storage.EquipmentItem, len(equipment))
	copy(d.equipment, equipment)

	for i := range d.entries {
		if d.entries[i].ID == "" {
			d.entries[i].ID = uuid.NewString()
		}
	}
	for i := range d.equipment {
		if d.equipment[i].ID == "" {
			d.equipment[i].ID = uuid.NewString()
		}
	}

	d.recompute()
}

// SetConfig swaps the billing configuration and reprices everything.
// Per-entry rates stay as generated.
func (d *Document) SetConfig(cfg storage.BillingConfig) {
	d.cfg = cfg
	d.recompute()
}

func (d *Document) Config() storage.BillingConfig {
	return d.cfg
}

// GenerateRange replaces the entry list with one default work day per
// calendar day in [from, to] inclusive. Each entry snapshots the
// current hourly rate so later rate edits do not reprice it.
func (d *Document) GenerateRange(from, to string) error {
	if from == "" || to == "" {
		return fmt.Errorf("%w: both from and to dates are required", ErrInvalidRange)
	}

	fromDate, err := time.Parse(dateLayout, from)
	if err != nil {
		return fmt.Errorf("%w: bad from date %q", ErrInvalidRange, from)
	}
	toDate, err := time.Parse(dateLayout, to)
	if err != nil {
		return fmt.Errorf("%w: bad to date %q", ErrInvalidRange, to)
	}
	if fromDate.After(toDate) {
		return fmt.Errorf("%w: from date is after to date", ErrInvalidRange)
	}

	enabled := true
	var entries []storage.LineItem
	for day := fromDate; !day.After(toDate); day = day.AddDate(0, 0, 1) {
		e := enabled
		entries = append(entries, storage.LineItem{
			ID:      uuid.NewString(),
			Date:    day.Format(dateLayout),
			TimeIn:  defaultTimeIn,
			TimeOut: defaultTimeOut,
			Rate:    d.cfg.HourlyRate,
			Enabled: &e,
		})
	}

	d.entries = entries
	d.recompute()
	return nil
}

// ToggleEnabled flips the holiday flag of one entry. The row stays in
// the list either way; only the aggregation skips it.
func (d *Document) ToggleEnabled(id string) error {
	i, err := d.entryIndex(id)
	if err != nil {
		return err
	}

	enabled := !d.entries[i].IsEnabled()
	d.entries[i].Enabled = &enabled
	d.recompute()
	return nil
}

func (d *Document) SetTimeIn(id, timeIn string) error {
	i, err := d.entryIndex(id)
	if err != nil {
		return err
	}
	d.entries[i].TimeIn = timeIn
	d.recompute()
	return nil
}

func (d *Document) SetTimeOut(id, timeOut string) error {
	i, err := d.entryIndex(id)
	if err != nil {
		return err
	}
	d.entries[i].TimeOut = timeOut
	d.recompute()
	return nil
}

func (d *Document) SetJobDescription(id, desc string) error {
	i, err := d.entryIndex(id)
	if err != nil {
		return err
	}
	d.entries[i].JobDescription = desc
	d.recompute()
	return nil
}

// AddEquipmentRow appends an empty row and returns its id.
func (d *Document) AddEquipmentRow() string {
	item := storage.EquipmentItem{
		ID:  uuid.NewString(),
		Qty: "1",
	}
	d.equipment = append(d.equipment, item)
	d.recompute()
	return item.ID
}

func (d *Document) RemoveEquipmentRow(id string) error {
	for i := range d.equipment {
		if d.equipment[i].ID == id {
			d.equipment = append(d.equipment[:i], d.equipment[i+1:]...)
			d.recompute()
			return nil
		}
	}
	return fmt.Errorf("%w: equipment %s", ErrRowNotFound, id)
}

// UpdateEquipmentField edits description, qty or price by name. Price
// arrives as operator-typed text and degrades to 0 when non-numeric.
func (d *Document) UpdateEquipmentField(id, field, value string) error {
	for i := range d.equipment {
		if d.equipment[i].ID != id {
			continue
		}

		switch field {
		case "description":
			d.equipment[i].Description = value
		case "qty":
			d.equipment[i].Qty = value
		case "price":
			price, err := strconv.ParseFloat(value, 64)
			if err != nil {
				price = 0
			}
			d.equipment[i].Price = price
		default:
			return fmt.Errorf("unknown equipment field %q", field)
		}

		d.recompute()
		return nil
	}
	return fmt.Errorf("%w: equipment %s", ErrRowNotFound, id)
}

// Entries returns the current list with derived fields filled in.
func (d *Document) Entries() []storage.LineItem {
	out := make([]storage.LineItem, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d *Document) Equipment() []storage.EquipmentItem {
	out := make([]storage.EquipmentItem, len(d.equipment))
	copy(out, d.equipment)
	return out
}

func (d *Document) Totals() billing.Totals {
	return d.totals
}

// Breakdown returns the derived view of one entry.
func (d *Document) Breakdown(id string) (billing.Breakdown, error) {
	i, err := d.entryIndex(id)
	if err != nil {
		return billing.Breakdown{}, err
	}
	return billing.CalculateEntry(d.entries[i], d.cfg), nil
}

func (d *Document) entryIndex(id string) (int, error) {
	for i := range d.entries {
		if d.entries[i].ID == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: entry %s", ErrRowNotFound, id)
}

// Recalculate rebuilds every derived field of a quote from its raw
// entries and billing config. Save, update and load all pass through
// here, so persisted totals can never drift from the raw rows.
func Recalculate(q *storage.Quote) {
	d := New(q.BillingConfig)
	d.Load(q.LineItems, q.EquipmentItems)

	q.LineItems = d.Entries()
	q.EquipmentItems = d.Equipment()

	totals := d.Totals()
	q.Subtotal = totals.Subtotal
	q.Total = totals.Total
}

func (d *Document) recompute() {
	for i := range d.entries {
		b := billing.CalculateEntry(d.entries[i], d.cfg)
		d.entries[i].TotalHours = b.TotalHours
		d.entries[i].RegularHours = b.RegularHours
		d.entries[i].OvertimeHours = b.OvertimeHours
		d.entries[i].LineTotal = b.LineTotal
	}

	for i := range d.equipment {
		d.equipment[i].Total = billing.EquipmentTotal(d.equipment[i])
	}

	d.totals = billing.CalculateTotals(d.entries, d.equipment, d.cfg)
}
