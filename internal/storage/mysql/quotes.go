package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quotes-backend/internal/storage"
)

const quoteColumns = `doc_type, date, invoice_number, sequence, po_number, job_id, client_company, client_address,
		poc, venue, job_description, date_from, date_to,
		bank_account_holder, bank_name, bank_account_number, bank_iban,
		billing_type, hourly_rate, overtime_percentage, daily_rate, ot_hourly_rate, regular_call_hours,
		per_diem_enabled, per_diem_rate, tax_rate, equipments_enabled, hide_labor,
		additional_expense_enabled, additional_expense_amount, subtotal, total`

func quoteArgs(q storage.Quote) []any {
	return []any{
		q.DocType, nullDate(q.Date), q.InvoiceNumber, q.Sequence, q.PONumber, q.JobID, q.ClientCompany, q.ClientAddress,
		q.POC, q.Venue, q.JobDescription, nullDate(q.DateFrom), nullDate(q.DateTo),
		q.BankAccountHolder, q.BankName, q.BankAccountNumber, q.BankIBAN,
		q.BillingType, q.HourlyRate, q.OvertimePercentage, q.DailyRate, q.OTHourlyRate, q.RegularCallHours,
		q.PerDiemEnabled, q.PerDiemRate, q.TaxRate, q.EquipmentsEnabled, q.HideLabor,
		q.AdditionalExpenseEnabled, q.AdditionalExpenseAmount, q.Subtotal, q.Total,
	}
}

func (s *Storage) SaveQuote(ctx context.Context, q storage.Quote) (int64, error) {
	const op = "storage.mysql.SaveQuote"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	stmt := `INSERT INTO quotes (` + quoteColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	exec, err := tx.ExecContext(ctx, stmt, quoteArgs(q)...)
	if err != nil {
		return 0, fmt.Errorf("%s: insert quote: %w", op, err)
	}

	quoteID, err := exec.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	if err := insertChildren(ctx, tx, quoteID, q); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", op, err)
	}

	return quoteID, nil
}

func (s *Storage) UpdateQuote(ctx context.Context, id int64, q storage.Quote) error {
	const op = "storage.mysql.UpdateQuote"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	stmt := `UPDATE quotes SET
		doc_type = ?, date = ?, invoice_number = ?, sequence = ?, po_number = ?, job_id = ?, client_company = ?, client_address = ?,
		poc = ?, venue = ?, job_description = ?, date_from = ?, date_to = ?,
		bank_account_holder = ?, bank_name = ?, bank_account_number = ?, bank_iban = ?,
		billing_type = ?, hourly_rate = ?, overtime_percentage = ?, daily_rate = ?, ot_hourly_rate = ?, regular_call_hours = ?,
		per_diem_enabled = ?, per_diem_rate = ?, tax_rate = ?, equipments_enabled = ?, hide_labor = ?,
		additional_expense_enabled = ?, additional_expense_amount = ?, subtotal = ?, total = ?
		WHERE id = ?`

	args := append(quoteArgs(q), id)
	exec, err := tx.ExecContext(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("%s: update quote: %w", op, err)
	}

	affected, err := exec.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		// An update with identical values also reports 0, so confirm
		// the row really is missing before failing.
		var exists int
		err = tx.QueryRowContext(ctx, "SELECT 1 FROM quotes WHERE id = ?", id).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrQuoteNotFound)
		}
		if err != nil {
			return fmt.Errorf("%s: check quote: %w", op, err)
		}
	}

	// Child rows are replaced wholesale; the lists are small and the
	// incoming payload is the complete state of the document.
	if _, err := tx.ExecContext(ctx, "DELETE FROM quote_line_items WHERE quote_id = ?", id); err != nil {
		return fmt.Errorf("%s: delete line items: %w", op, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM quote_equipment_items WHERE quote_id = ?", id); err != nil {
		return fmt.Errorf("%s: delete equipment items: %w", op, err)
	}

	if err := insertChildren(ctx, tx, id, q); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return tx.Commit()
}

func insertChildren(ctx context.Context, tx *sql.Tx, quoteID int64, q storage.Quote) error {
	stmtItems, err := tx.PrepareContext(ctx, `
		INSERT INTO quote_line_items
			(quote_id, entry_id, date, time_in, time_out, rate, enabled, job_description,
			 total_hours, regular_hours, overtime_hours, line_total, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare line items: %w", err)
	}
	defer stmtItems.Close()

	for i, item := range q.LineItems {
		_, err := stmtItems.ExecContext(ctx, quoteID, item.ID, nullDate(item.Date), item.TimeIn, item.TimeOut,
			item.Rate, item.IsEnabled(), item.JobDescription,
			item.TotalHours, item.RegularHours, item.OvertimeHours, item.LineTotal, i)
		if err != nil {
			return fmt.Errorf("insert line item: %w", err)
		}
	}

	stmtEquip, err := tx.PrepareContext(ctx, `
		INSERT INTO quote_equipment_items
			(quote_id, item_id, description, qty, price, total, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare equipment items: %w", err)
	}
	defer stmtEquip.Close()

	for i, item := range q.EquipmentItems {
		_, err := stmtEquip.ExecContext(ctx, quoteID, item.ID, item.Description, item.Qty, item.Price, item.Total, i)
		if err != nil {
			return fmt.Errorf("insert equipment item: %w", err)
		}
	}

	return nil
}

func (s *Storage) GetQuote(ctx context.Context, id int64) (*storage.Quote, error) {
	const op = "storage.mysql.GetQuote"

	stmt := `SELECT id, ` + quoteColumns + `, created_at, updated_at FROM quotes WHERE id = ?`

	var (
		q                      storage.Quote
		date, dateFrom, dateTo sql.NullTime
	)

	err := s.db.QueryRowContext(ctx, stmt, id).Scan(
		&q.ID,
		&q.DocType, &date, &q.InvoiceNumber, &q.Sequence, &q.PONumber, &q.JobID, &q.ClientCompany, &q.ClientAddress,
		&q.POC, &q.Venue, &q.JobDescription, &dateFrom, &dateTo,
		&q.BankAccountHolder, &q.BankName, &q.BankAccountNumber, &q.BankIBAN,
		&q.BillingType, &q.HourlyRate, &q.OvertimePercentage, &q.DailyRate, &q.OTHourlyRate, &q.RegularCallHours,
		&q.PerDiemEnabled, &q.PerDiemRate, &q.TaxRate, &q.EquipmentsEnabled, &q.HideLabor,
		&q.AdditionalExpenseEnabled, &q.AdditionalExpenseAmount, &q.Subtotal, &q.Total,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrQuoteNotFound)
		}
		return nil, fmt.Errorf("%s: query quote: %w", op, err)
	}

	q.Date = dateString(date)
	q.DateFrom = dateString(dateFrom)
	q.DateTo = dateString(dateTo)

	q.LineItems, err = s.quoteLineItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	q.EquipmentItems, err = s.quoteEquipmentItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &q, nil
}

func (s *Storage) quoteLineItems(ctx context.Context, quoteID int64) ([]storage.LineItem, error) {
	stmt := `SELECT entry_id, date, time_in, time_out, rate, enabled, job_description,
			total_hours, regular_hours, overtime_hours, line_total
		FROM quote_line_items WHERE quote_id = ? ORDER BY sort_order ASC`

	rows, err := s.db.QueryContext(ctx, stmt, quoteID)
	if err != nil {
		return nil, fmt.Errorf("query line items: %w", err)
	}
	defer rows.Close()

	var items []storage.LineItem
	for rows.Next() {
		var (
			item    storage.LineItem
			date    sql.NullTime
			enabled bool
			jobDesc sql.NullString
		)
		err := rows.Scan(&item.ID, &date, &item.TimeIn, &item.TimeOut, &item.Rate, &enabled, &jobDesc,
			&item.TotalHours, &item.RegularHours, &item.OvertimeHours, &item.LineTotal)
		if err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		item.Date = dateString(date)
		item.Enabled = &enabled
		item.JobDescription = jobDesc.String
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate line items: %w", err)
	}

	return items, nil
}

func (s *Storage) quoteEquipmentItems(ctx context.Context, quoteID int64) ([]storage.EquipmentItem, error) {
	stmt := `SELECT item_id, description, qty, price, total
		FROM quote_equipment_items WHERE quote_id = ? ORDER BY sort_order ASC`

	rows, err := s.db.QueryContext(ctx, stmt, quoteID)
	if err != nil {
		return nil, fmt.Errorf("query equipment items: %w", err)
	}
	defer rows.Close()

	var items []storage.EquipmentItem
	for rows.Next() {
		var item storage.EquipmentItem
		if err := rows.Scan(&item.ID, &item.Description, &item.Qty, &item.Price, &item.Total); err != nil {
			return nil, fmt.Errorf("scan equipment item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate equipment items: %w", err)
	}

	return items, nil
}

func (s *Storage) ListQuoteSummaries(ctx context.Context) ([]storage.QuoteSummary, error) {
	const op = "storage.mysql.ListQuoteSummaries"

	stmt := `SELECT id, doc_type, date, invoice_number, client_company, job_description, total, created_at
		FROM quotes ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: query quotes: %w", op, err)
	}
	defer rows.Close()

	var summaries []storage.QuoteSummary
	for rows.Next() {
		var (
			sum           storage.QuoteSummary
			date          sql.NullTime
			invoiceNumber sql.NullString
		)
		err := rows.Scan(&sum.ID, &sum.DocType, &date, &invoiceNumber, &sum.ClientCompany, &sum.JobDescription, &sum.Total, &sum.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: scan quote: %w", op, err)
		}
		sum.Date = dateString(date)
		sum.InvoiceNumber = invoiceNumber.String
		summaries = append(summaries, sum)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate quotes: %w", op, err)
	}

	return summaries, nil
}

func (s *Storage) DeleteQuote(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteQuote"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM quote_line_items WHERE quote_id = ?", id); err != nil {
		return fmt.Errorf("%s: delete line items: %w", op, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM quote_equipment_items WHERE quote_id = ?", id); err != nil {
		return fmt.Errorf("%s: delete equipment items: %w", op, err)
	}

	exec, err := tx.ExecContext(ctx, "DELETE FROM quotes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: delete quote: %w", op, err)
	}

	affected, err := exec.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrQuoteNotFound)
	}

	return tx.Commit()
}

// NextSequence reads the next per-company sequence hint. It is not a
// reservation: two concurrent sessions can read the same value, which
// the duplicate check on save then surfaces.
func (s *Storage) NextSequence(ctx context.Context, companyName string) (int, error) {
	const op = "storage.mysql.NextSequence"

	var next int
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(sequence), 0) + 1 FROM quotes WHERE client_company = ?",
		companyName,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return next, nil
}
