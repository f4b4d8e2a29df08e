package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quotes-backend/internal/storage"
)

const defaultHourlyRate = 200

// GetSettings returns the global defaults, seeding the single settings
// row on first access.
func (s *Storage) GetSettings(ctx context.Context) (*storage.Settings, error) {
	const op = "storage.mysql.GetSettings"

	var settings storage.Settings
	err := s.db.QueryRowContext(ctx, "SELECT id, hourly_rate FROM settings LIMIT 1").
		Scan(&settings.ID, &settings.HourlyRate)
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: query settings: %w", op, err)
	}

	exec, err := s.db.ExecContext(ctx, "INSERT INTO settings (hourly_rate) VALUES (?)", defaultHourlyRate)
	if err != nil {
		return nil, fmt.Errorf("%s: seed settings: %w", op, err)
	}

	settings.ID, err = exec.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%s: last insert id: %w", op, err)
	}
	settings.HourlyRate = defaultHourlyRate

	return &settings, nil
}

func (s *Storage) UpdateSettings(ctx context.Context, hourlyRate float64) (*storage.Settings, error) {
	const op = "storage.mysql.UpdateSettings"

	current, err := s.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.db.ExecContext(ctx, "UPDATE settings SET hourly_rate = ? WHERE id = ?", hourlyRate, current.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: update settings: %w", op, err)
	}

	current.HourlyRate = hourlyRate
	return current, nil
}
