package mysql

import (
	"context"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"quotes-backend/internal/storage"
)

func (s *Storage) ListCompanies(ctx context.Context) ([]storage.Company, error) {
	const op = "storage.mysql.ListCompanies"

	rows, err := s.db.QueryContext(ctx, "SELECT id, name, address, created_at FROM companies ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("%s: query companies: %w", op, err)
	}
	defer rows.Close()

	var companies []storage.Company
	for rows.Next() {
		var c storage.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan company: %w", op, err)
		}
		companies = append(companies, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate companies: %w", op, err)
	}

	return companies, nil
}

func (s *Storage) SaveCompany(ctx context.Context, name, address string) (int64, error) {
	const op = "storage.mysql.SaveCompany"

	exec, err := s.db.ExecContext(ctx, "INSERT INTO companies (name, address) VALUES (?, ?)", name, address)
	if err != nil {
		if mysqlErr, ok := err.(*mysql.MySQLError); ok && mysqlErr.Number == 1062 {
			return 0, fmt.Errorf("%s: company %q already exists: %w", op, name, err)
		}
		return 0, fmt.Errorf("%s: insert company: %w", op, err)
	}

	return exec.LastInsertId()
}
