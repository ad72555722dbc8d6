package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mreis/penny/internal/income"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectColumns = `id, user_id, category, amount, description, date, created_at`

func scanIncome(s scanner) (*income.Income, error) {
	var in income.Income

	if err := s.Scan(&in.ID, &in.UserID, &in.Category, &in.Amount, &in.Description, &in.Date, &in.CreatedAt); err != nil {
		return nil, err
	}

	return &in, nil
}

func (s *Store) Create(ctx context.Context, in *income.Income) error {
	query := `
		INSERT INTO incomes (user_id, category, amount, description, date, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		in.UserID, in.Category, in.Amount, in.Description, in.Date,
	).Scan(&in.ID, &in.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating income: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*income.Income, error) {
	query := `SELECT ` + selectColumns + ` FROM incomes WHERE id = $1`

	in, err := scanIncome(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, income.ErrNotFound
		}

		return nil, fmt.Errorf("getting income: %w", err)
	}

	return in, nil
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]*income.Income, error) {
	query := `SELECT ` + selectColumns + ` FROM incomes WHERE user_id = $1 ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing incomes: %w", err)
	}
	defer rows.Close()

	var out []*income.Income

	for rows.Next() {
		in, err := scanIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning income: %w", err)
		}

		out = append(out, in)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating income rows: %w", err)
	}

	return out, nil
}

func (s *Store) SumByCategory(ctx context.Context, userID string) (map[string]decimal.Decimal, error) {
	query := `SELECT category, SUM(amount) FROM incomes WHERE user_id = $1 GROUP BY category`

	return s.sumGrouped(ctx, query, userID)
}

func (s *Store) SumByMonth(ctx context.Context, userID string) (map[string]decimal.Decimal, error) {
	query := `SELECT to_char(date, 'YYYY-MM'), SUM(amount) FROM incomes WHERE user_id = $1 GROUP BY 1`

	return s.sumGrouped(ctx, query, userID)
}

func (s *Store) sumGrouped(ctx context.Context, query, userID string) (map[string]decimal.Decimal, error) {
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("summing incomes: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)

	for rows.Next() {
		var key string

		var total decimal.Decimal

		if err := rows.Scan(&key, &total); err != nil {
			return nil, fmt.Errorf("scanning income total: %w", err)
		}

		totals[key] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating income totals: %w", err)
	}

	return totals, nil
}
