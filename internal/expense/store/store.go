package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mreis/penny/internal/expense"
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

func scanExpense(s scanner) (*expense.Expense, error) {
	var e expense.Expense

	if err := s.Scan(&e.ID, &e.UserID, &e.Category, &e.Amount, &e.Description, &e.Date, &e.CreatedAt); err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *Store) Create(ctx context.Context, e *expense.Expense) error {
	query := `
		INSERT INTO expenses (user_id, category, amount, description, date, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.UserID, e.Category, e.Amount, e.Description, e.Date,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	query := `SELECT ` + selectColumns + ` FROM expenses WHERE id = $1`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return e, nil
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]*expense.Expense, error) {
	query := `SELECT ` + selectColumns + ` FROM expenses WHERE user_id = $1 ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var out []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		out = append(out, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense rows: %w", err)
	}

	return out, nil
}

func (s *Store) SumByCategory(ctx context.Context, userID string) (map[string]decimal.Decimal, error) {
	query := `SELECT category, SUM(amount) FROM expenses WHERE user_id = $1 GROUP BY category`

	return s.sumGrouped(ctx, query, userID)
}

func (s *Store) SumByMonth(ctx context.Context, userID string) (map[string]decimal.Decimal, error) {
	query := `SELECT to_char(date, 'YYYY-MM'), SUM(amount) FROM expenses WHERE user_id = $1 GROUP BY 1`

	return s.sumGrouped(ctx, query, userID)
}

func (s *Store) sumGrouped(ctx context.Context, query, userID string) (map[string]decimal.Decimal, error) {
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("summing expenses: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)

	for rows.Next() {
		var key string

		var total decimal.Decimal

		if err := rows.Scan(&key, &total); err != nil {
			return nil, fmt.Errorf("scanning expense total: %w", err)
		}

		totals[key] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense totals: %w", err)
	}

	return totals, nil
}
