package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mreis/penny/internal/account"
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

const selectColumns = `id, user_id, name, kind, currency, balance, created_at, updated_at`

func scanAccount(s scanner) (*account.Account, error) {
	var acc account.Account

	var kind string

	if err := s.Scan(
		&acc.ID, &acc.UserID, &acc.Name, &kind, &acc.Currency, &acc.Balance,
		&acc.CreatedAt, &acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	acc.Kind = account.Kind(kind)

	return &acc, nil
}

func (s *Store) Create(ctx context.Context, acc *account.Account) error {
	query := `
		INSERT INTO accounts (user_id, name, kind, currency, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		acc.UserID,
		acc.Name,
		string(acc.Kind),
		acc.Currency,
		acc.Balance,
	).Scan(&acc.ID, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	query := `SELECT ` + selectColumns + ` FROM accounts WHERE id = $1`

	acc, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return acc, nil
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]*account.Account, error) {
	query := `SELECT ` + selectColumns + ` FROM accounts WHERE user_id = $1 ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accs []*account.Account

	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accs = append(accs, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return accs, nil
}

func (s *Store) Update(ctx context.Context, acc *account.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, balance = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := s.db.ExecContext(ctx, query, acc.Name, acc.Balance, acc.ID)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}

	return nil
}
