// Package store persists transactions in Postgres. Rows are rebuilt through
// the same constructor gate as fresh transactions, so data that violates the
// domain rules can never leak back into the system.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mreis/penny/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectColumns = `
	id, user_id, type, status, amount, currency, description, date,
	source_account_id, destination_account_id, expense_id, income_id,
	created_at, updated_at
`

// scanTransaction reads one row and rebuilds the aggregate through the
// domain constructors.
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var (
		idStr, userID, typeStr, statusStr, currency, description string
		amountDec                                                decimal.Decimal
		date, createdAt, updatedAt                               time.Time
		source, destination, expenseID, incomeID                 sql.NullString
	)

	if err := s.Scan(
		&idStr, &userID, &typeStr, &statusStr, &amountDec, &currency, &description, &date,
		&source, &destination, &expenseID, &incomeID,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	id, err := transaction.ParseID(idStr)
	if err != nil {
		return nil, fmt.Errorf("stored id: %w", err)
	}

	txType, err := transaction.ParseType(typeStr)
	if err != nil {
		return nil, fmt.Errorf("stored type: %w", err)
	}

	status, err := transaction.ParseStatus(statusStr)
	if err != nil {
		return nil, fmt.Errorf("stored status: %w", err)
	}

	amount, err := transaction.NewAmount(amountDec)
	if err != nil {
		return nil, fmt.Errorf("stored amount: %w", err)
	}

	desc, err := transaction.NewDescription(description)
	if err != nil {
		return nil, fmt.Errorf("stored description: %w", err)
	}

	day, err := transaction.NewDate(date)
	if err != nil {
		return nil, fmt.Errorf("stored date: %w", err)
	}

	tx, err := transaction.New(transaction.Params{
		ID:                   id,
		UserID:               userID,
		Type:                 txType,
		Status:               status,
		Amount:               amount,
		Currency:             currency,
		Description:          desc,
		Date:                 day,
		SourceAccountID:      source.String,
		DestinationAccountID: destination.String,
		ExpenseID:            expenseID.String,
		IncomeID:             incomeID.String,
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("rebuilding transaction: %w", err)
	}

	return tx, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Save inserts the transaction or, when the id already exists, updates the
// mutable columns. The round trip preserves every field.
func (s *Store) Save(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, user_id, type, status, amount, currency, description, date,
			source_account_id, destination_account_id, expense_id, income_id,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		tx.ID().String(),
		tx.UserID(),
		string(tx.Type()),
		string(tx.Status()),
		tx.Amount().Value(),
		tx.Currency(),
		tx.Description().String(),
		tx.Date().Time(),
		nullable(tx.SourceAccountID()),
		nullable(tx.DestinationAccountID()),
		nullable(tx.ExpenseID()),
		nullable(tx.IncomeID()),
		tx.CreatedAt(),
		tx.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("saving transaction: %w", err)
	}

	return nil
}

func (s *Store) FindByID(ctx context.Context, id transaction.ID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectColumns + ` FROM transactions WHERE id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) FindByUser(ctx context.Context, userID string) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectColumns + ` FROM transactions WHERE user_id = $1 ORDER BY date ASC, created_at ASC`

	return s.queryList(ctx, query, userID)
}

func (s *Store) FindByAccount(ctx context.Context, accountID string) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectColumns + `
		FROM transactions
		WHERE source_account_id = $1 OR destination_account_id = $1
		ORDER BY date ASC, created_at ASC`

	return s.queryList(ctx, query, accountID)
}

func (s *Store) Delete(ctx context.Context, id transaction.ID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	return nil
}

func (s *Store) queryList(ctx context.Context, query string, args ...any) ([]*transaction.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}
