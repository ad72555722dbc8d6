package importer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mreis/penny/internal/transaction"
)

type Service struct {
	transactions *transaction.Service
}

func NewService(transactions *transaction.Service) *Service {
	return &Service{transactions: transactions}
}

// Import parses a statement export and records each row against accountID:
// money in becomes a DEPOSIT into the account, money out a WITHDRAWAL from
// it. Rows dated in the future are reported as errors by the domain layer.
func (s *Service) Import(ctx context.Context, userID, accountID, currency string, r io.Reader) ([]*transaction.Transaction, error) {
	rows, err := Parse(r)
	if err != nil {
		return nil, err
	}

	txs := make([]*transaction.Transaction, 0, len(rows))

	for i, row := range rows {
		params := transaction.CreateParams{
			UserID:      userID,
			Currency:    currency,
			Description: row.Description,
			Date:        row.Date.Format(time.DateOnly),
		}

		if row.Amount.IsNegative() {
			params.Type = string(transaction.TypeWithdrawal)
			params.Amount = row.Amount.Neg().String()
			params.SourceAccountID = accountID
		} else {
			params.Type = string(transaction.TypeDeposit)
			params.Amount = row.Amount.String()
			params.DestinationAccountID = accountID
		}

		tx, err := s.transactions.Create(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", i+1, row.Description, err)
		}

		txs = append(txs, tx)
	}

	return txs, nil
}
