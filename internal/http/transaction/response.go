package transaction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mreis/penny/internal/transaction"
)

type transactionResponse struct {
	ID                   string          `json:"id"`
	UserID               string          `json:"user_id"`
	Type                 string          `json:"type"`
	Status               string          `json:"status"`
	Amount               decimal.Decimal `json:"amount"`
	Currency             string          `json:"currency"`
	Description          string          `json:"description"`
	TransactionDate      string          `json:"transaction_date"`
	SourceAccountID      string          `json:"source_account_id,omitempty"`
	DestinationAccountID string          `json:"destination_account_id,omitempty"`
	ExpenseID            string          `json:"expense_id,omitempty"`
	IncomeID             string          `json:"income_id,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:                   tx.ID().String(),
		UserID:               tx.UserID(),
		Type:                 string(tx.Type()),
		Status:               string(tx.Status()),
		Amount:               tx.Amount().Value(),
		Currency:             tx.Currency(),
		Description:          tx.Description().String(),
		TransactionDate:      tx.Date().String(),
		SourceAccountID:      tx.SourceAccountID(),
		DestinationAccountID: tx.DestinationAccountID(),
		ExpenseID:            tx.ExpenseID(),
		IncomeID:             tx.IncomeID(),
		CreatedAt:            tx.CreatedAt(),
		UpdatedAt:            tx.UpdatedAt(),
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
