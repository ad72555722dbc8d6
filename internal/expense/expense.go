// Package expense records categorized spending. A PAYMENT transaction may
// link to one of these records by id.
package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("expense not found")

type Expense struct {
	ID          uuid.UUID
	UserID      string
	Category    string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CreatedAt   time.Time
}
