// Package income records categorized earnings. A REFUND transaction may
// link to one of these records by id.
package income

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("income not found")

type Income struct {
	ID          uuid.UUID
	UserID      string
	Category    string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CreatedAt   time.Time
}
