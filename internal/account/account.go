// Package account holds the accounts a movement can draw from or pay into.
// Transactions reference accounts by opaque identifier only; balance
// arithmetic lives here, not in the transaction aggregate.
package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("account not found")

// ErrInsufficientFunds is returned when a debit would push the balance
// below zero.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Kind classifies an account.
type Kind string

const (
	KindChecking Kind = "CHECKING"
	KindSavings  Kind = "SAVINGS"
	KindCredit   Kind = "CREDIT"
	KindCash     Kind = "CASH"
)

var kinds = map[Kind]struct{}{
	KindChecking: {},
	KindSavings:  {},
	KindCredit:   {},
	KindCash:     {},
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := kinds[k]; !ok {
		return "", fmt.Errorf("unknown account kind %q, valid kinds are CHECKING, SAVINGS, CREDIT, CASH", s)
	}

	return k, nil
}

type Account struct {
	ID        uuid.UUID
	UserID    string
	Name      string
	Kind      Kind
	Currency  string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
	a.UpdatedAt = time.Now().UTC()
}

// Debit removes amount from the balance. Credit accounts may go negative;
// every other kind must keep a non-negative balance.
func (a *Account) Debit(amount decimal.Decimal) error {
	next := a.Balance.Sub(amount)
	if a.Kind != KindCredit && next.IsNegative() {
		return fmt.Errorf("%w: balance %s, debit %s", ErrInsufficientFunds, a.Balance, amount)
	}

	a.Balance = next
	a.UpdatedAt = time.Now().UTC()

	return nil
}
