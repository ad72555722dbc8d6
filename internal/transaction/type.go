package transaction

import (
	"fmt"
	"strings"
)

// Type classifies a movement. Each type fixes which account roles the
// transaction must carry and whether it may link to an expense or income
// record.
type Type string

const (
	TypeTransfer   Type = "TRANSFER"
	TypeDeposit    Type = "DEPOSIT"
	TypeWithdrawal Type = "WITHDRAWAL"
	TypePayment    Type = "PAYMENT"
	TypeRefund     Type = "REFUND"
)

type typeRule struct {
	requiresSource      bool
	requiresDestination bool
	linksExpense        bool
	linksIncome         bool
}

// typeRules is the single source of truth for per-type requirements.
var typeRules = map[Type]typeRule{
	TypeTransfer:   {requiresSource: true, requiresDestination: true},
	TypeDeposit:    {requiresDestination: true},
	TypeWithdrawal: {requiresSource: true},
	TypePayment:    {requiresSource: true, linksExpense: true},
	TypeRefund:     {requiresDestination: true, linksIncome: true},
}

// ParseType normalizes (trim + uppercase) and matches against the known
// variants.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := typeRules[t]; !ok {
		return "", fmt.Errorf("%w: unknown transaction type %q, valid types are TRANSFER, DEPOSIT, WITHDRAWAL, PAYMENT, REFUND", ErrInvalidArgument, s)
	}

	return t, nil
}

func (t Type) RequiresSourceAccount() bool      { return typeRules[t].requiresSource }
func (t Type) RequiresDestinationAccount() bool { return typeRules[t].requiresDestination }
func (t Type) CanLinkToExpense() bool           { return typeRules[t].linksExpense }
func (t Type) CanLinkToIncome() bool            { return typeRules[t].linksIncome }

func (t Type) valid() bool {
	_, ok := typeRules[t]
	return ok
}
