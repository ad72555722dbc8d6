// Package transaction holds the movement domain model: the value objects
// that guarantee well-formed data and the Transaction aggregate that binds a
// movement's type to the accounts and links it must or must not carry.
package transaction

import (
	"fmt"
	"strings"
	"time"
)

// Transaction is the aggregate root. Fields are unexported on purpose: an
// instance can only be produced by New and only mutated through the
// lifecycle methods, so every Transaction in the system satisfies the
// construction invariants at all times.
type Transaction struct {
	id                   ID
	userID               string
	txType               Type
	status               Status
	amount               Amount
	currency             string
	description          Description
	date                 Date
	sourceAccountID      string
	destinationAccountID string
	expenseID            string
	incomeID             string
	createdAt            time.Time
	updatedAt            time.Time
}

// Params carries everything New needs. Account, expense and income
// references are opaque identifiers; the empty string means absent.
// CreatedAt/UpdatedAt are only set when rehydrating a persisted row and
// default to now.
type Params struct {
	ID                   ID
	UserID               string
	Type                 Type
	Status               Status
	Amount               Amount
	Currency             string
	Description          Description
	Date                 Date
	SourceAccountID      string
	DestinationAccountID string
	ExpenseID            string
	IncomeID             string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// New is the sole gate producing a Transaction. It checks every cross-field
// invariant; an inconsistent Transaction must never exist.
func New(p Params) (*Transaction, error) {
	if p.ID.IsZero() {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidArgument)
	}

	userID := strings.TrimSpace(p.UserID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id must not be blank", ErrInvalidArgument)
	}

	if !p.Type.valid() {
		return nil, fmt.Errorf("%w: transaction type is required", ErrInvalidArgument)
	}

	if !p.Status.valid() {
		return nil, fmt.Errorf("%w: transaction status is required", ErrInvalidArgument)
	}

	if p.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount is required", ErrInvalidArgument)
	}

	currency := strings.ToUpper(strings.TrimSpace(p.Currency))
	if currency == "" {
		return nil, fmt.Errorf("%w: currency is required", ErrInvalidArgument)
	}

	if p.Description == (Description{}) {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidArgument)
	}

	if p.Date.IsZero() {
		return nil, fmt.Errorf("%w: transaction date is required", ErrInvalidArgument)
	}

	source := strings.TrimSpace(p.SourceAccountID)
	destination := strings.TrimSpace(p.DestinationAccountID)

	if p.Type.RequiresSourceAccount() && source == "" {
		return nil, fmt.Errorf("%w: %s requires a source account", ErrInvalidArgument, p.Type)
	}

	if p.Type.RequiresDestinationAccount() && destination == "" {
		return nil, fmt.Errorf("%w: %s requires a destination account", ErrInvalidArgument, p.Type)
	}

	if source != "" && source == destination {
		return nil, fmt.Errorf("%w: source and destination accounts cannot be the same", ErrInvalidArgument)
	}

	if p.ExpenseID != "" && !p.Type.CanLinkToExpense() {
		return nil, fmt.Errorf("%w: %s cannot be linked to an expense", ErrInvalidArgument, p.Type)
	}

	if p.IncomeID != "" && !p.Type.CanLinkToIncome() {
		return nil, fmt.Errorf("%w: %s cannot be linked to an income", ErrInvalidArgument, p.Type)
	}

	now := time.Now().UTC()

	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	return &Transaction{
		id:                   p.ID,
		userID:               userID,
		txType:               p.Type,
		status:               p.Status,
		amount:               p.Amount,
		currency:             currency,
		description:          p.Description,
		date:                 p.Date,
		sourceAccountID:      source,
		destinationAccountID: destination,
		expenseID:            p.ExpenseID,
		incomeID:             p.IncomeID,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}, nil
}

// UpdateStatus moves the transaction to next if the state machine allows it.
func (t *Transaction) UpdateStatus(next Status) error {
	if !next.valid() {
		return fmt.Errorf("%w: transaction status is required", ErrInvalidArgument)
	}

	if !t.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: cannot transition from %s to %s", ErrIllegalState, t.status, next)
	}

	t.status = next
	t.updatedAt = time.Now().UTC()

	return nil
}

func (t *Transaction) Complete() error   { return t.UpdateStatus(StatusCompleted) }
func (t *Transaction) Cancel() error     { return t.UpdateStatus(StatusCancelled) }
func (t *Transaction) MarkFailed() error { return t.UpdateStatus(StatusFailed) }

// UpdateDescription replaces the description. Terminal transactions are
// immutable, so the update is only allowed while the status is PENDING.
func (t *Transaction) UpdateDescription(d Description) error {
	if d == (Description{}) {
		return fmt.Errorf("%w: description is required", ErrInvalidArgument)
	}

	if t.status.IsFinal() {
		return fmt.Errorf("%w: cannot update description of a %s transaction", ErrIllegalState, strings.ToLower(string(t.status)))
	}

	t.description = d
	t.updatedAt = time.Now().UTC()

	return nil
}

// BelongsTo reports whether the transaction is owned by userID.
func (t *Transaction) BelongsTo(userID string) bool {
	return t.userID == strings.TrimSpace(userID)
}

// InvolvesAccount reports whether accountID is the source or the
// destination of this movement.
func (t *Transaction) InvolvesAccount(accountID string) bool {
	if accountID == "" {
		return false
	}

	return t.sourceAccountID == accountID || t.destinationAccountID == accountID
}

// Equal compares by identity: two transactions are the same entity when
// their ids match, regardless of field values.
func (t *Transaction) Equal(other *Transaction) bool {
	if other == nil {
		return false
	}

	return t.id == other.id
}

func (t *Transaction) IsPending() bool   { return t.status == StatusPending }
func (t *Transaction) IsCompleted() bool { return t.status == StatusCompleted }
func (t *Transaction) IsFailed() bool    { return t.status == StatusFailed }
func (t *Transaction) IsCancelled() bool { return t.status == StatusCancelled }

func (t *Transaction) ID() ID                       { return t.id }
func (t *Transaction) UserID() string               { return t.userID }
func (t *Transaction) Type() Type                   { return t.txType }
func (t *Transaction) Status() Status               { return t.status }
func (t *Transaction) Amount() Amount               { return t.amount }
func (t *Transaction) Currency() string             { return t.currency }
func (t *Transaction) Description() Description     { return t.description }
func (t *Transaction) Date() Date                   { return t.date }
func (t *Transaction) SourceAccountID() string      { return t.sourceAccountID }
func (t *Transaction) DestinationAccountID() string { return t.destinationAccountID }
func (t *Transaction) ExpenseID() string            { return t.expenseID }
func (t *Transaction) IncomeID() string             { return t.incomeID }
func (t *Transaction) CreatedAt() time.Time         { return t.createdAt }
func (t *Transaction) UpdatedAt() time.Time         { return t.updatedAt }
