package transaction_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreis/penny/internal/transaction"
)

// validParams returns params for a valid pending transfer of 100.00 USD from
// account "acc-a" to account "acc-b". Tests override fields as needed.
func validParams(t *testing.T) transaction.Params {
	t.Helper()

	description, err := transaction.NewDescription("Savings transfer")
	require.NoError(t, err)

	date, err := transaction.NewDate(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	return transaction.Params{
		ID:                   transaction.NewID(),
		UserID:               "user-1",
		Type:                 transaction.TypeTransfer,
		Status:               transaction.StatusPending,
		Amount:               mustAmount(t, "100.00"),
		Currency:             "USD",
		Description:          description,
		Date:                 date,
		SourceAccountID:      "acc-a",
		DestinationAccountID: "acc-b",
	}
}

func mustNew(t *testing.T, p transaction.Params) *transaction.Transaction {
	t.Helper()

	tx, err := transaction.New(p)
	require.NoError(t, err)

	return tx
}

func TestNew_ValidTransfer(t *testing.T) {
	tx := mustNew(t, validParams(t))

	assert.True(t, tx.IsPending())
	assert.Equal(t, transaction.TypeTransfer, tx.Type())
	assert.Equal(t, "acc-a", tx.SourceAccountID())
	assert.Equal(t, "acc-b", tx.DestinationAccountID())
	assert.True(t, tx.Amount().Equal(mustAmount(t, "100.00")))
	assert.False(t, tx.CreatedAt().IsZero())
	assert.Equal(t, tx.CreatedAt(), tx.UpdatedAt())
}

func TestNew_RequiredFields(t *testing.T) {
	type testCase struct {
		name   string
		mutate func(*transaction.Params)
	}

	tests := []testCase{
		{name: "MissingID", mutate: func(p *transaction.Params) { p.ID = transaction.ID{} }},
		{name: "BlankUserID", mutate: func(p *transaction.Params) { p.UserID = "   " }},
		{name: "MissingType", mutate: func(p *transaction.Params) { p.Type = "" }},
		{name: "InvalidType", mutate: func(p *transaction.Params) { p.Type = "LOAN" }},
		{name: "MissingStatus", mutate: func(p *transaction.Params) { p.Status = "" }},
		{name: "MissingAmount", mutate: func(p *transaction.Params) { p.Amount = transaction.Amount{} }},
		{name: "BlankCurrency", mutate: func(p *transaction.Params) { p.Currency = "  " }},
		{name: "MissingDescription", mutate: func(p *transaction.Params) { p.Description = transaction.Description{} }},
		{name: "MissingDate", mutate: func(p *transaction.Params) { p.Date = transaction.Date{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams(t)
			tt.mutate(&params)

			_, err := transaction.New(params)
			assert.ErrorIs(t, err, transaction.ErrInvalidArgument)
		})
	}
}

// TestNew_AccountRequirements walks every type through the role table:
// missing required roles fail, complete roles succeed.
func TestNew_AccountRequirements(t *testing.T) {
	type testCase struct {
		name        string
		txType      transaction.Type
		source      string
		destination string
		wantErr     string
	}

	tests := []testCase{
		{name: "TransferComplete", txType: transaction.TypeTransfer, source: "acc-a", destination: "acc-b"},
		{name: "TransferNoSource", txType: transaction.TypeTransfer, destination: "acc-b", wantErr: "TRANSFER requires a source account"},
		{name: "TransferNoDestination", txType: transaction.TypeTransfer, source: "acc-a", wantErr: "TRANSFER requires a destination account"},
		{name: "DepositComplete", txType: transaction.TypeDeposit, destination: "acc-b"},
		{name: "DepositNoDestination", txType: transaction.TypeDeposit, wantErr: "DEPOSIT requires a destination account"},
		{name: "DepositWithOptionalSource", txType: transaction.TypeDeposit, source: "acc-a", destination: "acc-b"},
		{name: "WithdrawalComplete", txType: transaction.TypeWithdrawal, source: "acc-a"},
		{name: "WithdrawalNoSource", txType: transaction.TypeWithdrawal, wantErr: "WITHDRAWAL requires a source account"},
		{name: "PaymentComplete", txType: transaction.TypePayment, source: "acc-a"},
		{name: "PaymentNoSource", txType: transaction.TypePayment, wantErr: "PAYMENT requires a source account"},
		{name: "RefundComplete", txType: transaction.TypeRefund, destination: "acc-b"},
		{name: "RefundNoDestination", txType: transaction.TypeRefund, wantErr: "REFUND requires a destination account"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams(t)
			params.Type = tt.txType
			params.SourceAccountID = tt.source
			params.DestinationAccountID = tt.destination

			tx, err := transaction.New(params)

			if tt.wantErr != "" {
				require.ErrorIs(t, err, transaction.ErrInvalidArgument)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.txType, tx.Type())
		})
	}
}

// TestNew_SameSourceAndDestination covers every type: equal non-empty
// accounts are rejected no matter what roles the type requires.
func TestNew_SameSourceAndDestination(t *testing.T) {
	types := []transaction.Type{
		transaction.TypeTransfer,
		transaction.TypeDeposit,
		transaction.TypeWithdrawal,
		transaction.TypePayment,
		transaction.TypeRefund,
	}

	for _, txType := range types {
		t.Run(string(txType), func(t *testing.T) {
			params := validParams(t)
			params.Type = txType
			params.SourceAccountID = "acc-a"
			params.DestinationAccountID = "acc-a"

			_, err := transaction.New(params)
			require.ErrorIs(t, err, transaction.ErrInvalidArgument)
			assert.Contains(t, err.Error(), "source and destination accounts cannot be the same")
		})
	}
}

func TestNew_LinkGating(t *testing.T) {
	type testCase struct {
		name        string
		txType      transaction.Type
		source      string
		destination string
		expenseID   string
		incomeID    string
		wantErr     string
	}

	tests := []testCase{
		{name: "PaymentWithExpense", txType: transaction.TypePayment, source: "acc-a", expenseID: "exp-1"},
		{name: "RefundWithIncome", txType: transaction.TypeRefund, destination: "acc-b", incomeID: "inc-1"},
		{name: "TransferWithExpense", txType: transaction.TypeTransfer, source: "acc-a", destination: "acc-b", expenseID: "exp-1", wantErr: "TRANSFER cannot be linked to an expense"},
		{name: "DepositWithExpense", txType: transaction.TypeDeposit, destination: "acc-b", expenseID: "exp-1", wantErr: "DEPOSIT cannot be linked to an expense"},
		{name: "WithdrawalWithIncome", txType: transaction.TypeWithdrawal, source: "acc-a", incomeID: "inc-1", wantErr: "WITHDRAWAL cannot be linked to an income"},
		{name: "PaymentWithIncome", txType: transaction.TypePayment, source: "acc-a", incomeID: "inc-1", wantErr: "PAYMENT cannot be linked to an income"},
		{name: "RefundWithExpense", txType: transaction.TypeRefund, destination: "acc-b", expenseID: "exp-1", wantErr: "REFUND cannot be linked to an expense"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams(t)
			params.Type = tt.txType
			params.SourceAccountID = tt.source
			params.DestinationAccountID = tt.destination
			params.ExpenseID = tt.expenseID
			params.IncomeID = tt.incomeID

			tx, err := transaction.New(params)

			if tt.wantErr != "" {
				require.ErrorIs(t, err, transaction.ErrInvalidArgument)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expenseID, tx.ExpenseID())
			assert.Equal(t, tt.incomeID, tx.IncomeID())
		})
	}
}

func TestNew_Normalization(t *testing.T) {
	lower := validParams(t)
	lower.UserID = "  user-1  "
	lower.Currency = "usd"

	upper := validParams(t)
	upper.Currency = "USD"

	a := mustNew(t, lower)
	b := mustNew(t, upper)

	assert.Equal(t, "USD", a.Currency())
	assert.Equal(t, b.Currency(), a.Currency())
	assert.Equal(t, "user-1", a.UserID())
}

func TestTransaction_StateMachine(t *testing.T) {
	t.Run("PendingToTerminal", func(t *testing.T) {
		for _, target := range []transaction.Status{
			transaction.StatusCompleted,
			transaction.StatusFailed,
			transaction.StatusCancelled,
		} {
			tx := mustNew(t, validParams(t))

			require.NoError(t, tx.UpdateStatus(target))
			assert.Equal(t, target, tx.Status())
			assert.True(t, tx.Status().IsFinal())
		}
	})

	t.Run("TerminalIsClosed", func(t *testing.T) {
		for _, initial := range []transaction.Status{
			transaction.StatusCompleted,
			transaction.StatusFailed,
			transaction.StatusCancelled,
		} {
			params := validParams(t)
			params.Status = initial
			tx := mustNew(t, params)

			for _, target := range allStatuses {
				err := tx.UpdateStatus(target)
				require.ErrorIs(t, err, transaction.ErrIllegalState, "%s -> %s", initial, target)
				assert.Contains(t, err.Error(), "cannot transition")
			}

			assert.Equal(t, initial, tx.Status())
		}
	})

	t.Run("PendingToPending", func(t *testing.T) {
		tx := mustNew(t, validParams(t))

		assert.ErrorIs(t, tx.UpdateStatus(transaction.StatusPending), transaction.ErrIllegalState)
	})
}

func TestTransaction_LifecycleShortcuts(t *testing.T) {
	tx := mustNew(t, validParams(t))
	require.NoError(t, tx.Complete())
	assert.True(t, tx.IsCompleted())

	tx = mustNew(t, validParams(t))
	require.NoError(t, tx.Cancel())
	assert.True(t, tx.IsCancelled())

	tx = mustNew(t, validParams(t))
	require.NoError(t, tx.MarkFailed())
	assert.True(t, tx.IsFailed())
}

func TestTransaction_CompletedCannotBeCancelled(t *testing.T) {
	params := validParams(t)
	params.Status = transaction.StatusCompleted
	tx := mustNew(t, params)

	err := tx.Cancel()
	require.ErrorIs(t, err, transaction.ErrIllegalState)
	assert.Contains(t, err.Error(), "cannot transition")
}

func TestTransaction_UpdateDescription(t *testing.T) {
	replacement, err := transaction.NewDescription("corrected memo")
	require.NoError(t, err)

	t.Run("PendingAllowed", func(t *testing.T) {
		tx := mustNew(t, validParams(t))

		require.NoError(t, tx.UpdateDescription(replacement))
		assert.Equal(t, "corrected memo", tx.Description().String())
	})

	t.Run("TerminalBlocked", func(t *testing.T) {
		for _, status := range []transaction.Status{
			transaction.StatusCompleted,
			transaction.StatusFailed,
			transaction.StatusCancelled,
		} {
			params := validParams(t)
			params.Status = status
			tx := mustNew(t, params)

			err := tx.UpdateDescription(replacement)
			require.ErrorIs(t, err, transaction.ErrIllegalState, "status %s", status)
			assert.Contains(t, err.Error(), "cannot update description")
			assert.Equal(t, "Savings transfer", tx.Description().String())
		}
	})

	t.Run("EmptyDescriptionRejected", func(t *testing.T) {
		tx := mustNew(t, validParams(t))

		assert.ErrorIs(t, tx.UpdateDescription(transaction.Description{}), transaction.ErrInvalidArgument)
	})
}

func TestTransaction_UpdatedAtRefreshes(t *testing.T) {
	tx := mustNew(t, validParams(t))
	before := tx.UpdatedAt()

	time.Sleep(time.Millisecond)
	require.NoError(t, tx.Complete())

	assert.True(t, tx.UpdatedAt().After(before))
	assert.Equal(t, before, tx.CreatedAt())
}

func TestTransaction_Predicates(t *testing.T) {
	tx := mustNew(t, validParams(t))

	assert.True(t, tx.BelongsTo("user-1"))
	assert.True(t, tx.BelongsTo("  user-1 "))
	assert.False(t, tx.BelongsTo("user-2"))

	assert.True(t, tx.InvolvesAccount("acc-a"))
	assert.True(t, tx.InvolvesAccount("acc-b"))
	assert.False(t, tx.InvolvesAccount("acc-c"))
	assert.False(t, tx.InvolvesAccount(""))
}

// Entity identity: equality is by id alone, never by field values.
func TestTransaction_Equal(t *testing.T) {
	params := validParams(t)
	a := mustNew(t, params)
	b := mustNew(t, params)

	assert.True(t, a.Equal(b))

	require.NoError(t, a.Complete())
	assert.True(t, a.Equal(b), "status change must not affect identity")

	other := validParams(t)
	c := mustNew(t, other)
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestNew_RehydrationKeepsTimestamps(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	updatedAt := time.Date(2024, 2, 2, 18, 45, 0, 0, time.UTC)

	params := validParams(t)
	params.Status = transaction.StatusCompleted
	params.CreatedAt = createdAt
	params.UpdatedAt = updatedAt

	tx := mustNew(t, params)

	assert.Equal(t, createdAt, tx.CreatedAt())
	assert.Equal(t, updatedAt, tx.UpdatedAt())
}
