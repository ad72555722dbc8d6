package account_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreis/penny/internal/account"
)

func TestParseKind(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    account.Kind
		wantErr bool
	}

	tests := []testCase{
		{name: "Exact", input: "CHECKING", want: account.KindChecking},
		{name: "Lowercase", input: "savings", want: account.KindSavings},
		{name: "Padded", input: " cash ", want: account.KindCash},
		{name: "Unknown", input: "BROKERAGE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := account.ParseKind(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccount_CreditDebit(t *testing.T) {
	acc := &account.Account{
		Kind:    account.KindChecking,
		Balance: decimal.RequireFromString("50.00"),
	}

	acc.Credit(decimal.RequireFromString("25.00"))
	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("75.00")))

	require.NoError(t, acc.Debit(decimal.RequireFromString("75.00")))
	assert.True(t, acc.Balance.IsZero())

	err := acc.Debit(decimal.RequireFromString("0.01"))
	assert.ErrorIs(t, err, account.ErrInsufficientFunds)
	assert.True(t, acc.Balance.IsZero(), "failed debit must not change the balance")
}

func TestAccount_CreditKindMayGoNegative(t *testing.T) {
	acc := &account.Account{
		Kind:    account.KindCredit,
		Balance: decimal.Zero,
	}

	require.NoError(t, acc.Debit(decimal.RequireFromString("120.00")))
	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("-120.00")))
}
