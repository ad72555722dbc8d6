package transaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreis/penny/internal/transaction"
)

func TestType_Rules(t *testing.T) {
	type testCase struct {
		txType              transaction.Type
		requiresSource      bool
		requiresDestination bool
		linksExpense        bool
		linksIncome         bool
	}

	tests := []testCase{
		{txType: transaction.TypeTransfer, requiresSource: true, requiresDestination: true},
		{txType: transaction.TypeDeposit, requiresDestination: true},
		{txType: transaction.TypeWithdrawal, requiresSource: true},
		{txType: transaction.TypePayment, requiresSource: true, linksExpense: true},
		{txType: transaction.TypeRefund, requiresDestination: true, linksIncome: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.txType), func(t *testing.T) {
			assert.Equal(t, tt.requiresSource, tt.txType.RequiresSourceAccount())
			assert.Equal(t, tt.requiresDestination, tt.txType.RequiresDestinationAccount())
			assert.Equal(t, tt.linksExpense, tt.txType.CanLinkToExpense())
			assert.Equal(t, tt.linksIncome, tt.txType.CanLinkToIncome())
		})
	}
}

func TestParseType(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    transaction.Type
		wantErr bool
	}

	tests := []testCase{
		{name: "Exact", input: "TRANSFER", want: transaction.TypeTransfer},
		{name: "Lowercase", input: "deposit", want: transaction.TypeDeposit},
		{name: "Padded", input: "  withdrawal ", want: transaction.TypeWithdrawal},
		{name: "MixedCase", input: "Payment", want: transaction.TypePayment},
		{name: "Unknown", input: "LOAN", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := transaction.ParseType(tt.input)

			if tt.wantErr {
				require.ErrorIs(t, err, transaction.ErrInvalidArgument)
				assert.Contains(t, err.Error(), "TRANSFER, DEPOSIT, WITHDRAWAL, PAYMENT, REFUND")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
