package transaction_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreis/penny/internal/transaction"
)

func TestNewDescription(t *testing.T) {
	type testCase struct {
		name    string
		value   string
		want    string
		wantErr bool
	}

	tests := []testCase{
		{name: "Plain", value: "Monthly rent", want: "Monthly rent"},
		{name: "Trimmed", value: "  groceries  ", want: "groceries"},
		{name: "MaxLength", value: strings.Repeat("a", 255), want: strings.Repeat("a", 255)},
		{name: "Empty", value: "", wantErr: true},
		{name: "BlankAfterTrim", value: "   \t ", wantErr: true},
		{name: "TooLong", value: strings.Repeat("a", 256), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := transaction.NewDescription(tt.value)

			if tt.wantErr {
				assert.ErrorIs(t, err, transaction.ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, len(tt.want), got.Len())
		})
	}
}

func TestDescription_Contains(t *testing.T) {
	d, err := transaction.NewDescription("Coffee at Central Station")
	require.NoError(t, err)

	assert.True(t, d.Contains("coffee"))
	assert.True(t, d.Contains("CENTRAL"))
	assert.False(t, d.Contains("tea"))
	assert.False(t, d.Contains(""))
}
