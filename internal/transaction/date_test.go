package transaction_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreis/penny/internal/transaction"
)

func TestNewDate(t *testing.T) {
	type testCase struct {
		name    string
		value   time.Time
		wantErr bool
	}

	tests := []testCase{
		{name: "Past", value: time.Date(2023, 10, 27, 0, 0, 0, 0, time.UTC)},
		{name: "Today", value: time.Now()},
		{name: "Tomorrow", value: time.Now().AddDate(0, 0, 1), wantErr: true},
		{name: "Zero", value: time.Time{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := transaction.NewDate(tt.value)

			if tt.wantErr {
				assert.ErrorIs(t, err, transaction.ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, time.UTC, got.Time().Location())
			assert.Zero(t, got.Time().Hour())
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := transaction.ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", got.String())

	_, err = transaction.ParseDate("15/01/2024")
	assert.ErrorIs(t, err, transaction.ErrInvalidArgument)

	_, err = transaction.ParseDate("")
	assert.ErrorIs(t, err, transaction.ErrInvalidArgument)
}

func TestDate_Ordering(t *testing.T) {
	earlier, err := transaction.NewDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	later, err := transaction.NewDate(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(later))
	assert.False(t, earlier.Before(earlier))
	assert.True(t, earlier.Equal(earlier))
}

func TestToday(t *testing.T) {
	today := transaction.Today()

	assert.False(t, today.IsZero())
	assert.False(t, today.After(transaction.Today()))
}
