package transaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreis/penny/internal/transaction"
)

func TestNewID(t *testing.T) {
	a := transaction.NewID()
	b := transaction.NewID()

	assert.False(t, a.IsZero())
	assert.NotEqual(t, a, b)
}

func TestParseID(t *testing.T) {
	original := transaction.NewID()

	parsed, err := transaction.ParseID(original.String())
	require.NoError(t, err)
	assert.Equal(t, original, parsed)

	_, err = transaction.ParseID("")
	assert.ErrorIs(t, err, transaction.ErrInvalidArgument)

	_, err = transaction.ParseID("   ")
	assert.ErrorIs(t, err, transaction.ErrInvalidArgument)

	_, err = transaction.ParseID("not-a-uuid")
	assert.ErrorIs(t, err, transaction.ErrInvalidArgument)
}
