package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedelmia/pos-api/internal/domain"
)

func TestCheckMoney(t *testing.T) {
	for _, s := range []string{"0", "20", "1.5", "1.50", "1.500", "-3.25", "9999999999.99"} {
		require.NoError(t, domain.CheckMoney(decimal.RequireFromString(s)), s)
	}
	for _, s := range []string{"0.333", "0.004", "12.001"} {
		assert.ErrorIs(t, domain.CheckMoney(decimal.RequireFromString(s)), domain.ErrInvalidAmount, s)
	}
	assert.ErrorIs(t, domain.CheckMoney(decimal.NewFromInt(1), decimal.RequireFromString("0.125")), domain.ErrInvalidAmount)
}

func TestCheckQuantity(t *testing.T) {
	require.NoError(t, domain.CheckQuantity(decimal.RequireFromString("2.125")))
	require.NoError(t, domain.CheckQuantity(decimal.RequireFromString("2.1250")))
	assert.ErrorIs(t, domain.CheckQuantity(decimal.RequireFromString("0.0005")), domain.ErrInvalidAmount)
}
