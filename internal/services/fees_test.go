package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeFee(t *testing.T) {
	fee := decimal.RequireFromString("2.50")

	tests := []struct {
		name       string
		priorCount int
		limit      int
		expected   decimal.Decimal
	}{
		{name: "well under limit", priorCount: 0, limit: 20, expected: decimal.Zero},
		{name: "one under limit", priorCount: 19, limit: 20, expected: decimal.Zero},
		{name: "exactly at limit", priorCount: 20, limit: 20, expected: fee},
		{name: "over limit", priorCount: 35, limit: 20, expected: fee},
		{name: "zero limit charges every movement", priorCount: 0, limit: 0, expected: fee},
		{name: "negative limit charges every movement", priorCount: 0, limit: -1, expected: fee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeFee(tt.priorCount, FeeConfig{FreeTransactionLimit: tt.limit, CommissionFee: fee})
			assert.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestComputeFee_NegativeCount(t *testing.T) {
	_, err := ComputeFee(-1, FeeConfig{FreeTransactionLimit: 20, CommissionFee: decimal.RequireFromString("2.50")})
	assert.ErrorIs(t, err, ErrNegativeCount)
}

func TestComputeFee_IndependentOfConfigAmounts(t *testing.T) {
	// The charged fee is exactly the configured one, whatever its value.
	for _, raw := range []string{"0.01", "1.00", "2.50", "999.99"} {
		fee := decimal.RequireFromString(raw)
		got, err := ComputeFee(20, FeeConfig{FreeTransactionLimit: 20, CommissionFee: fee})
		assert.NoError(t, err)
		assert.True(t, fee.Equal(got))
	}
}
