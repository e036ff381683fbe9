package services

import (
	"github.com/shopspring/decimal"
)

// FeeConfig holds the monthly free-transaction allowance and the flat
// commission charged once it is exhausted. Injected from configuration,
// never read from globals.
type FeeConfig struct {
	FreeTransactionLimit int             // Movements per calendar month before commission applies
	CommissionFee        decimal.Decimal // Flat fee charged on each movement past the limit
}

// ComputeFee returns the commission owed on the current movement given the
// number of the account's movements already recorded this calendar month.
//
// The fee is flat: once priorCountThisMonth reaches FreeTransactionLimit,
// every movement is charged CommissionFee regardless of its amount. A limit
// of zero or less makes every movement fee-liable. The count must be taken
// as of before the current movement is recorded.
func ComputeFee(priorCountThisMonth int, cfg FeeConfig) (decimal.Decimal, error) {
	if priorCountThisMonth < 0 {
		return decimal.Zero, ErrNegativeCount
	}
	if priorCountThisMonth >= cfg.FreeTransactionLimit {
		return cfg.CommissionFee, nil
	}
	return decimal.Zero, nil
}
