package services

import (
	"errors"
	"fmt"
)

// Validation errors. Generated locally, surfaced to the caller as a client
// fault, and never produced after a mutation has taken effect.
var (
	ErrAccountNotFound            = errors.New("account not found")
	ErrDestinationAccountNotFound = errors.New("destination account not found")
	ErrNonPositiveAmount          = errors.New("amount must be greater than zero")
	ErrOwnershipMismatch          = errors.New("accounts must belong to the same customer")
	ErrInsufficientFunds          = errors.New("insufficient funds")
	ErrInvalidMovementType        = errors.New("invalid movement type")
	ErrNegativeCount              = errors.New("prior transaction count cannot be negative")
	ErrTransactionNotFound        = errors.New("transaction not found")
)

// PartialFailureError reports an upstream failure that happened after a ledger
// record was already durably persisted. The ledger entry stays in place; the
// error carries its id so an operator or reconciliation job can find the
// one-sided record. This error must never be swallowed.
type PartialFailureError struct {
	RecordID string
	Err      error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("partial failure after persisting record %s: %v", e.RecordID, e.Err)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}
