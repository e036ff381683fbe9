package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType is the kind of monetary movement a ledger record represents.
type MovementType string

// Supported movement types
const (
	Deposit           MovementType = "DEPOSIT"
	Withdrawal        MovementType = "WITHDRAWAL"
	Payment           MovementType = "PAYMENT"
	Consumption       MovementType = "CONSUMPTION"
	TransferInternal  MovementType = "TRANSFER_INTERNAL"
	TransferExternal  MovementType = "TRANSFER_EXTERNAL"
	ThirdPartyPayment MovementType = "THIRD_PARTY_PAYMENT"
)

// Valid reports whether t is one of the supported movement types.
func (t MovementType) Valid() bool {
	switch t {
	case Deposit, Withdrawal, Payment, Consumption,
		TransferInternal, TransferExternal, ThirdPartyPayment:
		return true
	}
	return false
}

// TransactionRecord is one immutable ledger entry. It is created exactly once,
// after all preconditions for its movement succeed, and is never updated or
// deleted afterwards.
//
// Amount is signed: debits are negative, credits positive, relative to
// AccountID. Fee is non-negative and zero unless the account's monthly
// free-transaction allowance was already exhausted when the movement happened.
type TransactionRecord struct {
	ID              string          `json:"id" db:"id"`                             // Unique record identifier, assigned at creation
	AccountID       string          `json:"account_id" db:"account_id"`             // Source account of the movement
	CounterpartyID  string          `json:"counterparty_id" db:"counterparty_id"`   // Related entity: destination account, credit, card or product id
	Type            MovementType    `json:"type" db:"type"`                         // Movement type
	Amount          decimal.Decimal `json:"amount" db:"amount"`                     // Signed amount, fee included
	Fee             decimal.Decimal `json:"fee" db:"fee"`                           // Commission charged on this movement, zero if none
	Timestamp       time.Time       `json:"timestamp" db:"timestamp"`               // Creation instant
	Description     string          `json:"description,omitempty" db:"description"` // Optional free text
	ProviderName    string          `json:"provider_name,omitempty" db:"provider_name"`
	ReferenceNumber string          `json:"reference_number,omitempty" db:"reference_number"` // Human-traceable reference token
}

// TransferIntent is the transient request value for a transfer between two
// accounts. It is not persisted; it expands into the debit and credit ledger
// records of the transfer.
type TransferIntent struct {
	SourceAccountID      string          `json:"source_account_id"`
	DestinationAccountID string          `json:"destination_account_id"`
	Amount               decimal.Decimal `json:"amount"` // Requested amount, must be positive
	Description          string          `json:"description,omitempty"`
}
