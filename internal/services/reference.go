package services

import (
	"strings"

	"github.com/google/uuid"
)

// NewReference returns a globally unique identifier for a ledger record.
// It is random and carries no information about the movement it identifies.
func NewReference() string {
	return uuid.NewString()
}

// NewReferenceNumber returns a short human-traceable reference token of the
// form TX-XXXXXXXXXX, stamped on records that have no caller-supplied
// reference. Like NewReference it is independent of the payload.
func NewReferenceNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "TX-" + strings.ToUpper(id[:10])
}
