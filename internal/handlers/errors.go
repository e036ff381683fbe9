package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-transactions/internal/facades"
	"github.com/sbilibin2017/gw-transactions/internal/logger"
	"github.com/sbilibin2017/gw-transactions/internal/services"
)

// ErrorResponse is the JSON body returned on any handler failure.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`

	// Identifier of the ledger record that was persisted before the
	// failure, present only when the movement completed partially.
	RecordID string `json:"record_id,omitempty"`
}

// writeError maps a service error onto an HTTP status and JSON body.
//
// Validation failures return 400, missing accounts or records 404. A partial
// failure, where the debit record is already persisted but a later step
// failed, returns 502 together with the persisted record id so the caller
// can reconcile. Account service outages also map to 502. Anything else
// is a 500.
func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var partial *services.PartialFailureError
	if errors.As(err, &partial) {
		logger.Log.Errorw("movement completed partially", "record_id", partial.RecordID, "error", partial.Err)
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error:    "Movement completed partially: " + partial.Err.Error(),
			RecordID: partial.RecordID,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrAccountNotFound),
		errors.Is(err, services.ErrDestinationAccountNotFound),
		errors.Is(err, services.ErrTransactionNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, services.ErrNonPositiveAmount),
		errors.Is(err, services.ErrOwnershipMismatch),
		errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrInvalidMovementType):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, facades.ErrAccountServiceUnavailable):
		w.WriteHeader(http.StatusBadGateway)
	default:
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
		return
	}

	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}
