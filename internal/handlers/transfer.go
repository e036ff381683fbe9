package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-transactions/internal/logger"
	"github.com/sbilibin2017/gw-transactions/internal/models"
)

// TransferService defines the interface that the service must implement.
type TransferService interface {
	Transfer(ctx context.Context, intent models.TransferIntent, internal bool) (*models.TransactionRecord, error)
}

// TransferRequest represents the JSON body for registering a transfer
// swagger:model TransferRequest
type TransferRequest struct {
	// Account the funds leave from
	// required: true
	SourceAccountID string `json:"source_account_id"`

	// Account the funds arrive at
	// required: true
	DestinationAccountID string `json:"destination_account_id"`

	// Amount to transfer, must be positive
	// required: true
	// default: 50.00
	Amount decimal.Decimal `json:"amount"`

	// Optional description stored on both ledger records
	Description string `json:"description"`

	// Whether both accounts must belong to the same customer
	// default: false
	Internal bool `json:"internal"`
}

// NewTransferHandler returns an HTTP handler for registering a transfer.
// @Summary Register a transfer
// @Description Moves funds between two accounts. Persists a debit record on the source, a credit record on the destination and propagates both balances. Internal transfers additionally require both accounts to share an owner.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.TransferRequest true "Transfer Request"
// @Success 201 {object} models.TransactionRecord "Debit record of the transfer"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or ownership mismatch"
// @Failure 404 {object} handlers.ErrorResponse "Source or destination account not found"
// @Failure 502 {object} handlers.ErrorResponse "Partial failure or account service unavailable"
// @Router /transactions/transfer [post]
// @Security BearerAuth
func NewTransferHandler(svc TransferService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode transfer request", "error", err)
			writeBadRequest(w, "Invalid request body")
			return
		}

		intent := models.TransferIntent{
			SourceAccountID:      req.SourceAccountID,
			DestinationAccountID: req.DestinationAccountID,
			Amount:               req.Amount,
			Description:          req.Description,
		}

		record, err := svc.Transfer(ctx, intent, req.Internal)
		if err != nil {
			logger.Log.Errorw("failed to register transfer",
				"sourceAccountID", req.SourceAccountID,
				"destinationAccountID", req.DestinationAccountID,
				"error", err,
			)
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(record)
	}
}
