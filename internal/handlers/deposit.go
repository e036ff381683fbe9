package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-transactions/internal/logger"
	"github.com/sbilibin2017/gw-transactions/internal/models"
)

// DepositService defines the interface that the service must implement.
type DepositService interface {
	Deposit(ctx context.Context, accountID, counterpartyID string, amount decimal.Decimal, description string) (*models.TransactionRecord, error)
}

// DepositRequest represents the JSON body for registering a deposit
// swagger:model DepositRequest
type DepositRequest struct {
	// Account receiving the funds
	// required: true
	AccountID string `json:"account_id"`

	// Origin of the funds, free-form identifier
	CounterpartyID string `json:"counterparty_id"`

	// Amount to deposit, must be positive
	// required: true
	// default: 100.00
	Amount decimal.Decimal `json:"amount"`

	// Optional description stored on the ledger record
	Description string `json:"description"`
}

// NewDepositHandler returns an HTTP handler for registering a deposit.
// @Summary Register a deposit
// @Description Registers a deposit movement, persists the ledger record and credits the account balance.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.DepositRequest true "Deposit Request"
// @Success 201 {object} models.TransactionRecord "Deposit registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Failure 502 {object} handlers.ErrorResponse "Partial failure or account service unavailable"
// @Router /transactions/deposit [post]
// @Security BearerAuth
func NewDepositHandler(svc DepositService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode deposit request", "error", err)
			writeBadRequest(w, "Invalid request body")
			return
		}

		record, err := svc.Deposit(ctx, req.AccountID, req.CounterpartyID, req.Amount, req.Description)
		if err != nil {
			logger.Log.Errorw("failed to register deposit", "accountID", req.AccountID, "error", err)
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(record)
	}
}
