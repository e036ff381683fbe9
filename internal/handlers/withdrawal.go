package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-transactions/internal/logger"
	"github.com/sbilibin2017/gw-transactions/internal/models"
)

// WithdrawalService defines the interface that the service must implement.
type WithdrawalService interface {
	Withdraw(ctx context.Context, accountID, counterpartyID string, amount decimal.Decimal, description string) (*models.TransactionRecord, error)
}

// WithdrawalRequest represents the JSON body for registering a withdrawal
// swagger:model WithdrawalRequest
type WithdrawalRequest struct {
	// Account the funds leave from
	// required: true
	AccountID string `json:"account_id"`

	// Destination of the funds, free-form identifier
	CounterpartyID string `json:"counterparty_id"`

	// Amount to withdraw, must be positive and covered by the balance
	// required: true
	// default: 50.00
	Amount decimal.Decimal `json:"amount"`

	// Optional description stored on the ledger record
	Description string `json:"description"`
}

// NewWithdrawalHandler returns an HTTP handler for registering a withdrawal.
// @Summary Register a withdrawal
// @Description Registers a withdrawal movement after checking the balance covers it, persists the ledger record and debits the account.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.WithdrawalRequest true "Withdrawal Request"
// @Success 201 {object} models.TransactionRecord "Withdrawal registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or insufficient funds"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Failure 502 {object} handlers.ErrorResponse "Partial failure or account service unavailable"
// @Router /transactions/withdrawal [post]
// @Security BearerAuth
func NewWithdrawalHandler(svc WithdrawalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req WithdrawalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode withdrawal request", "error", err)
			writeBadRequest(w, "Invalid request body")
			return
		}

		record, err := svc.Withdraw(ctx, req.AccountID, req.CounterpartyID, req.Amount, req.Description)
		if err != nil {
			logger.Log.Errorw("failed to register withdrawal", "accountID", req.AccountID, "error", err)
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(record)
	}
}
