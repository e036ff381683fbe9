package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-transactions/internal/logger"
	"github.com/sbilibin2017/gw-transactions/internal/models"
)

// PaymentService defines the interface that the service must implement.
type PaymentService interface {
	PayCredit(ctx context.Context, accountID, creditID string, amount decimal.Decimal, description string) (*models.TransactionRecord, error)
}

// PaymentRequest represents the JSON body for registering a credit payment
// swagger:model PaymentRequest
type PaymentRequest struct {
	// Account the payment is charged to
	// required: true
	AccountID string `json:"account_id"`

	// Credit being paid
	// required: true
	CreditID string `json:"credit_id"`

	// Amount to pay, must be positive
	// required: true
	// default: 200.00
	Amount decimal.Decimal `json:"amount"`

	// Optional description stored on the ledger record
	Description string `json:"description"`
}

// NewPaymentHandler returns an HTTP handler for registering a credit payment.
// @Summary Register a credit payment
// @Description Registers a payment movement against a credit and persists the ledger record.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.PaymentRequest true "Payment Request"
// @Success 201 {object} models.TransactionRecord "Payment registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Failure 502 {object} handlers.ErrorResponse "Partial failure or account service unavailable"
// @Router /transactions/payment [post]
// @Security BearerAuth
func NewPaymentHandler(svc PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req PaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode payment request", "error", err)
			writeBadRequest(w, "Invalid request body")
			return
		}

		record, err := svc.PayCredit(ctx, req.AccountID, req.CreditID, req.Amount, req.Description)
		if err != nil {
			logger.Log.Errorw("failed to register payment", "accountID", req.AccountID, "creditID", req.CreditID, "error", err)
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(record)
	}
}
