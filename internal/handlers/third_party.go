package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-transactions/internal/logger"
	"github.com/sbilibin2017/gw-transactions/internal/models"
)

// ThirdPartyService defines the interface that the service must implement.
type ThirdPartyService interface {
	ThirdPartyPayment(ctx context.Context, accountID, productID, providerName string, amount decimal.Decimal, referenceNumber string) (*models.TransactionRecord, error)
}

// ThirdPartyPaymentRequest represents the JSON body for registering a payment
// initiated by an external provider.
// swagger:model ThirdPartyPaymentRequest
type ThirdPartyPaymentRequest struct {
	// Account the payment is charged to
	// required: true
	AccountID string `json:"account_id"`

	// Product bought from the provider
	// required: true
	ProductID string `json:"product_id"`

	// Name of the external provider
	// required: true
	// default: Netflix
	ProviderName string `json:"provider_name"`

	// Amount charged, must be positive
	// required: true
	// default: 15.00
	Amount decimal.Decimal `json:"amount"`

	// Provider-supplied reference, generated when empty
	ReferenceNumber string `json:"reference_number"`
}

// NewThirdPartyHandler returns an HTTP handler for registering a third-party payment.
// @Summary Register a third-party payment
// @Description Registers a payment initiated by an external provider and persists the ledger record. A provider-supplied reference number is stored verbatim, otherwise one is generated.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.ThirdPartyPaymentRequest true "Third-party Payment Request"
// @Success 201 {object} models.TransactionRecord "Payment registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Failure 502 {object} handlers.ErrorResponse "Partial failure or account service unavailable"
// @Router /transactions/third-party [post]
// @Security BearerAuth
func NewThirdPartyHandler(svc ThirdPartyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req ThirdPartyPaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode third-party payment request", "error", err)
			writeBadRequest(w, "Invalid request body")
			return
		}

		record, err := svc.ThirdPartyPayment(ctx, req.AccountID, req.ProductID, req.ProviderName, req.Amount, req.ReferenceNumber)
		if err != nil {
			logger.Log.Errorw("failed to register third-party payment",
				"accountID", req.AccountID,
				"provider", req.ProviderName,
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
