package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-transactions/internal/logger"
	"github.com/sbilibin2017/gw-transactions/internal/models"
)

// ConsumptionService defines the interface that the service must implement.
type ConsumptionService interface {
	ConsumeCard(ctx context.Context, accountID, cardID string, amount decimal.Decimal, description string) (*models.TransactionRecord, error)
}

// ConsumptionRequest represents the JSON body for registering a card consumption
// swagger:model ConsumptionRequest
type ConsumptionRequest struct {
	// Account the consumption is charged to
	// required: true
	AccountID string `json:"account_id"`

	// Card used for the consumption
	// required: true
	CardID string `json:"card_id"`

	// Amount consumed, must be positive
	// required: true
	// default: 25.00
	Amount decimal.Decimal `json:"amount"`

	// Optional description stored on the ledger record
	Description string `json:"description"`
}

// NewConsumptionHandler returns an HTTP handler for registering a card consumption.
// @Summary Register a card consumption
// @Description Registers a consumption movement made with a card and persists the ledger record.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.ConsumptionRequest true "Consumption Request"
// @Success 201 {object} models.TransactionRecord "Consumption registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Failure 502 {object} handlers.ErrorResponse "Partial failure or account service unavailable"
// @Router /transactions/consumption [post]
// @Security BearerAuth
func NewConsumptionHandler(svc ConsumptionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req ConsumptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode consumption request", "error", err)
			writeBadRequest(w, "Invalid request body")
			return
		}

		record, err := svc.ConsumeCard(ctx, req.AccountID, req.CardID, req.Amount, req.Description)
		if err != nil {
			logger.Log.Errorw("failed to register consumption", "accountID", req.AccountID, "cardID", req.CardID, "error", err)
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(record)
	}
}
