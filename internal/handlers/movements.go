package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-transactions/internal/logger"
	"github.com/sbilibin2017/gw-transactions/internal/models"
)

// MovementsService defines the interface that the service must implement.
type MovementsService interface {
	LastMovements(ctx context.Context, accountID, counterpartyID string, limit int) ([]models.TransactionRecord, error)
}

// NewMovementsHandler returns an HTTP handler listing the most recent
// movements between an account and a counterparty, newest first.
// @Summary List last movements
// @Description Returns the most recent movements between the account and the given counterparty, newest first. Defaults to 10 when no limit is given.
// @Tags transactions
// @Produce json
// @Param accountId path string true "Account ID"
// @Param counterpartyId query string true "Counterparty ID"
// @Param limit query int false "Maximum number of records, default 10"
// @Success 200 {array} models.TransactionRecord "Movements, newest first"
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Failure 502 {object} handlers.ErrorResponse "Account service unavailable"
// @Router /accounts/{accountId}/movements [get]
// @Security BearerAuth
func NewMovementsHandler(svc MovementsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		accountID := chi.URLParam(r, "accountId")
		counterpartyID := r.URL.Query().Get("counterpartyId")

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				logger.Log.Warnw("invalid limit", "limit", raw)
				writeBadRequest(w, "Invalid limit")
				return
			}
			limit = parsed
		}

		records, err := svc.LastMovements(ctx, accountID, counterpartyID, limit)
		if err != nil {
			logger.Log.Errorw("failed to list movements", "accountID", accountID, "counterpartyID", counterpartyID, "error", err)
			writeError(w, err)
			return
		}

		if records == nil {
			records = []models.TransactionRecord{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(records)
	}
}
