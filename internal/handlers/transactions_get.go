package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-transactions/internal/logger"
	"github.com/sbilibin2017/gw-transactions/internal/models"
)

// TransactionReader defines the interface that the service must implement.
type TransactionReader interface {
	FindByID(ctx context.Context, id string) (*models.TransactionRecord, error)
	FindBySource(ctx context.Context, accountID string) ([]models.TransactionRecord, error)
}

// NewGetTransactionHandler returns an HTTP handler fetching a single ledger
// record by id.
// @Summary Get a transaction
// @Description Returns the ledger record with the given id.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.TransactionRecord "Ledger record"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /transactions/{id} [get]
// @Security BearerAuth
func NewGetTransactionHandler(svc TransactionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id := chi.URLParam(r, "id")

		record, err := svc.FindByID(ctx, id)
		if err != nil {
			logger.Log.Errorw("failed to get transaction", "id", id, "error", err)
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(record)
	}
}

// NewListTransactionsHandler returns an HTTP handler listing every ledger
// record where the given account is the source, newest first.
// @Summary List account transactions
// @Description Returns all ledger records where the account is the source, newest first.
// @Tags transactions
// @Produce json
// @Param accountId path string true "Account ID"
// @Success 200 {array} models.TransactionRecord "Ledger records, newest first"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /accounts/{accountId}/transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		accountID := chi.URLParam(r, "accountId")

		records, err := svc.FindBySource(ctx, accountID)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "accountID", accountID, "error", err)
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
