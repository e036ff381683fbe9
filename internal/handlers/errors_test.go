package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-transactions/internal/facades"
	"github.com/sbilibin2017/gw-transactions/internal/services"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"account not found", services.ErrAccountNotFound, http.StatusNotFound},
		{"destination not found", services.ErrDestinationAccountNotFound, http.StatusNotFound},
		{"transaction not found", services.ErrTransactionNotFound, http.StatusNotFound},
		{"non positive amount", services.ErrNonPositiveAmount, http.StatusBadRequest},
		{"ownership mismatch", services.ErrOwnershipMismatch, http.StatusBadRequest},
		{"insufficient funds", services.ErrInsufficientFunds, http.StatusBadRequest},
		{"invalid movement type", services.ErrInvalidMovementType, http.StatusBadRequest},
		{"account service down", fmt.Errorf("%w: connection refused", facades.ErrAccountServiceUnavailable), http.StatusBadGateway},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tt.err)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var resp ErrorResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestWriteError_PartialFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, &services.PartialFailureError{
		RecordID: "rec-42",
		Err:      errors.New("credit leg rejected"),
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp ErrorResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "rec-42", resp.RecordID)
	assert.Contains(t, resp.Error, "credit leg rejected")
}

func TestWriteError_WrappedPartialFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	inner := &services.PartialFailureError{RecordID: "rec-7", Err: errors.New("upstream")}
	writeError(rec, fmt.Errorf("transfer: %w", inner))

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp ErrorResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "rec-7", resp.RecordID)
}
