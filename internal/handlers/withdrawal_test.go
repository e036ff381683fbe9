package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-transactions/internal/models"
	"github.com/sbilibin2017/gw-transactions/internal/services"
)

func TestWithdrawalHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(svc *MockWithdrawalService)
		expectedStatusCode int
	}{
		{
			name: "successful withdrawal",
			requestBody: WithdrawalRequest{
				AccountID:      "acc-1",
				CounterpartyID: "atm-3",
				Amount:         decimal.RequireFromString("50.00"),
			},
			setupMocks: func(svc *MockWithdrawalService) {
				svc.EXPECT().
					Withdraw(gomock.Any(), "acc-1", "atm-3", decEq("50.00"), "").
					Return(sampleRecord("acc-1", models.Withdrawal, "50.00"), nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			setupMocks:         func(svc *MockWithdrawalService) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "insufficient funds",
			requestBody: WithdrawalRequest{
				AccountID: "acc-1",
				Amount:    decimal.RequireFromString("1000000.00"),
			},
			setupMocks: func(svc *MockWithdrawalService) {
				svc.EXPECT().
					Withdraw(gomock.Any(), "acc-1", "", decEq("1000000.00"), "").
					Return(nil, services.ErrInsufficientFunds)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "balance propagation failed after persisting",
			requestBody: WithdrawalRequest{
				AccountID: "acc-1",
				Amount:    decimal.RequireFromString("50.00"),
			},
			setupMocks: func(svc *MockWithdrawalService) {
				svc.EXPECT().
					Withdraw(gomock.Any(), "acc-1", "", decEq("50.00"), "").
					Return(nil, &services.PartialFailureError{RecordID: "rec-1", Err: assert.AnError})
			},
			expectedStatusCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockWithdrawalService(ctrl)
			tt.setupMocks(svc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/withdrawal", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			NewWithdrawalHandler(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)

			if tt.expectedStatusCode == http.StatusBadGateway {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "rec-1", resp.RecordID)
			}
		})
	}
}
