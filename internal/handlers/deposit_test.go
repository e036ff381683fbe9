package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-transactions/internal/models"
	"github.com/sbilibin2017/gw-transactions/internal/services"
)

// decMatcher compares decimal arguments by value, since equal decimals can
// have different internal representations.
type decMatcher struct{ want decimal.Decimal }

func (m decMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decMatcher) String() string {
	return fmt.Sprintf("decimal equal to %s", m.want)
}

func decEq(s string) gomock.Matcher {
	return decMatcher{want: decimal.RequireFromString(s)}
}

func sampleRecord(accountID string, movementType models.MovementType, amount string) *models.TransactionRecord {
	return &models.TransactionRecord{
		ID:              "rec-1",
		AccountID:       accountID,
		Type:            movementType,
		Amount:          decimal.RequireFromString(amount),
		Fee:             decimal.Zero,
		Timestamp:       time.Now().UTC(),
		ReferenceNumber: "TX-ABCDEF1234",
	}
}

func TestDepositHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(svc *MockDepositService)
		expectedStatusCode int
	}{
		{
			name: "successful deposit",
			requestBody: DepositRequest{
				AccountID:      "acc-1",
				CounterpartyID: "atm-9",
				Amount:         decimal.RequireFromString("100.00"),
				Description:    "cash deposit",
			},
			setupMocks: func(svc *MockDepositService) {
				svc.EXPECT().
					Deposit(gomock.Any(), "acc-1", "atm-9", decEq("100.00"), "cash deposit").
					Return(sampleRecord("acc-1", models.Deposit, "100.00"), nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			setupMocks:         func(svc *MockDepositService) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "account not found",
			requestBody: DepositRequest{
				AccountID: "missing",
				Amount:    decimal.RequireFromString("100.00"),
			},
			setupMocks: func(svc *MockDepositService) {
				svc.EXPECT().
					Deposit(gomock.Any(), "missing", "", decEq("100.00"), "").
					Return(nil, services.ErrAccountNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name: "non positive amount",
			requestBody: DepositRequest{
				AccountID: "acc-1",
				Amount:    decimal.RequireFromString("-5.00"),
			},
			setupMocks: func(svc *MockDepositService) {
				svc.EXPECT().
					Deposit(gomock.Any(), "acc-1", "", decEq("-5.00"), "").
					Return(nil, services.ErrNonPositiveAmount)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockDepositService(ctrl)
			tt.setupMocks(svc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/deposit", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			NewDepositHandler(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)

			if tt.expectedStatusCode == http.StatusCreated {
				var got models.TransactionRecord
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, "rec-1", got.ID)
				assert.Equal(t, models.Deposit, got.Type)
			}
		})
	}
}
