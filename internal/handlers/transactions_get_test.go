package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-transactions/internal/models"
	"github.com/sbilibin2017/gw-transactions/internal/services"
)

func TestGetTransactionHandler(t *testing.T) {
	record := sampleRecord("acc-1", models.Deposit, "100.00")

	tests := []struct {
		name               string
		id                 string
		setupMocks         func(svc *MockTransactionReader)
		expectedStatusCode int
	}{
		{
			name: "found",
			id:   "rec-1",
			setupMocks: func(svc *MockTransactionReader) {
				svc.EXPECT().FindByID(gomock.Any(), "rec-1").Return(record, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name: "not found",
			id:   "missing",
			setupMocks: func(svc *MockTransactionReader) {
				svc.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, services.ErrTransactionNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockTransactionReader(ctrl)
			tt.setupMocks(svc)

			router := chi.NewRouter()
			router.Get("/api/v1/transactions/{id}", NewGetTransactionHandler(svc))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/transactions/"+tt.id, nil))

			assert.Equal(t, tt.expectedStatusCode, rec.Code)

			if tt.expectedStatusCode == http.StatusOK {
				var got models.TransactionRecord
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, record.ID, got.ID)
			}
		})
	}
}

func TestListTransactionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockTransactionReader(ctrl)
	svc.EXPECT().
		FindBySource(gomock.Any(), "acc-1").
		Return([]models.TransactionRecord{
			*sampleRecord("acc-1", models.Deposit, "100.00"),
			*sampleRecord("acc-1", models.Withdrawal, "50.00"),
		}, nil)

	router := chi.NewRouter()
	router.Get("/api/v1/accounts/{accountId}/transactions", NewListTransactionsHandler(svc))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/acc-1/transactions", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []models.TransactionRecord
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 2)
}

func TestListTransactionsHandler_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockTransactionReader(ctrl)
	svc.EXPECT().FindBySource(gomock.Any(), "acc-1").Return(nil, nil)

	router := chi.NewRouter()
	router.Get("/api/v1/accounts/{accountId}/transactions", NewListTransactionsHandler(svc))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/acc-1/transactions", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
