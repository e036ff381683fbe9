package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-transactions/internal/logger"
	"github.com/sbilibin2017/gw-transactions/internal/models"
)

// ErrAccountServiceUnavailable marks upstream failures of the remote account
// service: transport errors, timeouts and non-success responses. Callers use
// it to tell retryable upstream faults apart from validation faults.
var ErrAccountServiceUnavailable = errors.New("account service unavailable")

// AccountHTTPFacade implements the account gateway over the account service's
// REST API.
type AccountHTTPFacade struct {
	baseURL string
	client  *http.Client
}

// NewAccountHTTPFacade creates a new facade with the given base URL and client.
func NewAccountHTTPFacade(baseURL string, client *http.Client) *AccountHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &AccountHTTPFacade{baseURL: baseURL, client: client}
}

// Exists reports whether the account exists. A 404 means the account does not
// exist; any other failure is an upstream error.
func (f *AccountHTTPFacade) Exists(ctx context.Context, accountID string) (bool, error) {
	resp, err := f.get(ctx, fmt.Sprintf("/accounts/%s/exists", url.PathEscape(accountID)))
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode != http.StatusOK:
		return false, f.unexpectedStatus("exists", accountID, resp.StatusCode)
	}

	var exists bool
	if err := json.NewDecoder(resp.Body).Decode(&exists); err != nil {
		logger.Log.Errorw("failed to decode existence response", "accountID", accountID, "error", err)
		return false, fmt.Errorf("%w: %v", ErrAccountServiceUnavailable, err)
	}
	return exists, nil
}

// OwnerOf returns the owning customer id of an account.
func (f *AccountHTTPFacade) OwnerOf(ctx context.Context, accountID string) (string, error) {
	resp, err := f.get(ctx, fmt.Sprintf("/accounts/%s/owner", url.PathEscape(accountID)))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", f.unexpectedStatus("owner", accountID, resp.StatusCode)
	}

	var customerID string
	if err := json.NewDecoder(resp.Body).Decode(&customerID); err != nil {
		logger.Log.Errorw("failed to decode owner response", "accountID", accountID, "error", err)
		return "", fmt.Errorf("%w: %v", ErrAccountServiceUnavailable, err)
	}
	return customerID, nil
}

// GetBalance returns the current balance view of an account.
func (f *AccountHTTPFacade) GetBalance(ctx context.Context, accountID string) (*models.Balance, error) {
	resp, err := f.get(ctx, fmt.Sprintf("/accounts/%s/balance", url.PathEscape(accountID)))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, f.unexpectedStatus("balance", accountID, resp.StatusCode)
	}

	var balance models.Balance
	if err := json.NewDecoder(resp.Body).Decode(&balance); err != nil {
		logger.Log.Errorw("failed to decode balance response", "accountID", accountID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrAccountServiceUnavailable, err)
	}
	return &balance, nil
}

// UpdateBalance applies a signed delta to the account balance and returns the
// updated account.
func (f *AccountHTTPFacade) UpdateBalance(ctx context.Context, accountID string, delta decimal.Decimal) (*models.Account, error) {
	path := fmt.Sprintf("/accounts/%s/balance?amount=%s", url.PathEscape(accountID), url.QueryEscape(delta.String()))
	resp, err := f.put(ctx, path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, f.unexpectedStatus("update balance", accountID, resp.StatusCode)
	}

	var account models.Account
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		logger.Log.Errorw("failed to decode account response", "accountID", accountID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrAccountServiceUnavailable, err)
	}
	return &account, nil
}

// FeeFor returns the account-level commission the account service has
// configured for the account's next movement.
func (f *AccountHTTPFacade) FeeFor(ctx context.Context, accountID string) (decimal.Decimal, error) {
	resp, err := f.get(ctx, fmt.Sprintf("/accounts/%s/transaction-fee", url.PathEscape(accountID)))
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, f.unexpectedStatus("transaction fee", accountID, resp.StatusCode)
	}

	var fee decimal.Decimal
	if err := json.NewDecoder(resp.Body).Decode(&fee); err != nil {
		logger.Log.Errorw("failed to decode fee response", "accountID", accountID, "error", err)
		return decimal.Zero, fmt.Errorf("%w: %v", ErrAccountServiceUnavailable, err)
	}
	return fee, nil
}

// IncrementTransactionCount bumps the account's monthly movement counter and,
// when fee is positive, applies the commission on the account side.
func (f *AccountHTTPFacade) IncrementTransactionCount(ctx context.Context, accountID string, fee decimal.Decimal) (*models.Account, error) {
	path := fmt.Sprintf("/accounts/%s/transaction-count?fee=%s", url.PathEscape(accountID), url.QueryEscape(fee.String()))
	resp, err := f.put(ctx, path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, f.unexpectedStatus("increment transaction count", accountID, resp.StatusCode)
	}

	var account models.Account
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		logger.Log.Errorw("failed to decode account response", "accountID", accountID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrAccountServiceUnavailable, err)
	}
	return &account, nil
}

func (f *AccountHTTPFacade) get(ctx context.Context, path string) (*http.Response, error) {
	return f.do(ctx, http.MethodGet, path)
}

func (f *AccountHTTPFacade) put(ctx context.Context, path string) (*http.Response, error) {
	return f.do(ctx, http.MethodPut, path)
}

func (f *AccountHTTPFacade) do(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, f.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAccountServiceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("account service call failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrAccountServiceUnavailable, err)
	}
	return resp, nil
}

func (f *AccountHTTPFacade) unexpectedStatus(operation, accountID string, status int) error {
	logger.Log.Errorw("unexpected account service response",
		"operation", operation, "accountID", accountID, "status", status)
	return fmt.Errorf("%w: %s returned status %d", ErrAccountServiceUnavailable, operation, status)
}
