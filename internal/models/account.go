package models

import "github.com/shopspring/decimal"

// Account mirrors the account representation returned by the remote account
// service after a balance or counter update.
type Account struct {
	ID            string          `json:"id"`
	AccountNumber string          `json:"account_number"`
	Type          string          `json:"type"`
	CustomerID    string          `json:"customer_id"`
	Balance       decimal.Decimal `json:"balance"`
}

// Balance mirrors the balance view exposed by the remote account service.
type Balance struct {
	AccountID                 string          `json:"account_id"`
	AccountNumber             string          `json:"account_number"`
	AccountType               string          `json:"account_type"`
	Balance                   decimal.Decimal `json:"balance"`
	RemainingMonthlyMovements int             `json:"remaining_monthly_movements"`
}
