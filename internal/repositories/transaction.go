package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-transactions/internal/logger"
	"github.com/sbilibin2017/gw-transactions/internal/models"
)

// TransactionWriteRepository appends ledger records. The ledger is append-only:
// no update or delete statement exists anywhere in this package.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save appends one record and returns the persisted row.
func (r *TransactionWriteRepository) Save(ctx context.Context, record models.TransactionRecord) (*models.TransactionRecord, error) {
	query := `
		INSERT INTO transactions
			(id, account_id, counterparty_id, type, amount, fee, timestamp, description, provider_name, reference_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, account_id, counterparty_id, type, amount, fee, timestamp, description, provider_name, reference_number
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var saved models.TransactionRecord
	err := sqlx.GetContext(ctx, executor, &saved, query,
		record.ID, record.AccountID, record.CounterpartyID, record.Type,
		record.Amount, record.Fee, record.Timestamp,
		record.Description, record.ProviderName, record.ReferenceNumber,
	)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{record.ID, record.AccountID, record.Type, record.Amount},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// TransactionReadRepository reads ledger records.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// FindByID returns one record, or nil when no record has that id.
func (r *TransactionReadRepository) FindByID(ctx context.Context, id string) (*models.TransactionRecord, error) {
	const query = `
		SELECT id, account_id, counterparty_id, type, amount, fee, timestamp, description, provider_name, reference_number
		FROM transactions
		WHERE id = $1
	`

	var record models.TransactionRecord
	err := r.db.GetContext(ctx, &record, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// FindBySource returns every record of an account, newest first.
func (r *TransactionReadRepository) FindBySource(ctx context.Context, accountID string) ([]models.TransactionRecord, error) {
	const query = `
		SELECT id, account_id, counterparty_id, type, amount, fee, timestamp, description, provider_name, reference_number
		FROM transactions
		WHERE account_id = $1
		ORDER BY timestamp DESC
	`

	var records []models.TransactionRecord
	err := r.db.SelectContext(ctx, &records, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result_count", len(records),
		"error", err,
	)

	return records, err
}

// FindBySourceAndCounterparty returns the account's records against one
// counterparty, newest first, bounded to limit.
func (r *TransactionReadRepository) FindBySourceAndCounterparty(ctx context.Context, accountID, counterpartyID string, limit int) ([]models.TransactionRecord, error) {
	const query = `
		SELECT id, account_id, counterparty_id, type, amount, fee, timestamp, description, provider_name, reference_number
		FROM transactions
		WHERE account_id = $1 AND counterparty_id = $2
		ORDER BY timestamp DESC
		LIMIT $3
	`

	var records []models.TransactionRecord
	err := r.db.SelectContext(ctx, &records, query, accountID, counterpartyID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, counterpartyID, limit},
		"result_count", len(records),
		"error", err,
	)

	return records, err
}
