package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-transactions/internal/logger"
	"github.com/sbilibin2017/gw-transactions/internal/models"
)

// AccountGateway defines the calls this service makes against the remote
// account service.
type AccountGateway interface {
	Exists(ctx context.Context, accountID string) (bool, error)                                                        // Reports whether the account exists
	OwnerOf(ctx context.Context, accountID string) (string, error)                                                     // Returns the owning customer id
	GetBalance(ctx context.Context, accountID string) (*models.Balance, error)                                         // Returns the current balance view
	UpdateBalance(ctx context.Context, accountID string, delta decimal.Decimal) (*models.Account, error)               // Applies a signed delta to the balance
	FeeFor(ctx context.Context, accountID string) (decimal.Decimal, error)                                             // Returns the account-level commission
	IncrementTransactionCount(ctx context.Context, accountID string, fee decimal.Decimal) (*models.Account, error)     // Bumps the monthly movement counter
}

// LedgerWriter defines append operations on the ledger store.
type LedgerWriter interface {
	Save(ctx context.Context, record models.TransactionRecord) (*models.TransactionRecord, error) // Appends one record
}

// LedgerReader defines read operations on the ledger store.
type LedgerReader interface {
	FindByID(ctx context.Context, id string) (*models.TransactionRecord, error)                                                            // Returns nil when absent
	FindBySource(ctx context.Context, accountID string) ([]models.TransactionRecord, error)                                                // All records of an account, newest first
	FindBySourceAndCounterparty(ctx context.Context, accountID, counterpartyID string, limit int) ([]models.TransactionRecord, error)      // Newest first, bounded
}

// OwnerCache caches account ownership lookups.
type OwnerCache interface {
	GetOwner(ctx context.Context, accountID string) (string, error)        // Returns cached owning customer id
	SetOwner(ctx context.Context, accountID, customerID string) error      // Caches the owning customer id
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionService orchestrates funds movements: it computes commissions
// from the monthly allowance, appends immutable ledger records, propagates
// balance deltas to the account service and publishes ledger events.
type TransactionService struct {
	writeRepo  LedgerWriter
	readRepo   LedgerReader
	accounts   AccountGateway
	ownerCache OwnerCache
	kafka      KafkaWriter

	feeConfig FeeConfig
	// remoteFeeSource makes the account service the fee authority,
	// superseding the local fee policy.
	remoteFeeSource bool
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	writeRepo LedgerWriter,
	readRepo LedgerReader,
	accounts AccountGateway,
	ownerCache OwnerCache,
	kafka KafkaWriter,
	feeConfig FeeConfig,
	remoteFeeSource bool,
) *TransactionService {
	return &TransactionService{
		writeRepo:       writeRepo,
		readRepo:        readRepo,
		accounts:        accounts,
		ownerCache:      ownerCache,
		kafka:           kafka,
		feeConfig:       feeConfig,
		remoteFeeSource: remoteFeeSource,
	}
}

// monthWindow returns the bounds of asOf's calendar month. Records count
// toward the allowance when their timestamp is strictly inside the window.
func monthWindow(asOf time.Time) (start, end time.Time) {
	start = time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	return start, start.AddDate(0, 1, 0)
}

// CountThisMonth returns how many of the account's ledger records fall inside
// the current calendar month. The wall clock is read once, so a single request
// cannot straddle the month boundary.
func (svc *TransactionService) CountThisMonth(ctx context.Context, accountID string) (int, error) {
	start, end := monthWindow(time.Now())

	records, err := svc.readRepo.FindBySource(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to load account history", "accountID", accountID, "error", err)
		return 0, err
	}

	count := 0
	for _, r := range records {
		if r.Timestamp.After(start) && r.Timestamp.Before(end) {
			count++
		}
	}
	return count, nil
}

// resolveFee returns the commission for the account's next movement. When the
// account service is configured as the fee authority its answer supersedes the
// local policy.
func (svc *TransactionService) resolveFee(ctx context.Context, accountID string) (decimal.Decimal, error) {
	if svc.remoteFeeSource {
		fee, err := svc.accounts.FeeFor(ctx, accountID)
		if err != nil {
			logger.Log.Errorw("failed to fetch remote fee", "accountID", accountID, "error", err)
			return decimal.Zero, err
		}
		return fee, nil
	}

	count, err := svc.CountThisMonth(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return ComputeFee(count, svc.feeConfig)
}

// RegisterSimple records one movement on an account. The fee is layered onto
// the requested amount in the direction of the movement's sign, so the
// account's outflow always grows by the commission. No remote state is
// touched; store failures propagate unchanged.
func (svc *TransactionService) RegisterSimple(ctx context.Context, accountID, counterpartyID string, movementType models.MovementType, amount decimal.Decimal, description string) (*models.TransactionRecord, error) {
	if !movementType.Valid() {
		return nil, ErrInvalidMovementType
	}

	fee, err := svc.resolveFee(ctx, accountID)
	if err != nil {
		return nil, err
	}

	finalAmount := amount
	if fee.IsPositive() {
		if amount.IsNegative() {
			finalAmount = finalAmount.Sub(fee)
		} else {
			finalAmount = finalAmount.Add(fee)
		}
	}

	record := models.TransactionRecord{
		ID:              NewReference(),
		AccountID:       accountID,
		CounterpartyID:  counterpartyID,
		Type:            movementType,
		Amount:          finalAmount,
		Fee:             fee,
		Timestamp:       time.Now(),
		Description:     description,
		ReferenceNumber: NewReferenceNumber(),
	}

	saved, err := svc.writeRepo.Save(ctx, record)
	if err != nil {
		logger.Log.Errorw("failed to persist movement", "accountID", accountID, "type", movementType, "error", err)
		return nil, err
	}

	svc.publishMovement(ctx, saved)
	return saved, nil
}

// Deposit credits an account and propagates the balance increase. The ledger
// record carries the commission, but only the requested amount reaches the
// balance: the fee stays with the bank, it is never credited to the customer.
func (svc *TransactionService) Deposit(ctx context.Context, accountID, counterpartyID string, amount decimal.Decimal, description string) (*models.TransactionRecord, error) {
	if err := svc.validateAccount(ctx, accountID, amount); err != nil {
		return nil, err
	}

	record, err := svc.RegisterSimple(ctx, accountID, counterpartyID, models.Deposit, amount, description)
	if err != nil {
		return nil, err
	}

	if _, err := svc.accounts.UpdateBalance(ctx, accountID, record.Amount.Sub(record.Fee)); err != nil {
		return nil, svc.partialFailure(record, err)
	}
	return record, nil
}

// Withdraw debits an account after checking the balance covers the requested
// amount, and propagates the balance decrease including the commission.
func (svc *TransactionService) Withdraw(ctx context.Context, accountID, counterpartyID string, amount decimal.Decimal, description string) (*models.TransactionRecord, error) {
	if err := svc.validateAccount(ctx, accountID, amount); err != nil {
		return nil, err
	}

	balance, err := svc.accounts.GetBalance(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to read balance", "accountID", accountID, "error", err)
		return nil, err
	}
	if balance.Balance.LessThan(amount) {
		logger.Log.Warnw("insufficient funds for withdrawal", "accountID", accountID, "amount", amount)
		return nil, ErrInsufficientFunds
	}

	record, err := svc.RegisterSimple(ctx, accountID, counterpartyID, models.Withdrawal, amount, description)
	if err != nil {
		return nil, err
	}

	if _, err := svc.accounts.UpdateBalance(ctx, accountID, record.Amount.Neg()); err != nil {
		return nil, svc.partialFailure(record, err)
	}
	return record, nil
}

// PayCredit records a payment toward a credit product and debits the account.
func (svc *TransactionService) PayCredit(ctx context.Context, accountID, creditID string, amount decimal.Decimal, description string) (*models.TransactionRecord, error) {
	return svc.registerOutflow(ctx, accountID, creditID, models.Payment, amount, description)
}

// ConsumeCard records a card consumption and debits the account.
func (svc *TransactionService) ConsumeCard(ctx context.Context, accountID, cardID string, amount decimal.Decimal, description string) (*models.TransactionRecord, error) {
	return svc.registerOutflow(ctx, accountID, cardID, models.Consumption, amount, description)
}

func (svc *TransactionService) registerOutflow(ctx context.Context, accountID, counterpartyID string, movementType models.MovementType, amount decimal.Decimal, description string) (*models.TransactionRecord, error) {
	if err := svc.validateAccount(ctx, accountID, amount); err != nil {
		return nil, err
	}

	record, err := svc.RegisterSimple(ctx, accountID, counterpartyID, movementType, amount, description)
	if err != nil {
		return nil, err
	}

	if _, err := svc.accounts.UpdateBalance(ctx, accountID, record.Amount.Neg()); err != nil {
		return nil, svc.partialFailure(record, err)
	}
	return record, nil
}

// Transfer executes the transfer saga between two accounts. Validation and,
// for internal transfers, the ownership check complete before anything is
// persisted. The debit leg is durably recorded before the credit leg, so a
// crash in between leaves a reconcilable one-sided entry rather than a lost
// transfer. There is no automatic compensation: any upstream failure after
// the debit leg surfaces as *PartialFailureError.
func (svc *TransactionService) Transfer(ctx context.Context, intent models.TransferIntent, internal bool) (*models.TransactionRecord, error) {
	if err := svc.validateTransfer(ctx, intent); err != nil {
		return nil, err
	}

	if internal {
		if err := svc.checkSameOwner(ctx, intent.SourceAccountID, intent.DestinationAccountID); err != nil {
			return nil, err
		}
	}

	// The destination side of a transfer never incurs a fee.
	fee, err := svc.resolveFee(ctx, intent.SourceAccountID)
	if err != nil {
		return nil, err
	}

	movementType := models.TransferExternal
	if internal {
		movementType = models.TransferInternal
	}

	now := time.Now()
	debit := models.TransactionRecord{
		ID:              NewReference(),
		AccountID:       intent.SourceAccountID,
		CounterpartyID:  intent.DestinationAccountID,
		Type:            movementType,
		Amount:          intent.Amount.Neg().Sub(fee),
		Fee:             fee,
		Timestamp:       now,
		Description:     intent.Description,
		ReferenceNumber: NewReferenceNumber(),
	}

	savedDebit, err := svc.writeRepo.Save(ctx, debit)
	if err != nil {
		logger.Log.Errorw("failed to persist debit leg",
			"sourceAccountID", intent.SourceAccountID, "destinationAccountID", intent.DestinationAccountID, "error", err)
		return nil, err
	}

	credit := models.TransactionRecord{
		ID:              NewReference(),
		AccountID:       intent.DestinationAccountID,
		CounterpartyID:  intent.SourceAccountID,
		Type:            movementType,
		Amount:          intent.Amount,
		Fee:             decimal.Zero,
		Timestamp:       now,
		Description:     intent.Description,
		ReferenceNumber: savedDebit.ReferenceNumber,
	}

	if _, err := svc.writeRepo.Save(ctx, credit); err != nil {
		return nil, svc.partialFailure(savedDebit, err)
	}

	// The two balance updates touch disjoint accounts and may run concurrently.
	var wg sync.WaitGroup
	var sourceErr, destErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, sourceErr = svc.accounts.UpdateBalance(ctx, intent.SourceAccountID, intent.Amount.Neg())
	}()
	go func() {
		defer wg.Done()
		_, destErr = svc.accounts.UpdateBalance(ctx, intent.DestinationAccountID, intent.Amount)
	}()
	wg.Wait()

	if sourceErr != nil {
		return nil, svc.partialFailure(savedDebit, sourceErr)
	}
	if destErr != nil {
		return nil, svc.partialFailure(savedDebit, destErr)
	}

	if _, err := svc.accounts.IncrementTransactionCount(ctx, intent.SourceAccountID, fee); err != nil {
		return nil, svc.partialFailure(savedDebit, err)
	}

	svc.publishMovement(ctx, savedDebit)
	return savedDebit, nil
}

// ThirdPartyPayment records a payment to an external provider. The debited
// amount grows by the commission; provider name and reference number are
// attached verbatim.
func (svc *TransactionService) ThirdPartyPayment(ctx context.Context, accountID, productID, providerName string, amount decimal.Decimal, referenceNumber string) (*models.TransactionRecord, error) {
	if err := svc.validateAccount(ctx, accountID, amount); err != nil {
		return nil, err
	}

	fee, err := svc.resolveFee(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if referenceNumber == "" {
		referenceNumber = NewReferenceNumber()
	}

	record := models.TransactionRecord{
		ID:              NewReference(),
		AccountID:       accountID,
		CounterpartyID:  productID,
		Type:            models.ThirdPartyPayment,
		Amount:          amount.Neg().Sub(fee),
		Fee:             fee,
		Timestamp:       time.Now(),
		Description:     fmt.Sprintf("Payment to %s - %s", providerName, productID),
		ProviderName:    providerName,
		ReferenceNumber: referenceNumber,
	}

	saved, err := svc.writeRepo.Save(ctx, record)
	if err != nil {
		logger.Log.Errorw("failed to persist third-party payment", "accountID", accountID, "provider", providerName, "error", err)
		return nil, err
	}

	svc.publishMovement(ctx, saved)
	return saved, nil
}

// LastMovements returns the account's most recent movements against one
// counterparty, newest first. A non-positive limit defaults to 10.
func (svc *TransactionService) LastMovements(ctx context.Context, accountID, counterpartyID string, limit int) ([]models.TransactionRecord, error) {
	exists, err := svc.accounts.Exists(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to check account existence", "accountID", accountID, "error", err)
		return nil, err
	}
	if !exists {
		return nil, ErrAccountNotFound
	}

	if limit <= 0 {
		limit = 10
	}
	return svc.readRepo.FindBySourceAndCounterparty(ctx, accountID, counterpartyID, limit)
}

// FindByID returns one ledger record.
func (svc *TransactionService) FindByID(ctx context.Context, id string) (*models.TransactionRecord, error) {
	record, err := svc.readRepo.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load record", "id", id, "error", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrTransactionNotFound
	}
	return record, nil
}

// FindBySource returns the full movement history of an account, newest first.
func (svc *TransactionService) FindBySource(ctx context.Context, accountID string) ([]models.TransactionRecord, error) {
	return svc.readRepo.FindBySource(ctx, accountID)
}

func (svc *TransactionService) validateAccount(ctx context.Context, accountID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}

	exists, err := svc.accounts.Exists(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to check account existence", "accountID", accountID, "error", err)
		return err
	}
	if !exists {
		logger.Log.Warnw("account does not exist", "accountID", accountID)
		return ErrAccountNotFound
	}
	return nil
}

func (svc *TransactionService) validateTransfer(ctx context.Context, intent models.TransferIntent) error {
	if !intent.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}

	sourceExists, err := svc.accounts.Exists(ctx, intent.SourceAccountID)
	if err != nil {
		logger.Log.Errorw("failed to check source account", "accountID", intent.SourceAccountID, "error", err)
		return err
	}
	if !sourceExists {
		return ErrAccountNotFound
	}

	destExists, err := svc.accounts.Exists(ctx, intent.DestinationAccountID)
	if err != nil {
		logger.Log.Errorw("failed to check destination account", "accountID", intent.DestinationAccountID, "error", err)
		return err
	}
	if !destExists {
		return ErrDestinationAccountNotFound
	}
	return nil
}

// checkSameOwner resolves the owning customer of both accounts, consulting
// the cache before the account service.
func (svc *TransactionService) checkSameOwner(ctx context.Context, sourceAccountID, destinationAccountID string) error {
	sourceOwner, err := svc.ownerOf(ctx, sourceAccountID)
	if err != nil {
		return err
	}
	destOwner, err := svc.ownerOf(ctx, destinationAccountID)
	if err != nil {
		return err
	}

	if sourceOwner == "" || destOwner == "" || sourceOwner != destOwner {
		logger.Log.Warnw("ownership mismatch on internal transfer",
			"sourceAccountID", sourceAccountID, "destinationAccountID", destinationAccountID)
		return ErrOwnershipMismatch
	}
	return nil
}

func (svc *TransactionService) ownerOf(ctx context.Context, accountID string) (string, error) {
	if svc.ownerCache != nil {
		if owner, err := svc.ownerCache.GetOwner(ctx, accountID); err == nil && owner != "" {
			return owner, nil
		}
	}

	owner, err := svc.accounts.OwnerOf(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to resolve account owner", "accountID", accountID, "error", err)
		return "", err
	}

	if svc.ownerCache != nil && owner != "" {
		if err := svc.ownerCache.SetOwner(ctx, accountID, owner); err != nil {
			logger.Log.Errorw("failed to cache account owner", "accountID", accountID, "error", err)
		}
	}
	return owner, nil
}

// partialFailure logs and wraps an upstream failure that happened after the
// record was persisted. The record id makes the one-sided entry discoverable.
func (svc *TransactionService) partialFailure(record *models.TransactionRecord, err error) error {
	logger.Log.Errorw("partial failure after persisting record",
		"recordID", record.ID, "accountID", record.AccountID, "type", record.Type, "error", err)
	return &PartialFailureError{RecordID: record.ID, Err: err}
}

// publishMovement publishes a persisted record to Kafka. Publish failures are
// logged and never fail the movement.
func (svc *TransactionService) publishMovement(ctx context.Context, record *models.TransactionRecord) {
	if svc.kafka == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "recordID", record.ID)
		return
	}

	data, err := json.Marshal(record)
	if err != nil {
		logger.Log.Errorw("failed to marshal record for Kafka", "recordID", record.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(record.ID),
		Value: data,
	}

	if err := svc.kafka.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish record to Kafka", "recordID", record.ID, "error", err)
	} else {
		logger.Log.Infow("record published to Kafka", "recordID", record.ID, "type", record.Type, "amount", record.Amount)
	}
}
