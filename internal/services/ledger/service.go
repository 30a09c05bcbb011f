package ledger

import (
	"context"
	"time"

	"walletcore/internal/models"
	"walletcore/internal/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Cache is the subset of the cache service the engine uses.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	GenerateKey(entityType, keyType string, value interface{}) string
}

// Service is the entry point for ledger operations.
type Service interface {
	// Process resolves the wallet reference, dispatches the transaction to
	// the processor for its type, and returns the persisted record.
	Process(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)

	GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListTransactions(ctx context.Context, limit, offset int) ([]models.Transaction, error)
}

type service struct {
	repo       repositories.LedgerRepository
	dispatcher *Dispatcher
	cache      Cache
	metrics    MetricsCollector
}

// NewService wires the validator, balance manager and the three operation
// processors into a dispatching ledger service.
func NewService(repo repositories.LedgerRepository, cache Cache, metrics MetricsCollector) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		panic("cache is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	validator := NewValidator()
	balances := NewBalanceManager()
	dispatcher := NewDispatcher(
		NewDepositProcessor(repo, validator, balances),
		NewWithdrawProcessor(repo, validator, balances),
		NewTransferProcessor(repo, validator, balances),
	)

	return &service{
		repo:       repo,
		dispatcher: dispatcher,
		cache:      cache,
		metrics:    metrics,
	}
}

func (s *service) Process(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	// The wallet reference must resolve before anything is dispatched.
	if _, err := s.repo.GetWalletByID(tx.WalletID); err != nil {
		return nil, err
	}

	processor, err := s.dispatcher.Route(tx.Type)
	if err != nil {
		logrus.WithField("type", tx.Type).Error("no processor for transaction type")
		s.metrics.RecordError(string(tx.Type), "no_processor")
		return nil, err
	}

	touched := touchedPairs(tx)

	processed, err := processor.Process(ctx, tx)
	if err != nil {
		s.metrics.RecordError(string(tx.Type), "process_failed")
		return nil, err
	}

	s.metrics.RecordTransaction(string(processed.Type), processed.Amount)
	s.invalidateUserWallets(ctx, touched)
	s.cacheTransaction(ctx, processed)

	logrus.WithFields(logrus.Fields{
		"transaction_id": processed.ID,
		"type":           processed.Type,
		"wallet_id":      processed.WalletID,
		"amount":         processed.Amount,
	}).Info("transaction processed")

	return processed, nil
}

func (s *service) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	key := s.cache.GenerateKey(TransactionCachePrefix, "id", id)
	var cached models.Transaction
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	tx, err := s.repo.GetTransactionByID(id)
	if err != nil {
		return nil, err
	}
	s.cacheTransaction(ctx, tx)
	return tx, nil
}

func (s *service) ListTransactions(ctx context.Context, limit, offset int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.repo.ListTransactions(limit, offset)
}

type userWalletPair struct {
	userID   uuid.UUID
	walletID uuid.UUID
}

// touchedPairs lists the user-wallets an operation may mutate, captured
// before processing since the transaction is modified in flight.
func touchedPairs(tx *models.Transaction) []userWalletPair {
	var pairs []userWalletPair
	switch tx.Type {
	case models.TransactionTypeDeposit:
		if tx.ToUserID != nil {
			pairs = append(pairs, userWalletPair{*tx.ToUserID, tx.WalletID})
		}
	case models.TransactionTypeWithdraw:
		if tx.FromUserID != nil {
			pairs = append(pairs, userWalletPair{*tx.FromUserID, tx.WalletID})
		}
	case models.TransactionTypeTransfer:
		if tx.FromUserID != nil {
			pairs = append(pairs, userWalletPair{*tx.FromUserID, tx.WalletID})
		}
		if tx.ToUserID != nil && tx.DestinationWalletID != nil {
			pairs = append(pairs, userWalletPair{*tx.ToUserID, *tx.DestinationWalletID})
		}
	}
	return pairs
}

func (s *service) invalidateUserWallets(ctx context.Context, pairs []userWalletPair) {
	keys := make([]string, 0, len(pairs))
	for _, p := range pairs {
		keys = append(keys, s.cache.GenerateKey(UserWalletCachePrefix, "pair", p.userID.String()+":"+p.walletID.String()))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logrus.WithError(err).Warn("failed to invalidate user wallet cache")
	}
}

func (s *service) cacheTransaction(ctx context.Context, tx *models.Transaction) {
	key := s.cache.GenerateKey(TransactionCachePrefix, "id", tx.ID)
	if err := s.cache.SetWithTTL(ctx, key, tx, time.Hour); err != nil {
		logrus.WithError(err).Warn("failed to cache transaction")
	}
}
