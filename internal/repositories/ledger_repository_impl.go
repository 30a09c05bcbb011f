package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"walletcore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultLockWait bounds how long a locked read waits for a contended row.
const DefaultLockWait = 5 * time.Second

type ledgerRepository struct {
	db       *gorm.DB
	lockWait time.Duration
}

func NewLedgerRepository(db *gorm.DB, lockWait time.Duration) LedgerRepository {
	if lockWait <= 0 {
		lockWait = DefaultLockWait
	}
	return &ledgerRepository{db: db, lockWait: lockWait}
}

func (r *ledgerRepository) GetUserWalletLocked(ctx context.Context, userID, walletID uuid.UUID) (*models.UserWallet, error) {
	var uw models.UserWallet
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND wallet_id = ?", userID, walletID).
		First(&uw).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: userId=%s walletId=%s", ErrUserWalletNotFound, userID, walletID)
		}
		if isLockTimeout(err) {
			return nil, fmt.Errorf("%w: userId=%s walletId=%s", ErrLockTimeout, userID, walletID)
		}
		return nil, fmt.Errorf("failed to lock user wallet: %w", err)
	}
	return &uw, nil
}

func (r *ledgerRepository) SaveUserWallet(uw *models.UserWallet) error {
	if err := r.db.Save(uw).Error; err != nil {
		return fmt.Errorf("failed to save user wallet: %w", err)
	}
	return nil
}

func (r *ledgerRepository) CreateBalanceHistory(h *models.BalanceHistory) error {
	if err := r.db.Create(h).Error; err != nil {
		return fmt.Errorf("failed to append balance history: %w", err)
	}
	return nil
}

func (r *ledgerRepository) CreateTransaction(tx *models.Transaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *ledgerRepository) SaveTransaction(tx *models.Transaction) error {
	if err := r.db.Save(tx).Error; err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *ledgerRepository) GetTransactionByID(id uuid.UUID) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrTransactionNotFound, id)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

func (r *ledgerRepository) ListTransactions(limit, offset int) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

func (r *ledgerRepository) GetWalletByID(id uuid.UUID) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.First(&wallet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrWalletNotFound, id)
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *ledgerRepository) ExecuteInTransaction(ctx context.Context, fn func(LedgerRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Bound every FOR UPDATE wait in this unit of work. SET LOCAL scopes
		// the setting to the current transaction.
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockWait.Milliseconds())
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to set lock timeout: %w", err)
		}
		return fn(&ledgerRepository{db: tx, lockWait: r.lockWait})
	})
}
