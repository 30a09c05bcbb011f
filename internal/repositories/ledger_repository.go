package repositories

import (
	"context"

	"walletcore/internal/models"

	"github.com/google/uuid"
)

// LedgerRepository defines the persistence operations the ledger engine
// needs: locked balance reads, balance and history writes, transaction
// record writes, and a transactional unit of work that scopes them.
type LedgerRepository interface {
	// GetUserWalletLocked fetches the user-wallet row for the (user, wallet)
	// pair under an exclusive row lock. It blocks concurrent locked reads and
	// writes of the same row until the current unit of work ends. Returns
	// ErrUserWalletNotFound if no row exists and ErrLockTimeout if the lock
	// is not acquired within the configured wait.
	GetUserWalletLocked(ctx context.Context, userID, walletID uuid.UUID) (*models.UserWallet, error)

	SaveUserWallet(uw *models.UserWallet) error
	CreateBalanceHistory(h *models.BalanceHistory) error

	CreateTransaction(tx *models.Transaction) error
	SaveTransaction(tx *models.Transaction) error
	GetTransactionByID(id uuid.UUID) (*models.Transaction, error)
	ListTransactions(limit, offset int) ([]models.Transaction, error)

	GetWalletByID(id uuid.UUID) (*models.Wallet, error)

	// ExecuteInTransaction runs fn against a repository scoped to one
	// database transaction. Every write fn performs commits atomically or
	// not at all.
	ExecuteInTransaction(ctx context.Context, fn func(LedgerRepository) error) error
}
