package repositories

import (
	"walletcore/internal/models"

	"github.com/google/uuid"
)

// WalletRepository defines wallet CRUD operations.
type WalletRepository interface {
	Create(wallet *models.Wallet) error
	GetByID(id uuid.UUID) (*models.Wallet, error)
	GetByName(name string) (*models.Wallet, error)
	List() ([]models.Wallet, error)
	Update(wallet *models.Wallet) error
	Delete(id uuid.UUID) error
}

// UserWalletRepository defines user-wallet CRUD operations. Balance writes
// go through LedgerRepository only.
type UserWalletRepository interface {
	Create(uw *models.UserWallet) error
	GetByID(id uuid.UUID) (*models.UserWallet, error)
	GetByUserAndWallet(userID, walletID uuid.UUID) (*models.UserWallet, error)
	List() ([]models.UserWallet, error)
	ListByUser(userID uuid.UUID) ([]models.UserWallet, error)
	ListByWallet(walletID uuid.UUID) ([]models.UserWallet, error)
	Update(uw *models.UserWallet) error
	Delete(id uuid.UUID) error
}
