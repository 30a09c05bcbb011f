package repositories

import (
	"errors"
	"fmt"

	"walletcore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userWalletRepository struct {
	db *gorm.DB
}

func NewUserWalletRepository(db *gorm.DB) UserWalletRepository {
	return &userWalletRepository{db: db}
}

func (r *userWalletRepository) Create(uw *models.UserWallet) error {
	if err := r.db.Create(uw).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: userId=%s walletId=%s", ErrDuplicateUserWallet, uw.UserID, uw.WalletID)
		}
		return fmt.Errorf("failed to create user wallet: %w", err)
	}
	return nil
}

func (r *userWalletRepository) GetByID(id uuid.UUID) (*models.UserWallet, error) {
	var uw models.UserWallet
	if err := r.db.First(&uw, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrUserWalletNotFound, id)
		}
		return nil, fmt.Errorf("failed to get user wallet: %w", err)
	}
	return &uw, nil
}

func (r *userWalletRepository) GetByUserAndWallet(userID, walletID uuid.UUID) (*models.UserWallet, error) {
	var uw models.UserWallet
	err := r.db.Where("user_id = ? AND wallet_id = ?", userID, walletID).First(&uw).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: userId=%s walletId=%s", ErrUserWalletNotFound, userID, walletID)
		}
		return nil, fmt.Errorf("failed to get user wallet: %w", err)
	}
	return &uw, nil
}

func (r *userWalletRepository) List() ([]models.UserWallet, error) {
	var uws []models.UserWallet
	if err := r.db.Order("created_at").Find(&uws).Error; err != nil {
		return nil, fmt.Errorf("failed to list user wallets: %w", err)
	}
	return uws, nil
}

func (r *userWalletRepository) ListByUser(userID uuid.UUID) ([]models.UserWallet, error) {
	var uws []models.UserWallet
	if err := r.db.Where("user_id = ?", userID).Find(&uws).Error; err != nil {
		return nil, fmt.Errorf("failed to list user wallets by user: %w", err)
	}
	return uws, nil
}

func (r *userWalletRepository) ListByWallet(walletID uuid.UUID) ([]models.UserWallet, error) {
	var uws []models.UserWallet
	if err := r.db.Where("wallet_id = ?", walletID).Find(&uws).Error; err != nil {
		return nil, fmt.Errorf("failed to list user wallets by wallet: %w", err)
	}
	return uws, nil
}

func (r *userWalletRepository) Update(uw *models.UserWallet) error {
	if err := r.db.Save(uw).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: userId=%s walletId=%s", ErrDuplicateUserWallet, uw.UserID, uw.WalletID)
		}
		return fmt.Errorf("failed to update user wallet: %w", err)
	}
	return nil
}

func (r *userWalletRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.UserWallet{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserWalletNotFound
	}
	return nil
}
