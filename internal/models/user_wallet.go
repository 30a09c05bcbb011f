package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserWallet is one user's balance within a wallet. At most one row exists
// per (user, wallet) pair and the balance never goes below zero. Balance is
// only ever written by the ledger engine while the row lock is held.
type UserWallet struct {
	ID        uuid.UUID       `gorm:"type:uuid;primarykey" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_user_wallet" json:"user_id"`
	WalletID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_user_wallet" json:"wallet_id"`
	Balance   decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (uw *UserWallet) BeforeCreate(tx *gorm.DB) error {
	if uw.ID == uuid.Nil {
		uw.ID = uuid.New()
	}
	return nil
}

func (UserWallet) TableName() string { return "user_wallets" }
