package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BalanceHistory is an append-only audit record of a user-wallet balance
// taken immediately after a mutation. Rows are inserted by the ledger
// engine and never updated or deleted.
type BalanceHistory struct {
	ID         uuid.UUID       `gorm:"type:uuid;primarykey" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	WalletID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"wallet_id"`
	Balance    decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"balance"`
	RecordedAt time.Time       `gorm:"autoCreateTime" json:"recorded_at"`
}

func (h *BalanceHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

func (BalanceHistory) TableName() string { return "balance_history" }
