package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType identifies the kind of money movement a transaction records.
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// Transaction is an immutable record of a single money movement. A transfer
// produces two rows, one per side, linked through RelatedTransactionID.
type Transaction struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primarykey" json:"id"`
	WalletID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"wallet_id"`
	FromUserID           *uuid.UUID      `gorm:"type:uuid" json:"from_user_id,omitempty"`
	ToUserID             *uuid.UUID      `gorm:"type:uuid" json:"to_user_id,omitempty"`
	Type                 TransactionType `gorm:"size:20;not null" json:"type"`
	Amount               decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"amount"`
	Description          string          `json:"description,omitempty"`
	RelatedTransactionID *uuid.UUID      `gorm:"type:uuid" json:"related_transaction_id,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`

	// DestinationWalletID is carried on the request path only; transfers use
	// it to resolve the credit-side wallet. Never persisted.
	DestinationWalletID *uuid.UUID `gorm:"-" json:"-"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
