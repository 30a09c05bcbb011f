package ledger

import (
	"fmt"

	"walletcore/internal/models"

	"github.com/shopspring/decimal"
)

// Validator holds the pure transaction checks. It keeps no state and
// performs no I/O; every method is a function of its arguments.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateType fails unless the transaction carries the expected type.
func (v *Validator) ValidateType(tx *models.Transaction, expected models.TransactionType) error {
	if tx.Type != expected {
		return fmt.Errorf("%w: want %s, got %s", ErrInvalidType, expected, tx.Type)
	}
	return nil
}

// ValidateAmount fails unless the amount is strictly positive.
func (v *Validator) ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateSufficientBalance fails unless balance >= amount. Callers must
// check this against the locked row, since only a locked balance can be
// trusted.
func (v *Validator) ValidateSufficientBalance(balance, amount decimal.Decimal) error {
	if balance.LessThan(amount) {
		return ErrInsufficientBalance
	}
	return nil
}

// ValidateTransferParties fails unless both party ids are present, and
// rejects a transfer onto the same user-wallet it debits.
func (v *Validator) ValidateTransferParties(tx *models.Transaction) error {
	if tx.FromUserID == nil || tx.ToUserID == nil {
		return ErrMissingTransferParties
	}
	if tx.DestinationWalletID != nil &&
		*tx.FromUserID == *tx.ToUserID && *tx.DestinationWalletID == tx.WalletID {
		return ErrSameTransferParties
	}
	return nil
}
