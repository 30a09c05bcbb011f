package ledger

import (
	"fmt"

	"walletcore/internal/models"
	"walletcore/internal/repositories"

	"github.com/shopspring/decimal"
)

// BalanceManager is the only writer of user-wallet balances. Both methods
// expect a row already locked by the caller and write through the
// caller's transaction-scoped repository, so the balance update and the
// history append share the caller's unit of work.
type BalanceManager struct{}

func NewBalanceManager() *BalanceManager {
	return &BalanceManager{}
}

// Credit adds amount to the locked user-wallet balance.
func (m *BalanceManager) Credit(repo repositories.LedgerRepository, uw *models.UserWallet, amount decimal.Decimal) error {
	return m.apply(repo, uw, amount)
}

// Debit subtracts amount from the locked user-wallet balance. Sufficiency
// is the caller's responsibility; the balance never goes negative when the
// validator ran against the locked row.
func (m *BalanceManager) Debit(repo repositories.LedgerRepository, uw *models.UserWallet, amount decimal.Decimal) error {
	return m.apply(repo, uw, amount.Neg())
}

func (m *BalanceManager) apply(repo repositories.LedgerRepository, uw *models.UserWallet, delta decimal.Decimal) error {
	uw.Balance = uw.Balance.Add(delta)
	if err := repo.SaveUserWallet(uw); err != nil {
		return fmt.Errorf("balance update failed: %w", err)
	}

	history := &models.BalanceHistory{
		UserID:   uw.UserID,
		WalletID: uw.WalletID,
		Balance:  uw.Balance,
	}
	if err := repo.CreateBalanceHistory(history); err != nil {
		return fmt.Errorf("balance history append failed: %w", err)
	}
	return nil
}
