package ledger

import (
	"context"

	"walletcore/internal/models"
	"walletcore/internal/repositories"
)

type withdrawProcessor struct {
	repo      repositories.LedgerRepository
	validator *Validator
	balances  *BalanceManager
}

func NewWithdrawProcessor(repo repositories.LedgerRepository, validator *Validator, balances *BalanceManager) Processor {
	return &withdrawProcessor{repo: repo, validator: validator, balances: balances}
}

func (p *withdrawProcessor) CanProcess(t models.TransactionType) bool {
	return t == models.TransactionTypeWithdraw
}

func (p *withdrawProcessor) Process(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if err := p.validator.ValidateType(tx, models.TransactionTypeWithdraw); err != nil {
		return nil, err
	}
	if err := p.validator.ValidateAmount(tx.Amount); err != nil {
		return nil, err
	}
	if tx.FromUserID == nil {
		return nil, ErrMissingWithdrawalSource
	}

	err := p.repo.ExecuteInTransaction(ctx, func(repo repositories.LedgerRepository) error {
		uw, err := repo.GetUserWalletLocked(ctx, *tx.FromUserID, tx.WalletID)
		if err != nil {
			return err
		}

		// Sufficiency can only be trusted against the locked row.
		if err := p.validator.ValidateSufficientBalance(uw.Balance, tx.Amount); err != nil {
			return err
		}

		if err := p.balances.Debit(repo, uw, tx.Amount); err != nil {
			return err
		}

		tx.RelatedTransactionID = nil
		return repo.CreateTransaction(tx)
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}
