package ledger

import (
	"context"

	"walletcore/internal/models"
	"walletcore/internal/repositories"
)

type depositProcessor struct {
	repo      repositories.LedgerRepository
	validator *Validator
	balances  *BalanceManager
}

func NewDepositProcessor(repo repositories.LedgerRepository, validator *Validator, balances *BalanceManager) Processor {
	return &depositProcessor{repo: repo, validator: validator, balances: balances}
}

func (p *depositProcessor) CanProcess(t models.TransactionType) bool {
	return t == models.TransactionTypeDeposit
}

func (p *depositProcessor) Process(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if err := p.validator.ValidateType(tx, models.TransactionTypeDeposit); err != nil {
		return nil, err
	}
	if err := p.validator.ValidateAmount(tx.Amount); err != nil {
		return nil, err
	}
	if tx.ToUserID == nil {
		return nil, ErrMissingDepositRecipient
	}

	err := p.repo.ExecuteInTransaction(ctx, func(repo repositories.LedgerRepository) error {
		uw, err := repo.GetUserWalletLocked(ctx, *tx.ToUserID, tx.WalletID)
		if err != nil {
			return err
		}

		if err := p.balances.Credit(repo, uw, tx.Amount); err != nil {
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
