package ledger

import (
	"context"

	"walletcore/internal/models"
	"walletcore/internal/repositories"

	"github.com/google/uuid"
)

type transferProcessor struct {
	repo      repositories.LedgerRepository
	validator *Validator
	balances  *BalanceManager
}

func NewTransferProcessor(repo repositories.LedgerRepository, validator *Validator, balances *BalanceManager) Processor {
	return &transferProcessor{repo: repo, validator: validator, balances: balances}
}

func (p *transferProcessor) CanProcess(t models.TransactionType) bool {
	return t == models.TransactionTypeTransfer
}

// lockRef identifies one user-wallet row to lock.
type lockRef struct {
	userID   uuid.UUID
	walletID uuid.UUID
}

func (l lockRef) key() string {
	return l.userID.String() + "/" + l.walletID.String()
}

func (p *transferProcessor) Process(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if err := p.validator.ValidateType(tx, models.TransactionTypeTransfer); err != nil {
		return nil, err
	}
	if err := p.validator.ValidateAmount(tx.Amount); err != nil {
		return nil, err
	}
	if err := p.validator.ValidateTransferParties(tx); err != nil {
		return nil, err
	}
	if tx.DestinationWalletID == nil {
		return nil, ErrMissingDestinationWallet
	}

	err := p.repo.ExecuteInTransaction(ctx, func(repo repositories.LedgerRepository) error {
		source := lockRef{userID: *tx.FromUserID, walletID: tx.WalletID}
		dest := lockRef{userID: *tx.ToUserID, walletID: *tx.DestinationWalletID}

		// Acquire both row locks in the total order of their composite keys.
		// Two opposite transfers between the same pair then contend on the
		// same first lock instead of deadlocking on each other's second.
		first, second := source, dest
		if dest.key() < source.key() {
			first, second = dest, source
		}

		firstUW, err := repo.GetUserWalletLocked(ctx, first.userID, first.walletID)
		if err != nil {
			return err
		}
		secondUW, err := repo.GetUserWalletLocked(ctx, second.userID, second.walletID)
		if err != nil {
			return err
		}

		sourceUW, destUW := firstUW, secondUW
		if first != source {
			sourceUW, destUW = secondUW, firstUW
		}

		if err := p.validator.ValidateSufficientBalance(sourceUW.Balance, tx.Amount); err != nil {
			return err
		}

		if err := p.balances.Debit(repo, sourceUW, tx.Amount); err != nil {
			return err
		}
		if err := p.balances.Credit(repo, destUW, tx.Amount); err != nil {
			return err
		}

		// Double-entry linkage: persist the source row first so its id is
		// durable, then the mirror referencing it, then back-link the source.
		tx.RelatedTransactionID = nil
		if err := repo.CreateTransaction(tx); err != nil {
			return err
		}

		mirror := &models.Transaction{
			WalletID:             *tx.DestinationWalletID,
			FromUserID:           tx.FromUserID,
			ToUserID:             tx.ToUserID,
			Type:                 models.TransactionTypeTransfer,
			Amount:               tx.Amount,
			Description:          tx.Description,
			RelatedTransactionID: &tx.ID,
		}
		if err := repo.CreateTransaction(mirror); err != nil {
			return err
		}

		tx.RelatedTransactionID = &mirror.ID
		return repo.SaveTransaction(tx)
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}
