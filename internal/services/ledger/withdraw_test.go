package ledger

import (
	"context"
	"testing"

	"walletcore/internal/models"
	"walletcore/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWithdrawProcessor(repo *fakeLedgerRepo) Processor {
	return NewWithdrawProcessor(repo, NewValidator(), NewBalanceManager())
}

func TestWithdrawProcessor_CanProcess(t *testing.T) {
	p := newWithdrawProcessor(newFakeLedgerRepo())

	assert.True(t, p.CanProcess(models.TransactionTypeWithdraw))
	assert.False(t, p.CanProcess(models.TransactionTypeDeposit))
}

func TestWithdrawProcessor_Process(t *testing.T) {
	repo := newFakeLedgerRepo()
	walletID := repo.seedWallet("household")
	userID := uuid.New()
	repo.seedUserWallet(userID, walletID, "100.00")

	p := newWithdrawProcessor(repo)

	got, err := p.Process(context.Background(), &models.Transaction{
		WalletID:   walletID,
		FromUserID: &userID,
		Type:       models.TransactionTypeWithdraw,
		Amount:     decimal.RequireFromString("40.25"),
	})
	require.NoError(t, err)

	assert.Nil(t, got.RelatedTransactionID)
	assert.True(t, repo.balanceOf(userID, walletID).Equal(decimal.RequireFromString("59.75")))
	assert.Equal(t, 1, repo.transactionCount())
	assert.Equal(t, 1, repo.historyCount())
}

func TestWithdrawProcessor_Process_FullBalance(t *testing.T) {
	repo := newFakeLedgerRepo()
	walletID := repo.seedWallet("household")
	userID := uuid.New()
	repo.seedUserWallet(userID, walletID, "30.00")

	p := newWithdrawProcessor(repo)

	_, err := p.Process(context.Background(), &models.Transaction{
		WalletID: walletID, FromUserID: &userID,
		Type: models.TransactionTypeWithdraw, Amount: decimal.RequireFromString("30.00"),
	})
	require.NoError(t, err)
	assert.True(t, repo.balanceOf(userID, walletID).IsZero())
}

func TestWithdrawProcessor_Process_InsufficientBalance(t *testing.T) {
	repo := newFakeLedgerRepo()
	walletID := repo.seedWallet("household")
	userID := uuid.New()
	repo.seedUserWallet(userID, walletID, "10.00")

	p := newWithdrawProcessor(repo)

	_, err := p.Process(context.Background(), &models.Transaction{
		WalletID: walletID, FromUserID: &userID,
		Type: models.TransactionTypeWithdraw, Amount: decimal.RequireFromString("10.01"),
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// The failed attempt left no trace.
	assert.True(t, repo.balanceOf(userID, walletID).Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, 0, repo.transactionCount())
	assert.Equal(t, 0, repo.historyCount())
}

func TestWithdrawProcessor_Process_Errors(t *testing.T) {
	repo := newFakeLedgerRepo()
	walletID := repo.seedWallet("household")
	userID := uuid.New()
	repo.seedUserWallet(userID, walletID, "10.00")

	p := newWithdrawProcessor(repo)

	t.Run("missing source user", func(t *testing.T) {
		_, err := p.Process(context.Background(), &models.Transaction{
			WalletID: walletID,
			Type:     models.TransactionTypeWithdraw, Amount: decimal.RequireFromString("5"),
		})
		assert.ErrorIs(t, err, ErrMissingWithdrawalSource)
	})

	t.Run("no membership for user", func(t *testing.T) {
		strangerID := uuid.New()
		_, err := p.Process(context.Background(), &models.Transaction{
			WalletID: walletID, FromUserID: &strangerID,
			Type: models.TransactionTypeWithdraw, Amount: decimal.RequireFromString("5"),
		})
		assert.ErrorIs(t, err, repositories.ErrUserWalletNotFound)
	})
}
