package handlers

import (
	"testing"

	"walletcore/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionRequest_Validate(t *testing.T) {
	walletID := uuid.New()
	destWalletID := uuid.New()
	from := uuid.New()
	to := uuid.New()
	one := decimal.RequireFromString("1.00")

	tests := []struct {
		name    string
		txType  models.TransactionType
		req     TransactionRequest
		wantErr bool
	}{
		{
			name:   "valid deposit",
			txType: models.TransactionTypeDeposit,
			req:    TransactionRequest{WalletID: walletID, ToUserID: &to, Amount: one},
		},
		{
			name:    "deposit without destination user",
			txType:  models.TransactionTypeDeposit,
			req:     TransactionRequest{WalletID: walletID, Amount: one},
			wantErr: true,
		},
		{
			name:    "deposit with source user",
			txType:  models.TransactionTypeDeposit,
			req:     TransactionRequest{WalletID: walletID, ToUserID: &to, FromUserID: &from, Amount: one},
			wantErr: true,
		},
		{
			name:   "valid withdrawal",
			txType: models.TransactionTypeWithdraw,
			req:    TransactionRequest{WalletID: walletID, FromUserID: &from, Amount: one},
		},
		{
			name:    "withdrawal without source user",
			txType:  models.TransactionTypeWithdraw,
			req:     TransactionRequest{WalletID: walletID, Amount: one},
			wantErr: true,
		},
		{
			name:    "withdrawal with destination user",
			txType:  models.TransactionTypeWithdraw,
			req:     TransactionRequest{WalletID: walletID, FromUserID: &from, ToUserID: &to, Amount: one},
			wantErr: true,
		},
		{
			name:   "valid transfer",
			txType: models.TransactionTypeTransfer,
			req: TransactionRequest{
				WalletID: walletID, DestinationWalletID: &destWalletID,
				FromUserID: &from, ToUserID: &to, Amount: one,
			},
		},
		{
			name:   "transfer missing a party",
			txType: models.TransactionTypeTransfer,
			req: TransactionRequest{
				WalletID: walletID, DestinationWalletID: &destWalletID,
				FromUserID: &from, Amount: one,
			},
			wantErr: true,
		},
		{
			name:   "transfer missing destination wallet",
			txType: models.TransactionTypeTransfer,
			req: TransactionRequest{
				WalletID: walletID, FromUserID: &from, ToUserID: &to, Amount: one,
			},
			wantErr: true,
		},
		{
			name:   "transfer onto the same user wallet",
			txType: models.TransactionTypeTransfer,
			req: TransactionRequest{
				WalletID: walletID, DestinationWalletID: &walletID,
				FromUserID: &from, ToUserID: &from, Amount: one,
			},
			wantErr: true,
		},
		{
			name:   "self transfer across wallets",
			txType: models.TransactionTypeTransfer,
			req: TransactionRequest{
				WalletID: walletID, DestinationWalletID: &destWalletID,
				FromUserID: &from, ToUserID: &from, Amount: one,
			},
		},
		{
			name:    "missing wallet id",
			txType:  models.TransactionTypeDeposit,
			req:     TransactionRequest{ToUserID: &to, Amount: one},
			wantErr: true,
		},
		{
			name:    "non-positive amount",
			txType:  models.TransactionTypeDeposit,
			req:     TransactionRequest{WalletID: walletID, ToUserID: &to, Amount: decimal.Zero},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.validate(tt.txType)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
