package ledger

import "errors"

// Validation and configuration errors surfaced by the engine. Not-found
// and lock-timeout conditions come from the repositories package.
var (
	ErrInvalidType              = errors.New("transaction type does not match processor")
	ErrInvalidAmount            = errors.New("amount must be greater than zero")
	ErrInsufficientBalance      = errors.New("insufficient balance")
	ErrMissingDepositRecipient  = errors.New("destination user id is required for deposits")
	ErrMissingWithdrawalSource  = errors.New("source user id is required for withdrawals")
	ErrMissingTransferParties   = errors.New("both source and destination user ids are required for transfers")
	ErrSameTransferParties      = errors.New("source and destination user wallets cannot be the same")
	ErrMissingDestinationWallet = errors.New("destination wallet id is required for transfers")
	ErrNoProcessor              = errors.New("no processor registered for transaction type")
)
