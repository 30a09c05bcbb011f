package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrUserWalletNotFound  = errors.New("user wallet not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDuplicateWallet     = errors.New("wallet name already in use")
	ErrDuplicateUserWallet = errors.New("user wallet already exists for this user and wallet")
	ErrLockTimeout         = errors.New("row lock not acquired within timeout")
)

// Postgres error codes we translate into sentinel errors.
const (
	pgCodeLockNotAvailable = "55P03"
	pgCodeUniqueViolation  = "23505"
)

func isLockTimeout(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCodeLockNotAvailable
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCodeUniqueViolation
}
