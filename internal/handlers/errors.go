package handlers

import (
	"errors"

	"walletcore/internal/repositories"
	"walletcore/internal/services/ledger"
	"walletcore/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// handleDomainError maps domain errors onto HTTP statuses: not-found to
// 404, duplicates to 409, validation failures to 400, lock timeouts to
// 503 (safe to retry, nothing was written), everything else to 500.
func handleDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrWalletNotFound),
		errors.Is(err, repositories.ErrUserWalletNotFound),
		errors.Is(err, repositories.ErrTransactionNotFound):
		return utils.NotFound(c, err.Error())

	case errors.Is(err, repositories.ErrDuplicateWallet),
		errors.Is(err, repositories.ErrDuplicateUserWallet):
		return utils.Conflict(c, err.Error())

	case errors.Is(err, repositories.ErrLockTimeout):
		return utils.ServiceUnavailable(c, err.Error())

	case errors.Is(err, ledger.ErrInvalidType),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInsufficientBalance),
		errors.Is(err, ledger.ErrMissingDepositRecipient),
		errors.Is(err, ledger.ErrMissingWithdrawalSource),
		errors.Is(err, ledger.ErrMissingTransferParties),
		errors.Is(err, ledger.ErrSameTransferParties),
		errors.Is(err, ledger.ErrMissingDestinationWallet):
		return utils.BadRequest(c, err.Error())

	case errors.Is(err, ledger.ErrNoProcessor):
		logrus.WithError(err).Error("ledger misconfiguration")
		return utils.InternalError(c, "internal configuration error")

	default:
		logrus.WithError(err).Error("unexpected error")
		return utils.InternalError(c, "unexpected error")
	}
}
