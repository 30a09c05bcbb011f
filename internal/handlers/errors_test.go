package handlers

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"walletcore/internal/repositories"
	"walletcore/internal/services/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"wallet not found", repositories.ErrWalletNotFound, fiber.StatusNotFound},
		{"user wallet not found", repositories.ErrUserWalletNotFound, fiber.StatusNotFound},
		{"transaction not found", repositories.ErrTransactionNotFound, fiber.StatusNotFound},
		{"duplicate wallet", repositories.ErrDuplicateWallet, fiber.StatusConflict},
		{"duplicate user wallet", repositories.ErrDuplicateUserWallet, fiber.StatusConflict},
		{"lock timeout", repositories.ErrLockTimeout, fiber.StatusServiceUnavailable},
		{"invalid type", ledger.ErrInvalidType, fiber.StatusBadRequest},
		{"invalid amount", ledger.ErrInvalidAmount, fiber.StatusBadRequest},
		{"insufficient balance", ledger.ErrInsufficientBalance, fiber.StatusBadRequest},
		{"missing deposit recipient", ledger.ErrMissingDepositRecipient, fiber.StatusBadRequest},
		{"missing withdrawal source", ledger.ErrMissingWithdrawalSource, fiber.StatusBadRequest},
		{"missing transfer parties", ledger.ErrMissingTransferParties, fiber.StatusBadRequest},
		{"same transfer parties", ledger.ErrSameTransferParties, fiber.StatusBadRequest},
		{"missing destination wallet", ledger.ErrMissingDestinationWallet, fiber.StatusBadRequest},
		{"no processor", ledger.ErrNoProcessor, fiber.StatusInternalServerError},
		{"unexpected", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return handleDomainError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestHandleDomainError_WrappedSentinel(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return handleDomainError(c, fmt.Errorf("locking user wallet: %w", repositories.ErrLockTimeout))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
