package handlers

import (
	"walletcore/internal/services/userwallet"
	"walletcore/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UserWalletHandler struct {
	userWalletService userwallet.Service
}

func NewUserWalletHandler(userWalletService userwallet.Service) *UserWalletHandler {
	return &UserWalletHandler{userWalletService: userWalletService}
}

type userWalletRequest struct {
	UserID   uuid.UUID `json:"user_id"`
	WalletID uuid.UUID `json:"wallet_id"`
	// Balance seeds the initial balance; zero when omitted.
	Balance decimal.Decimal `json:"balance"`
}

func (h *UserWalletHandler) List(c *fiber.Ctx) error {
	uws, err := h.userWalletService.List(c.Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"user_wallets": uws})
}

func (h *UserWalletHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid user wallet id")
	}

	uw, err := h.userWalletService.Get(c.Context(), id)
	if err != nil {
		return handleDomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"user_wallet": uw})
}

func (h *UserWalletHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	uws, err := h.userWalletService.ListByUser(c.Context(), userID)
	if err != nil {
		return handleDomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"user_wallets": uws})
}

func (h *UserWalletHandler) ListByWallet(c *fiber.Ctx) error {
	walletID, err := uuid.Parse(c.Params("walletId"))
	if err != nil {
		return utils.BadRequest(c, "invalid wallet id")
	}

	uws, err := h.userWalletService.ListByWallet(c.Context(), walletID)
	if err != nil {
		return handleDomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"user_wallets": uws})
}

func (h *UserWalletHandler) GetByUserAndWallet(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}
	walletID, err := uuid.Parse(c.Params("walletId"))
	if err != nil {
		return utils.BadRequest(c, "invalid wallet id")
	}

	uw, err := h.userWalletService.GetByUserAndWallet(c.Context(), userID, walletID)
	if err != nil {
		return handleDomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"user_wallet": uw})
}

func (h *UserWalletHandler) Create(c *fiber.Ctx) error {
	var req userWalletRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if req.UserID == uuid.Nil || req.WalletID == uuid.Nil {
		return utils.BadRequest(c, "user_id and wallet_id are required")
	}
	if req.Balance.IsNegative() {
		return utils.BadRequest(c, "balance cannot be negative")
	}

	uw, err := h.userWalletService.Create(c.Context(), req.UserID, req.WalletID, req.Balance)
	if err != nil {
		return handleDomainError(c, err)
	}
	return utils.Created(c, fiber.Map{"user_wallet": uw})
}

func (h *UserWalletHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid user wallet id")
	}

	var req userWalletRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if req.UserID == uuid.Nil || req.WalletID == uuid.Nil {
		return utils.BadRequest(c, "user_id and wallet_id are required")
	}

	// The balance field is ignored here; balances only move through
	// transactions.
	uw, err := h.userWalletService.Update(c.Context(), id, req.UserID, req.WalletID)
	if err != nil {
		return handleDomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"user_wallet": uw})
}

func (h *UserWalletHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid user wallet id")
	}

	if err := h.userWalletService.Delete(c.Context(), id); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
