package handlers

import (
	"strings"

	"walletcore/internal/services/wallet"
	"walletcore/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

type walletRequest struct {
	Name string `json:"name"`
}

func (r *walletRequest) validate() error {
	name := strings.TrimSpace(r.Name)
	if len(name) < 3 || len(name) > 100 {
		return fiber.NewError(fiber.StatusBadRequest, "wallet name must be between 3 and 100 characters")
	}
	return nil
}

func (h *WalletHandler) List(c *fiber.Ctx) error {
	wallets, err := h.walletService.List(c.Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"wallets": wallets})
}

func (h *WalletHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid wallet id")
	}

	w, err := h.walletService.Get(c.Context(), id)
	if err != nil {
		return handleDomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"wallet": w})
}

func (h *WalletHandler) Create(c *fiber.Ctx) error {
	var req walletRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if err := req.validate(); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	w, err := h.walletService.Create(c.Context(), strings.TrimSpace(req.Name))
	if err != nil {
		return handleDomainError(c, err)
	}
	return utils.Created(c, fiber.Map{"wallet": w})
}

func (h *WalletHandler) Rename(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid wallet id")
	}

	var req walletRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if err := req.validate(); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	w, err := h.walletService.Rename(c.Context(), id, strings.TrimSpace(req.Name))
	if err != nil {
		return handleDomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"wallet": w})
}

func (h *WalletHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid wallet id")
	}

	if err := h.walletService.Delete(c.Context(), id); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
