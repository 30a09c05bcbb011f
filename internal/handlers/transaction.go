package handlers

import (
	"errors"
	"time"

	"walletcore/internal/models"
	"walletcore/internal/services/ledger"
	"walletcore/internal/services/wallet"
	"walletcore/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionHandler exposes the ledger operations over HTTP.
type TransactionHandler struct {
	ledgerService ledger.Service
	walletService wallet.Service
}

func NewTransactionHandler(ledgerService ledger.Service, walletService wallet.Service) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
		walletService: walletService,
	}
}

// TransactionRequest is the inbound shape for deposit, withdraw and
// transfer operations.
type TransactionRequest struct {
	WalletID            uuid.UUID       `json:"wallet_id"`
	DestinationWalletID *uuid.UUID      `json:"destination_wallet_id,omitempty"`
	FromUserID          *uuid.UUID      `json:"from_user_id,omitempty"`
	ToUserID            *uuid.UUID      `json:"to_user_id,omitempty"`
	Amount              decimal.Decimal `json:"amount"`
	Description         string          `json:"description,omitempty"`
}

// TransactionResponse is the outbound transaction record.
type TransactionResponse struct {
	ID                   uuid.UUID              `json:"id"`
	WalletID             uuid.UUID              `json:"wallet_id"`
	WalletName           string                 `json:"wallet_name,omitempty"`
	FromUserID           *uuid.UUID             `json:"from_user_id,omitempty"`
	ToUserID             *uuid.UUID             `json:"to_user_id,omitempty"`
	Type                 models.TransactionType `json:"type"`
	Amount               decimal.Decimal        `json:"amount"`
	Description          string                 `json:"description,omitempty"`
	RelatedTransactionID *uuid.UUID             `json:"related_transaction_id,omitempty"`
	CreatedAt            time.Time              `json:"created_at"`
}

// validate applies the per-type party rules before anything is dispatched.
func (r *TransactionRequest) validate(txType models.TransactionType) error {
	if r.WalletID == uuid.Nil {
		return errors.New("wallet_id is required")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("amount must be greater than zero")
	}

	switch txType {
	case models.TransactionTypeDeposit:
		if r.ToUserID == nil {
			return errors.New("to_user_id is required for deposits")
		}
		if r.FromUserID != nil {
			return errors.New("from_user_id must not be set for deposits")
		}
	case models.TransactionTypeWithdraw:
		if r.FromUserID == nil {
			return errors.New("from_user_id is required for withdrawals")
		}
		if r.ToUserID != nil {
			return errors.New("to_user_id must not be set for withdrawals")
		}
	case models.TransactionTypeTransfer:
		if r.FromUserID == nil || r.ToUserID == nil {
			return errors.New("from_user_id and to_user_id are required for transfers")
		}
		if r.DestinationWalletID == nil {
			return errors.New("destination_wallet_id is required for transfers")
		}
		if *r.FromUserID == *r.ToUserID && *r.DestinationWalletID == r.WalletID {
			return errors.New("cannot transfer to the same user wallet")
		}
	}
	return nil
}

func (h *TransactionHandler) Deposit(c *fiber.Ctx) error {
	return h.process(c, models.TransactionTypeDeposit)
}

func (h *TransactionHandler) Withdraw(c *fiber.Ctx) error {
	return h.process(c, models.TransactionTypeWithdraw)
}

func (h *TransactionHandler) Transfer(c *fiber.Ctx) error {
	return h.process(c, models.TransactionTypeTransfer)
}

func (h *TransactionHandler) process(c *fiber.Ctx, txType models.TransactionType) error {
	var req TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if err := req.validate(txType); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	tx := &models.Transaction{
		WalletID:            req.WalletID,
		FromUserID:          req.FromUserID,
		ToUserID:            req.ToUserID,
		Type:                txType,
		Amount:              req.Amount,
		Description:         req.Description,
		DestinationWalletID: req.DestinationWalletID,
	}

	processed, err := h.ledgerService.Process(c.Context(), tx)
	if err != nil {
		return handleDomainError(c, err)
	}

	return utils.Created(c, h.toResponse(c, processed))
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", ledger.DefaultListLimit)
	offset := c.QueryInt("offset", 0)

	txs, err := h.ledgerService.ListTransactions(c.Context(), limit, offset)
	if err != nil {
		return handleDomainError(c, err)
	}

	responses := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		responses = append(responses, h.toResponse(c, &txs[i]))
	}
	return utils.Success(c, fiber.Map{"transactions": responses})
}

func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid transaction id")
	}

	tx, err := h.ledgerService.GetTransaction(c.Context(), id)
	if err != nil {
		return handleDomainError(c, err)
	}
	return utils.Success(c, h.toResponse(c, tx))
}

func (h *TransactionHandler) toResponse(c *fiber.Ctx, tx *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:                   tx.ID,
		WalletID:             tx.WalletID,
		FromUserID:           tx.FromUserID,
		ToUserID:             tx.ToUserID,
		Type:                 tx.Type,
		Amount:               tx.Amount,
		Description:          tx.Description,
		RelatedTransactionID: tx.RelatedTransactionID,
		CreatedAt:            tx.CreatedAt,
	}
	if w, err := h.walletService.Get(c.Context(), tx.WalletID); err == nil {
		resp.WalletName = w.Name
	}
	return resp
}
