package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mcjojos/money-transfers/internal/core/domain"
	"github.com/mcjojos/money-transfers/internal/core/ledger"
)

type TransferHandler struct {
	Engine *ledger.Engine
}

// Transfer API
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	var req domain.Transfer
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	receipt, err := h.Engine.Transfer(req)
	if err != nil {
		return transferError(c, req, err)
	}

	slog.Info("Transfer Complete", "transfer_id", receipt.TransferID,
		"from_id", receipt.FromAccountID, "to_id", receipt.ToAccountID, "amount", receipt.Amount)

	return c.JSON(fiber.Map{"status": "success", "receipt": receipt})
}

// transferError maps the engine's error taxonomy onto HTTP statuses.
// Client mistakes stay in the 4xx range; a consistency violation is ours
// and becomes a 500.
func transferError(c *fiber.Ctx, req domain.Transfer, err error) error {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidAmount):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrCurrencyMismatch):
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	default:
		slog.Error("Transfer failed", "error", err, "transfer", req.String())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Transfer failed"})
	}
}
