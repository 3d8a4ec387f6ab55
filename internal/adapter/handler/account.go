package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/mcjojos/money-transfers/internal/core/domain"
	"github.com/mcjojos/money-transfers/internal/core/ledger"
	"github.com/mcjojos/money-transfers/internal/core/seed"
)

type AccountHandler struct {
	Engine *ledger.Engine
}

// CreateAccountRequest defines what the user sends us. The balance travels
// as a decimal string so no precision is lost to float parsing.
type CreateAccountRequest struct {
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
}

func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	var req CreateAccountRequest

	// 1. Parse JSON
	if err := c.BodyParser(&req); err != nil {
		slog.Warn("Invalid account body", "error", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	// 2. Validate Input
	currency, err := domain.CurrencyFor(req.Currency)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid currency. Use EUR"})
	}

	balance, err := decimal.NewFromString(req.Balance)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Balance must be a decimal string"})
	}

	// 3. Store it. The constructor normalizes the balance to the currency scale.
	account := domain.NewAccount(balance, currency)
	id := h.Engine.CreateAccount(account)

	slog.Info("Account Created", "id", id, "balance", account.Balance, "currency", currency)

	// 4. Return Success
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"account": account,
	})
}

func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid Account ID format"})
	}

	account, err := h.Engine.GetAccount(id)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Account not found"})
	}

	return c.JSON(account)
}

// SeedAccounts creates a batch of random test accounts and returns their ids.
func (h *AccountHandler) SeedAccounts(c *fiber.Ctx) error {
	count := c.QueryInt("count")
	if count <= 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "count must be a positive integer"})
	}

	ids := make([]int64, 0, count)
	for _, account := range seed.RandomAccounts(count) {
		ids = append(ids, h.Engine.CreateAccount(account))
	}

	slog.Info("Test accounts created", "count", count)

	return c.JSON(fiber.Map{"ids": ids})
}
