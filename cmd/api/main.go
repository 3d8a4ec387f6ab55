package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/mcjojos/money-transfers/internal/adapter/handler"
	"github.com/mcjojos/money-transfers/internal/adapter/middleware"
	"github.com/mcjojos/money-transfers/internal/adapter/storage"
	"github.com/mcjojos/money-transfers/internal/core/config"
	"github.com/mcjojos/money-transfers/internal/core/ledger"
	"github.com/mcjojos/money-transfers/internal/core/seed"
)

func main() {
	// 1. Load Config
	cfg := config.LoadConfig()

	// 2. Setup Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 3. Setup the Store & Engine
	store := storage.NewAccountStore()
	engine := ledger.NewEngine(store, logger)

	if cfg.SeedAccounts > 0 {
		for _, account := range seed.RandomAccounts(cfg.SeedAccounts) {
			engine.CreateAccount(account)
		}
		slog.Info("Seeded test accounts", "count", cfg.SeedAccounts)
	}

	// 4. Setup Handlers
	accountHandler := &handler.AccountHandler{Engine: engine}
	transferHandler := &handler.TransferHandler{Engine: engine}

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(cors.New())
	app.Use(middleware.Idempotency())

	app.Get("/api", func(c *fiber.Ctx) error {
		return c.SendString("This is the REST API for money transfers between accounts. Use it with wisdom")
	})
	app.Post("/api/accounts", accountHandler.CreateAccount)
	app.Get("/api/accounts/seed", accountHandler.SeedAccounts)
	app.Get("/api/accounts/:id", accountHandler.GetAccount)
	app.Post("/api/transfers", transferHandler.Transfer)

	// 6. Start the server in a goroutine so we can listen for shutdown signals
	go func() {
		slog.Info("🚀 Server starting", "port", cfg.Port, "env", cfg.Env)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("❌ Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// 7. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
	slog.Info("✅ Server stopped cleanly")
}
