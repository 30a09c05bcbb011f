// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"walletcore/internal/handlers"
	"walletcore/internal/middleware"
	"walletcore/internal/models"
	"walletcore/internal/repositories"
	"walletcore/internal/services/ledger"
	"walletcore/internal/services/userwallet"
	"walletcore/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	ledgerRepo := repositories.NewLedgerRepository(db, repositories.DefaultLockWait)
	walletRepo := repositories.NewWalletRepository(db)
	userWalletRepo := repositories.NewUserWalletRepository(db)

	// Initialize services
	walletService := wallet.NewService(walletRepo)
	userWalletService := userwallet.NewService(userWalletRepo, walletRepo, repositories.CacheService)
	ledgerService := ledger.NewService(
		ledgerRepo,
		repositories.CacheService,
		&ledger.NoopMetricsCollector{},
	)

	// Initialize handlers
	walletHandler := handlers.NewWalletHandler(walletService)
	userWalletHandler := handlers.NewUserWalletHandler(userWalletService)
	transactionHandler := handlers.NewTransactionHandler(ledgerService, walletService)

	// Root welcome route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to WalletCore API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	api := app.Group("/api")

	// Protected routes with auth middleware
	authMiddleware := middleware.NewAuthMiddleware()
	protected := api.Use(authMiddleware.Handler)

	setupWalletRoutes(protected, walletHandler, userWalletHandler)
	setupTransactionRoutes(protected, transactionHandler)
}

func setupWalletRoutes(router fiber.Router, walletHandler *handlers.WalletHandler, userWalletHandler *handlers.UserWalletHandler) {
	wallets := router.Group("/wallets")
	wallets.Get("/", middleware.RequirePermission(models.PermissionWalletRead), walletHandler.List)
	wallets.Get("/:id", middleware.RequirePermission(models.PermissionWalletRead), walletHandler.Get)
	wallets.Post("/", middleware.RequirePermission(models.PermissionWalletWrite), walletHandler.Create)
	wallets.Put("/:id", middleware.RequirePermission(models.PermissionWalletWrite), walletHandler.Rename)
	wallets.Delete("/:id", middleware.RequirePermission(models.PermissionWalletWrite), walletHandler.Delete)

	userWallets := router.Group("/user-wallets")
	userWallets.Get("/", middleware.RequirePermission(models.PermissionWalletRead), userWalletHandler.List)
	userWallets.Get("/user/:userId", middleware.RequirePermission(models.PermissionWalletRead), userWalletHandler.ListByUser)
	userWallets.Get("/wallet/:walletId", middleware.RequirePermission(models.PermissionWalletRead), userWalletHandler.ListByWallet)
	userWallets.Get("/user/:userId/wallet/:walletId", middleware.RequirePermission(models.PermissionWalletRead), userWalletHandler.GetByUserAndWallet)
	userWallets.Get("/:id", middleware.RequirePermission(models.PermissionWalletRead), userWalletHandler.Get)
	userWallets.Post("/", middleware.RequirePermission(models.PermissionWalletWrite), userWalletHandler.Create)
	userWallets.Put("/:id", middleware.RequirePermission(models.PermissionWalletWrite), userWalletHandler.Update)
	userWallets.Delete("/:id", middleware.RequirePermission(models.PermissionWalletWrite), userWalletHandler.Delete)
}

func setupTransactionRoutes(router fiber.Router, transactionHandler *handlers.TransactionHandler) {
	transactions := router.Group("/transactions")
	transactions.Get("/", middleware.RequirePermission(models.PermissionTransactionRead), transactionHandler.List)
	transactions.Get("/:id", middleware.RequirePermission(models.PermissionTransactionRead), transactionHandler.Get)
	transactions.Post("/deposit", middleware.RequirePermission(models.PermissionTransactionWrite), transactionHandler.Deposit)
	transactions.Post("/withdraw", middleware.RequirePermission(models.PermissionTransactionWrite), transactionHandler.Withdraw)
	transactions.Post("/transfer", middleware.RequirePermission(models.PermissionTransactionWrite), transactionHandler.Transfer)
}
