package routes

import (
	"net/http"

	coreport "github.com/camilosanchez/virtual-wallet/internal/domain/port/core"
	"github.com/camilosanchez/virtual-wallet/internal/infrastructure/adapter/api/handler"
	"github.com/camilosanchez/virtual-wallet/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, walletHandler *handler.WalletHandler) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Wallet routes
	walletRoutes := router.Group("/api/wallet")
	{
		// POST /api/wallet - dynamic operation dispatch
		walletRoutes.POST("", walletHandler.Dispatch)

		// POST /api/wallet/clientes
		walletRoutes.POST("/clientes", walletHandler.RegisterAccount)

		// POST /api/wallet/recargas
		walletRoutes.POST("/recargas", walletHandler.FundWallet)

		// POST /api/wallet/pagos
		walletRoutes.POST("/pagos", walletHandler.InitiatePayment)

		// POST /api/wallet/pagos/confirmar
		walletRoutes.POST("/pagos/confirmar", walletHandler.ConfirmPayment)

		// GET /api/wallet/saldo
		walletRoutes.GET("/saldo", walletHandler.CheckBalance)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
