package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreport "github.com/camilosanchez/virtual-wallet/internal/domain/port/core"
	"github.com/camilosanchez/virtual-wallet/internal/domain/usecase/wallet"

	"github.com/camilosanchez/virtual-wallet/internal/infrastructure/adapter/api/handler"
	"github.com/camilosanchez/virtual-wallet/internal/infrastructure/adapter/api/routes"
	"github.com/camilosanchez/virtual-wallet/internal/infrastructure/adapter/database"
	"github.com/camilosanchez/virtual-wallet/internal/infrastructure/adapter/database/migration"
	"github.com/camilosanchez/virtual-wallet/internal/infrastructure/adapter/logger"
	"github.com/camilosanchez/virtual-wallet/internal/infrastructure/adapter/notifier"
	timeProvider "github.com/camilosanchez/virtual-wallet/internal/infrastructure/adapter/time"
	"github.com/camilosanchez/virtual-wallet/internal/infrastructure/adapter/token"
	"github.com/camilosanchez/virtual-wallet/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == "production")

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          "postgres",
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay / time.Second),
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewMigrationManagerWithTimeProvider(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Unit of work (transaction manager)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Token delivery: webhook when configured, log otherwise
	var tokenNotifier coreport.Notifier
	if cfg.Wallet.NotifierURL != "" {
		tokenNotifier = notifier.NewWebhookNotifier(cfg.Wallet.NotifierURL, appLogger)
	} else {
		tokenNotifier = notifier.NewLogNotifier(appLogger)
	}

	// Initialize the wallet engine
	walletService := wallet.NewService(uow, token.NewGenerator(), tokenNotifier, tp, appLogger)

	// Initialize API handlers
	walletHandler := handler.NewWalletHandler(walletService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, walletHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	if cfg.Environment != "" &&
		cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	var missing []string

	durationChecks := []struct {
		name  string
		value time.Duration
	}{
		{"server.readTimeout", cfg.Server.ReadTimeout},
		{"server.writeTimeout", cfg.Server.WriteTimeout},
		{"server.shutdownTimeout", cfg.Server.ShutdownTimeout},
		{"database.queryTimeout", cfg.Database.QueryTimeout},
	}
	for _, check := range durationChecks {
		if check.value == 0 {
			missing = append(missing, check.name)
		}
	}
	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}

	// Database credentials may arrive through the environment in production,
	// so only flag them when neither source provides a value.
	dbFields := []struct {
		name, value, envVar string
	}{
		{"database.host", cfg.Database.Host, "VW_DB_HOST"},
		{"database.port", cfg.Database.Port, "VW_DB_PORT"},
		{"database.username", cfg.Database.Username, "VW_DB_USERNAME"},
		{"database.password", cfg.Database.Password, "VW_DB_PASSWORD"},
		{"database.database", cfg.Database.Database, "VW_DB_NAME"},
	}
	for _, field := range dbFields {
		if field.value != "" {
			continue
		}
		if cfg.Environment == config.Production {
			if os.Getenv(field.envVar) == "" {
				missing = append(missing, fmt.Sprintf("%s (or %s environment variable)", field.name, field.envVar))
			}
			continue
		}
		missing = append(missing, field.name)
	}

	if cfg.Environment == "" {
		missing = append(missing, "environment")
	}
	if cfg.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	if cfg.Environment == config.Production {
		warnProductionConfig(cfg)
	}
	return nil
}

// warnProductionConfig flags settings that are legal but unwise in
// production. They do not block startup.
func warnProductionConfig(cfg *config.Config) {
	var warnings []string

	switch strings.ToLower(cfg.Database.SSLMode) {
	case "require", "verify-ca", "verify-full":
	default:
		warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
	}
	if cfg.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if cfg.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low for production")
	}

	if len(warnings) > 0 {
		log.Printf("Warning: potential security issues in production configuration: %v", warnings)
	}
}
