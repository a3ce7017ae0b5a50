package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cadcam-storefront/config"
	deliveryHttp "cadcam-storefront/internal/delivery/http"
	"cadcam-storefront/internal/delivery/http/handler"
	"cadcam-storefront/internal/delivery/http/middleware"
	domainRepository "cadcam-storefront/internal/domain/repository"
	"cadcam-storefront/internal/infrastructure/cache"
	"cadcam-storefront/internal/infrastructure/database"
	"cadcam-storefront/internal/repository"
	"cadcam-storefront/internal/service"
	"cadcam-storefront/internal/usecase"
	"cadcam-storefront/pkg/jwt"
	"cadcam-storefront/pkg/response"
	"cadcam-storefront/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Store       domainRepository.ProductRepository
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(envFile string) (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	app.Log = setupLogger(cfg.Log.Level)
	app.Log.Info("Configuration loaded successfully")

	response.SetDebug(cfg.App.IsDevelopment())

	if err := app.openStore(); err != nil {
		app.Close()
		return nil, err
	}
	app.Log.Infof("Catalog store ready (driver %s)", cfg.Catalog.Driver)

	app.Server = initializeServer(cfg, app.Log, app.Store)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.Warnf("Unknown LOG_LEVEL %q, using info", level)
	} else {
		logrus.SetLevel(lvl)
	}

	return logrus.StandardLogger()
}

// openStore selects the catalog persistence backend from CATALOG_DRIVER.
func (app *App) openStore() error {
	cfg := app.Config

	switch cfg.Catalog.Driver {
	case config.DriverFile:
		app.Store = repository.NewProductFileRepository(afero.NewOsFs(), cfg.Catalog.DataFile, app.Log)

	case config.DriverPostgres, config.DriverSQLite:
		var db *gorm.DB
		var err error
		if cfg.Catalog.Driver == config.DriverPostgres {
			db, err = database.NewPostgresConnection(cfg.DB.DSN)
		} else {
			db, err = database.NewSQLiteConnection(cfg.DB.DSN)
		}
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db

		if err := repository.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate catalog table: %w", err)
		}
		app.Store = repository.NewProductSQLRepository(db, app.Log)

	case config.DriverRedis:
		client, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = client
		app.Store = repository.NewProductRedisRepository(client, cfg.Redis.Key, app.Log)

	default:
		return fmt.Errorf("unknown CATALOG_DRIVER %q", cfg.Catalog.Driver)
	}

	return nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, store domainRepository.ProductRepository) *http.Server {
	// Initialize services
	auditService := service.NewAuditService(log)

	// Initialize usecases
	productUsecase := usecase.NewProductUsecase(log, store, auditService)

	// Initialize handlers
	productHandler := handler.NewProductHandler(productUsecase, log)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwt.NewParser(), log)
	validationMiddleware := middleware.NewValidationMiddleware(validator.NewValidator())
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	recoveryMiddleware := middleware.NewRecoveryMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		productHandler,
		authMiddleware,
		validationMiddleware,
		corsMiddleware,
		loggingMiddleware,
		recoveryMiddleware,
	)

	// Create server
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
