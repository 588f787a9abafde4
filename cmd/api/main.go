package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rkjewellers/billing-api/internal/application/service"
	"github.com/rkjewellers/billing-api/internal/config"
	"github.com/rkjewellers/billing-api/internal/infrastructure/database"
	"github.com/rkjewellers/billing-api/internal/infrastructure/mirror"
	"github.com/rkjewellers/billing-api/internal/infrastructure/repository"
	"github.com/rkjewellers/billing-api/internal/presentation/http/handler"
	"github.com/rkjewellers/billing-api/internal/presentation/http/routes"
	"github.com/rkjewellers/billing-api/pkg/logger"
	"github.com/rkjewellers/billing-api/pkg/pdfrender"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	zapLog := logger.Must(logger.New(cfg.App.Debug))
	defer zapLog.Sync()

	// Connect to database
	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories and the tabular mirror
	customerRepo := repository.NewCustomerRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	mirrorSink := mirror.NewExcelSink(cfg.Mirror.Dir)

	// Initialize services
	customerService := service.NewCustomerService(customerRepo, mirrorSink, logger.Named(zapLog, "customer"))
	visitService := service.NewVisitService(visitRepo, customerRepo, mirrorSink, logger.Named(zapLog, "visit"))
	invoiceService := service.NewInvoiceService(customerRepo, visitRepo, pdfrender.New(), &cfg.Shop, logger.Named(zapLog, "invoice"))

	// Initialize handlers
	handlers := &routes.Handlers{
		Customer: handler.NewCustomerHandler(customerService),
		Visit:    handler.NewVisitHandler(visitService),
		Invoice:  handler.NewInvoiceHandler(invoiceService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:    cfg,
		Logger: logger.Named(zapLog, "http"),
	})

	port := cfg.App.Port
	if port == "" {
		port = "5001"
	}

	zapLog.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env),
	)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
