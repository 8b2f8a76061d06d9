package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opsdeck/catalog"
	"opsdeck/config"
	"opsdeck/database"
	"opsdeck/database/repository"
	"opsdeck/handlers"
	"opsdeck/middleware"
	"opsdeck/routes"
	"opsdeck/services/booking"
	ai "opsdeck/services/intelligence"
	"opsdeck/services/invoice"
	"opsdeck/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Money renders as a JSON number, not a quoted string.
	decimal.MarshalJSONWithoutQuotes = true

	cat, err := catalog.Load(config.AppConfig.CatalogPath)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load catalog: %v", err)
	}

	// Persistence: Mongo when a URL is configured, otherwise in-memory
	// stores seeded from the catalog.
	var bookingRepo repository.BookingRepository
	var invoiceRepo repository.InvoiceRepository
	if config.AppConfig.DatabaseURL != "" {
		database.InitDB()
		mongoBookings := repository.NewMongoBookingRepo()
		mongoInvoices := repository.NewMongoInvoiceRepo()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := mongoBookings.Seed(ctx, cat.SeedBookings); err != nil {
			cancel()
			logger.Sugar().Fatalf("main: failed to seed bookings: %v", err)
		}
		if err := mongoInvoices.Seed(ctx, cat.SeedInvoices); err != nil {
			cancel()
			logger.Sugar().Fatalf("main: failed to seed invoices: %v", err)
		}
		cancel()
		bookingRepo = mongoBookings
		invoiceRepo = mongoInvoices
	} else {
		bookingRepo = repository.NewMemoryBookingRepo(cat.SeedBookings)
		invoiceRepo = repository.NewMemoryInvoiceRepo(cat.SeedInvoices)
	}

	// Booking sessions: Redis when configured, otherwise an in-process store.
	lockTTL := time.Duration(config.AppConfig.LockTTLMinutes) * time.Minute
	var sessionStore booking.SessionStore
	if config.AppConfig.RedisAddr != "" {
		utils.InitSessionCache()
		sessionStore = booking.NewRedisSessionStore(utils.GetSessionCacheClient(), lockTTL)
	} else {
		sessionStore = booking.NewMemorySessionStore(lockTTL)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	invoiceService := &invoice.DefaultInvoiceService{
		Repo:    invoiceRepo,
		Catalog: cat,
		Logger:  logger,
	}

	sessionService := &booking.DefaultSessionService{
		Catalog:      cat,
		Sessions:     sessionStore,
		Bookings:     bookingRepo,
		Reconciler:   invoiceService,
		DemoTenantID: config.AppConfig.DemoTenantID,
		Logger:       logger,
	}

	var aiSvc ai.Service
	if config.AppConfig.GeminiAPIKey != "" {
		geminiSvc, err := ai.NewGeminiService(context.Background(), config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
		}
		aiSvc = geminiSvc
	} else {
		logger.Sugar().Warn("main: GEMINI_API_KEY not set, AI endpoints disabled")
		aiSvc = ai.DisabledService{}
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Catalog:   handlers.NewCatalogHandler(cat),
		Booking:   handlers.NewBookingHandler(sessionService, logger),
		Invoice:   handlers.NewInvoiceHandler(invoiceService, cat, logger),
		Dashboard: handlers.NewDashboardHandler(invoiceRepo, bookingRepo, cat, aiSvc, logger),
		AI:        handlers.NewAIHandler(aiSvc, cat, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
