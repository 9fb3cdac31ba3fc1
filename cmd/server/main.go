package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"bullion-backend/internal/config"
	"bullion-backend/internal/database"
	"bullion-backend/internal/db"
	"bullion-backend/internal/handlers"
	"bullion-backend/internal/health"
	h "bullion-backend/internal/http"
	"bullion-backend/internal/live"
	"bullion-backend/internal/middleware"
	"bullion-backend/internal/repositories"
	"bullion-backend/internal/services"
	"bullion-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Connect to database
	pool := db.Connect(cfg)
	defer pool.Close()
	log.Println("Connected to database")

	// Run database migrations
	// Uses embedded migrations for standalone binary operation
	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool, migrations.FS, ".")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker
	healthChecker := health.NewHealthChecker(pool)

	// Initialize repositories
	sellerRepo := repositories.NewSellerRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)
	purchaseRepo := repositories.NewPurchaseRepository(pool)
	saleRepo := repositories.NewSaleRepository(pool)
	bookingRepo := repositories.NewBookingRepository(pool)

	// The hub re-delivers full collection snapshots to websocket subscribers
	// after every write
	hub := live.NewHub()
	hub.RegisterCollection("sellers", func(ctx context.Context) (interface{}, error) {
		return sellerRepo.List(ctx)
	})
	hub.RegisterCollection("customers", func(ctx context.Context) (interface{}, error) {
		return customerRepo.List(ctx)
	})
	hub.RegisterCollection("purchases", func(ctx context.Context) (interface{}, error) {
		return purchaseRepo.List(ctx)
	})
	hub.RegisterCollection("sales", func(ctx context.Context) (interface{}, error) {
		return saleRepo.List(ctx)
	})
	hub.RegisterCollection("bookings", func(ctx context.Context) (interface{}, error) {
		return bookingRepo.List(ctx)
	})

	// Initialize services
	sellerService := services.NewSellerService(sellerRepo, purchaseRepo, hub)
	customerService := services.NewCustomerService(customerRepo, saleRepo, bookingRepo, hub)
	purchaseService := services.NewPurchaseService(purchaseRepo, sellerRepo, hub)
	saleService := services.NewSaleService(saleRepo, customerRepo, hub)
	bookingService := services.NewBookingService(bookingRepo, customerRepo, hub)
	stockService := services.NewStockService(purchaseRepo, saleRepo)
	ledgerService := services.NewLedgerService(purchaseRepo, saleRepo)
	reportService := services.NewReportService(purchaseRepo, saleRepo)

	// Initialize handlers
	sellerHandler := handlers.NewSellerHandler(sellerService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	saleHandler := handlers.NewSaleHandler(saleService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	stockHandler := handlers.NewStockHandler(stockService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(
		sellerHandler,
		customerHandler,
		purchaseHandler,
		saleHandler,
		bookingHandler,
		stockHandler,
		ledgerHandler,
		reportHandler,
		healthHandler,
		hub,
	)

	// Wrap with panic recovery and metrics middleware
	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
