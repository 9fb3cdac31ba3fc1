package http

import (
	"bullion-backend/internal/handlers"
	"bullion-backend/internal/live"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	sellerHandler *handlers.SellerHandler,
	customerHandler *handlers.CustomerHandler,
	purchaseHandler *handlers.PurchaseHandler,
	saleHandler *handlers.SaleHandler,
	bookingHandler *handlers.BookingHandler,
	stockHandler *handlers.StockHandler,
	ledgerHandler *handlers.LedgerHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	hub *live.Hub,
) *mux.Router {
	r := mux.NewRouter()

	// API routes - Sellers
	sellersAPI := r.PathPrefix("/api/sellers").Subrouter()
	sellersAPI.HandleFunc("", sellerHandler.ListSellers).Methods("GET")
	sellersAPI.HandleFunc("", sellerHandler.CreateSeller).Methods("POST")
	sellersAPI.HandleFunc("/search", sellerHandler.SearchByPhone).Methods("GET")
	sellersAPI.HandleFunc("/{id}", sellerHandler.GetSeller).Methods("GET")
	sellersAPI.HandleFunc("/{id}", sellerHandler.UpdateSeller).Methods("PUT")
	sellersAPI.HandleFunc("/{id}", sellerHandler.DeleteSeller).Methods("DELETE")
	sellersAPI.HandleFunc("/{id}/totals", sellerHandler.GetTotals).Methods("GET")

	// API routes - Customers
	customersAPI := r.PathPrefix("/api/customers").Subrouter()
	customersAPI.HandleFunc("", customerHandler.ListCustomers).Methods("GET")
	customersAPI.HandleFunc("", customerHandler.CreateCustomer).Methods("POST")
	customersAPI.HandleFunc("/search", customerHandler.SearchByPhone).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.GetCustomer).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.UpdateCustomer).Methods("PUT")
	customersAPI.HandleFunc("/{id}", customerHandler.DeleteCustomer).Methods("DELETE")
	customersAPI.HandleFunc("/{id}/totals", customerHandler.GetTotals).Methods("GET")

	// API routes - Purchases
	purchasesAPI := r.PathPrefix("/api/purchases").Subrouter()
	purchasesAPI.HandleFunc("", purchaseHandler.ListPurchases).Methods("GET")
	purchasesAPI.HandleFunc("", purchaseHandler.CreatePurchase).Methods("POST")
	purchasesAPI.HandleFunc("/{id}", purchaseHandler.GetPurchase).Methods("GET")
	purchasesAPI.HandleFunc("/{id}", purchaseHandler.UpdatePurchase).Methods("PUT")
	purchasesAPI.HandleFunc("/{id}", purchaseHandler.DeletePurchase).Methods("DELETE")

	// API routes - Sales
	salesAPI := r.PathPrefix("/api/sales").Subrouter()
	salesAPI.HandleFunc("", saleHandler.ListSales).Methods("GET")
	salesAPI.HandleFunc("", saleHandler.CreateSale).Methods("POST")
	salesAPI.HandleFunc("/{id}", saleHandler.GetSale).Methods("GET")
	salesAPI.HandleFunc("/{id}", saleHandler.UpdateSale).Methods("PUT")
	salesAPI.HandleFunc("/{id}", saleHandler.DeleteSale).Methods("DELETE")

	// API routes - Bookings
	bookingsAPI := r.PathPrefix("/api/bookings").Subrouter()
	bookingsAPI.HandleFunc("", bookingHandler.ListBookings).Methods("GET")
	bookingsAPI.HandleFunc("", bookingHandler.CreateBooking).Methods("POST")
	bookingsAPI.HandleFunc("/{id}", bookingHandler.GetBooking).Methods("GET")
	bookingsAPI.HandleFunc("/{id}", bookingHandler.UpdateBooking).Methods("PUT")
	bookingsAPI.HandleFunc("/{id}/status", bookingHandler.UpdateStatus).Methods("PATCH")
	bookingsAPI.HandleFunc("/{id}", bookingHandler.DeleteBooking).Methods("DELETE")

	// API routes - Derived views
	r.HandleFunc("/api/stock", stockHandler.GetStock).Methods("GET")
	r.HandleFunc("/api/dashboard", stockHandler.GetDashboard).Methods("GET")
	r.HandleFunc("/api/ledger", ledgerHandler.GetLedger).Methods("GET")

	// API routes - Report downloads
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.HandleFunc("/ledger/pdf", reportHandler.LedgerPDF).Methods("GET")
	reportsAPI.HandleFunc("/ledger/xlsx", reportHandler.LedgerXLSX).Methods("GET")
	reportsAPI.HandleFunc("/stock/csv", reportHandler.StockCSV).Methods("GET")

	// Live collection snapshots over websocket
	r.HandleFunc("/ws", hub.Subscribe).Methods("GET")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
