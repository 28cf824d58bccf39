package http

import (
	"net/http"

	"cloakroom-backend/internal/handlers"
	"cloakroom-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	checkinHandler *handlers.CheckinHandler,
	reportHandler *handlers.ReportHandler,
	receiptHandler *handlers.ReceiptHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected API routes - Check-ins
	checkinsAPI := r.PathPrefix("/api/checkins").Subrouter()
	checkinsAPI.Use(authMiddleware.Authenticate)
	checkinsAPI.HandleFunc("", checkinHandler.ListCheckins).Methods("GET")
	checkinsAPI.HandleFunc("", checkinHandler.CreateCheckin).Methods("POST")
	checkinsAPI.HandleFunc("/search", checkinHandler.SearchCheckins).Methods("GET")
	checkinsAPI.HandleFunc("/token/{token}", checkinHandler.GetCheckin).Methods("GET")
	checkinsAPI.HandleFunc("/token/{token}", checkinHandler.UpdateCheckin).Methods("PUT")

	// Protected API routes - Check-outs
	checkoutsAPI := r.PathPrefix("/api/checkouts").Subrouter()
	checkoutsAPI.Use(authMiddleware.Authenticate)
	checkoutsAPI.HandleFunc("", checkinHandler.ListCheckouts).Methods("GET")
	checkoutsAPI.HandleFunc("/token/{token}", checkinHandler.Checkout).Methods("PUT")

	// Destroying a settled record is admin-only
	r.Handle("/api/checkouts/{id}",
		authMiddleware.RequireAdmin(http.HandlerFunc(checkinHandler.DeleteCheckin))).Methods("DELETE")

	// Protected API routes - Dashboard and reports
	dashboardAPI := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardAPI.Use(authMiddleware.Authenticate)
	dashboardAPI.HandleFunc("/stats", reportHandler.DashboardStats).Methods("GET")

	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.HandleFunc("/checkins.csv", reportHandler.CheckinsCSV).Methods("GET")
	reportsAPI.HandleFunc("/checkouts.csv", reportHandler.CheckoutsCSV).Methods("GET")

	// Protected API routes - Receipts
	receiptsAPI := r.PathPrefix("/api/receipts").Subrouter()
	receiptsAPI.Use(authMiddleware.Authenticate)
	receiptsAPI.HandleFunc("/{token}", receiptHandler.CheckinReceipt).Methods("GET")
	receiptsAPI.HandleFunc("/{token}/report", receiptHandler.SettlementReport).Methods("GET")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
