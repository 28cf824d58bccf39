package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"cloakroom-backend/internal/auth"
	"cloakroom-backend/internal/cache"
	"cloakroom-backend/internal/config"
	"cloakroom-backend/internal/database"
	"cloakroom-backend/internal/db"
	"cloakroom-backend/internal/handlers"
	"cloakroom-backend/internal/health"
	h "cloakroom-backend/internal/http"
	"cloakroom-backend/internal/middleware"
	"cloakroom-backend/internal/monitoring"
	"cloakroom-backend/internal/repositories"
	"cloakroom-backend/internal/services"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	// Verify the database is reachable before serving traffic
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := pool.Ping(ctx); err != nil {
		cancel()
		log.Fatalf("database unreachable: %v", err)
	}
	cancel()

	// Redis is optional: a failed connection degrades to direct DB reads
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable, running without cache: %v", err)
	} else {
		log.Printf("[Redis] Cache connected")
	}

	// Apply pending schema migrations
	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	healthChecker := health.NewHealthChecker(pool)

	// Ops dashboard on a side port
	go monitoring.NewMonitoringServer(pool, cfg.Monitoring.Port).Start()

	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	checkinRepo := repositories.NewCheckinRepository(pool)

	// Services
	userService := services.NewUserService(userRepo, jwtManager)
	checkinService := services.NewCheckinService(checkinRepo)
	reportService := services.NewReportService(checkinRepo)
	receiptService := services.NewReceiptService(checkinRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	checkinHandler := handlers.NewCheckinHandler(checkinService)
	reportHandler := handlers.NewReportHandler(reportService)
	receiptHandler := handlers.NewReceiptHandler(receiptService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)

	router := h.NewRouter(
		authHandler,
		checkinHandler,
		reportHandler,
		receiptHandler,
		healthHandler,
		authMiddleware,
	)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Cloakroom backend running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
