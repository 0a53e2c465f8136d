package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golden-catering/internal/auth"
	"golden-catering/internal/client"
	"golden-catering/internal/config"
	"golden-catering/internal/repository"
	"golden-catering/internal/server"
	"golden-catering/internal/service"
	"golden-catering/pkg/logging"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Level)

	if cfg.UsingDefaultJWTSecret() {
		slog.Warn("JWT_SECRET not set, signing tokens with the insecure default")
	}

	db, err := client.InitSqliteClient(cfg.DatabasePath)
	if err != nil {
		slog.Error("database init failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := packageRepo.Seed(seedCtx); err != nil {
		slog.Error("seeding packages failed", "error", err)
		os.Exit(1)
	}
	if err := menuItemRepo.Seed(seedCtx); err != nil {
		slog.Error("seeding menu items failed", "error", err)
		os.Exit(1)
	}
	seedCancel()

	tokens := auth.NewJWTManager(cfg.JWTSecret, auth.TokenTTL)

	authService := service.NewAuthService(userRepo, tokens)
	catalogService := service.NewCatalogService(packageRepo, menuItemRepo)
	orderService := service.NewOrderService(orderRepo, packageRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(cfg, authService, catalogService, orderService)

	slog.Info("starting HTTP server", "addr", serverAddr, "db", cfg.DatabasePath)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	slog.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	if err := client.CloseSqliteClient(db); err != nil {
		slog.Error("database close error", "error", err)
	}
}
