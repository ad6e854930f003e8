package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/holi/give-server/internal/api"
	"github.com/holi/give-server/internal/config"
	"github.com/holi/give-server/internal/square"
	"github.com/holi/give-server/internal/telemetry"
)

func main() {
	if err := telemetry.InitTelemetry("give-server"); err != nil {
		panic(err)
	}
	defer telemetry.Shutdown(context.Background())

	telemetry.Logger.Info("Starting give server")

	cfg, err := config.Load()
	if err != nil {
		telemetry.Logger.Fatal("Invalid configuration", zap.Error(err))
	}

	client := square.New(cfg.SquareAccessToken, cfg.SquareEnvironment)

	// Optional one-shot Apple Pay domain registration; never blocks serving.
	if cfg.RegisterAppleDomain {
		go registerAppleDomainOnBoot(client, cfg.ApplePayDomain)
	}

	r := api.NewRouter(cfg, client)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		telemetry.Logger.Info("Give server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			telemetry.Logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	telemetry.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		telemetry.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	telemetry.Logger.Info("Server exited")
}

func registerAppleDomainOnBoot(client *square.Client, domain string) {
	if domain == "" {
		telemetry.Logger.Warn("Skipping Apple Pay auto-register: APPLE_PAY_DOMAIN not set")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	already, err := client.RegisterApplePayDomain(ctx, domain)
	if err != nil {
		telemetry.Logger.Error("Apple Pay auto-register failed",
			zap.String("domain", domain), zap.Error(err))
		return
	}
	telemetry.Logger.Info("Apple Pay domain registered",
		zap.String("domain", domain), zap.Bool("already", already))
}
