package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Harshitk-cp/voicebridge/internal/api"
	"github.com/Harshitk-cp/voicebridge/internal/buildconfig"
	"github.com/Harshitk-cp/voicebridge/internal/config"
	"github.com/Harshitk-cp/voicebridge/providers"
	"github.com/Harshitk-cp/voicebridge/voice"
)

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(config.LogLevel())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	entries := config.DefaultProviders()
	if path := config.ProvidersFile(); path != "" {
		entries, err = config.LoadProviders(path)
		if err != nil {
			logger.Fatal("failed to load providers", zap.String("path", path), zap.Error(err))
		}
	}

	registry, err := buildRegistry(entries, logger)
	if err != nil {
		logger.Fatal("failed to build providers", zap.Error(err))
	}
	if len(registry.IDs()) == 0 {
		logger.Fatal("no voice providers configured; set RETELL_API_KEY, VAPI_API_KEY or PROVIDERS_FILE")
	}
	logger.Info("providers registered",
		zap.Strings("providers", registry.IDs()),
		zap.String("version", buildconfig.Version()),
		zap.String("commit", buildconfig.Commit()),
	)

	app := api.NewApp(registry, logger, api.Options{
		Token:          config.GatewayToken(),
		RateLimitRPS:   config.RateLimitRPS(),
		RateLimitBurst: config.RateLimitBurst(),
	})
	defer app.Close()
	if config.GatewayToken() == "" {
		logger.Warn("GATEWAY_TOKEN is not set; /v1 routes are unauthenticated")
	}

	addr := config.ServerAddr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("server stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}

// buildRegistry creates one provider per entry, keeping file order. Each
// vendor client logs its registry id next to the vendor name.
func buildRegistry(entries []config.ProviderEntry, logger *zap.Logger) (*voice.Registry, error) {
	built := make([]voice.RegistryEntry, 0, len(entries))
	for _, e := range entries {
		p, err := providers.New(e.Vendor, providers.Config{
			APIKey:            e.APIKey(),
			BaseURL:           e.BaseURL,
			Logger:            logger.With(zap.String("registry_id", e.ID)),
			RequestsPerSecond: e.RequestsPerSecond,
			Burst:             e.Burst,
		})
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", e.ID, err)
		}
		built = append(built, voice.RegistryEntry{ID: e.ID, Provider: p})
	}
	return voice.NewOrderedRegistry(built...), nil
}
