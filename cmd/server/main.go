package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	checkoutapp "github.com/commercekit/checkout/internal/application/checkout"
	"github.com/commercekit/checkout/internal/domain/checkout"
	"github.com/commercekit/checkout/internal/infrastructure/auth"
	"github.com/commercekit/checkout/internal/infrastructure/commerce"
	"github.com/commercekit/checkout/internal/infrastructure/config"
	"github.com/commercekit/checkout/internal/infrastructure/logger"
	"github.com/commercekit/checkout/internal/infrastructure/preferences"
	"github.com/commercekit/checkout/internal/infrastructure/telemetry"
	"github.com/commercekit/checkout/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting checkout engine",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	commerceConfig := commerce.NewConfig(cfg.Commerce.BaseURL, cfg.Commerce.AccessToken)
	commerceConfig.TimeoutSeconds = cfg.Commerce.TimeoutSeconds
	commerceClient, err := commerce.NewAPIClient(commerceConfig)
	if err != nil {
		log.Fatal("Failed to create commerce client", zap.Error(err))
	}
	log.Info("Commerce client configured", zap.String("base_url", cfg.Commerce.BaseURL))

	prefStore := newPreferenceStore(cfg, log)

	checkoutService := checkoutapp.NewService(commerceClient, prefStore, log)
	sessionService := auth.NewSessionService(cfg.JWT.Secret, cfg.JWT.Issuer, time.Hour)

	engine := router.New(router.Dependencies{
		Config:          cfg,
		Logger:          log,
		CheckoutService: checkoutService,
		SessionService:  sessionService,
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newPreferenceStore builds the preference store selected by configuration.
// The Redis backend falls back to in-memory when Redis is unreachable.
func newPreferenceStore(cfg *config.Config, log *zap.Logger) checkout.PreferenceStore {
	if cfg.Preferences.Backend == "memory" {
		log.Info("using in-memory preference store")
		return preferences.NewInMemoryStore(cfg.Preferences.TTL)
	}

	factory := preferences.NewStoreFactory(preferences.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Preferences.TTL,
	}, preferences.WithLogger(log))

	store, err := factory.CreateStore()
	if err != nil {
		log.Fatal("Failed to create preference store", zap.Error(err))
	}
	return store
}
