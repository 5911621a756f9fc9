package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"storefront-service/internal/admin"
	"storefront-service/internal/cart"
	"storefront-service/internal/catalog"
	"storefront-service/internal/handler"
	"storefront-service/internal/middleware"
	"storefront-service/internal/model"
	"storefront-service/internal/settings"
	"storefront-service/internal/stylist"
	"storefront-service/pkg/config"
	"storefront-service/pkg/jwtutil"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the storefront HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting storefront service...", cfg.LogFields()...)

	prometheus.InitMetrics(cfg, prom.DefaultRegisterer)
	log.Info("Prometheus metrics initialized")

	store, err := openStorage(cfg, log)
	if err != nil {
		log.Error("Failed to open storage", zap.Error(err))
		return err
	}
	defer func() {
		if err := store.close(); err != nil {
			log.Warn("Failed to close storage", zap.Error(err))
		}
	}()

	ctx := logger.WithContext(cmd.Context(), log)
	products := catalog.Open(ctx, store)
	shopSettings := settings.Open(ctx, store, model.Settings{
		WhatsAppNumber: cfg.Defaults.WhatsAppNumber,
		AdminEmail:     cfg.Defaults.AdminEmail,
	})
	prometheus.RecordCatalogSize(products.Len())
	log.Info("Stores loaded", zap.Int("products", products.Len()))

	llm, err := stylist.NewOpenAIModel(cfg.Stylist.BaseURL, cfg.Stylist.Model, cfg.Stylist.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create stylist model: %w", err)
	}
	if cfg.Stylist.APIKey == "" {
		log.Warn("STYLIST_API_KEY is not set, the stylist will answer with its offline reply")
	}

	h := handler.NewHandler(handler.Deps{
		Catalog:  products,
		Carts:    cart.NewRegistry(store),
		Settings: shopSettings,
		Admin:    admin.NewService(products, shopSettings),
		Sessions: admin.NewSessions(adminVerifier(cfg)),
		Tokens: jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
			SigningKey:      cfg.JWT.SigningKey,
			ExpirationHours: cfg.JWT.ExpirationHours,
		}),
		Stylist: stylist.NewConversations(llm, cfg.Stylist.Model, cfg.Stylist.Timeout),
		Ready:   store.ready,
	})

	e := echo.New()
	e.HideBanner = true

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(middleware.MetricsMiddleware)
	e.Use(logger.Middleware("/health", "/ready", "/metrics"))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	handler.RegisterRoutes(e, h)

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("port", cfg.Server.Port))
		errCh <- e.Start(":" + cfg.Server.Port)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server stopped", zap.Error(err))
			return err
		}
		return nil
	case <-cmd.Context().Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
		return err
	}
	return nil
}

func adminVerifier(cfg *config.Config) admin.Verifier {
	if cfg.Admin.SecretHash != "" {
		return admin.BcryptVerifier{Hash: cfg.Admin.SecretHash}
	}
	return admin.SecretVerifier{Secret: cfg.Admin.Secret}
}
