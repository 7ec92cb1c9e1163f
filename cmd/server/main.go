// Command server runs the restapis HTTP API.
//
// @title restapis
// @version 1.0
// @description CRUD endpoints for composers, persons, customers, teams and user sessions.
// @BasePath /api
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT returned by /login, sent as "Bearer <token>".
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/restapis/docs"
	"github.com/mmynk/restapis/internal/api"
	"github.com/mmynk/restapis/internal/auth"
	"github.com/mmynk/restapis/internal/config"
	"github.com/mmynk/restapis/internal/service"
	"github.com/mmynk/restapis/internal/storage"
	"github.com/mmynk/restapis/pkg/logging"
)

// connectTimeout bounds opening the store at startup.
const connectTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info", "text")
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize storage
	openCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	backend, err := openBackend(openCtx, cfg.Store)
	cancel()
	if err != nil {
		return err
	}
	store := storage.New(backend)
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()
	slog.Info("Storage initialized", "backend", cfg.Store.Backend)

	secret := cfg.Auth.JWTSecret
	if secret == "" {
		if secret, err = auth.RandomSecret(); err != nil {
			return err
		}
		slog.Warn("JWT_SECRET not set; using a random secret, sessions will not survive a restart")
	}
	jwtManager := auth.NewJWTManager(secret, cfg.Auth.Issuer, cfg.Auth.TokenDuration)
	authenticator := auth.NewPasswordAuthenticator(store, cfg.Auth.BcryptCost)

	docs.SwaggerInfo.BasePath = cfg.API.Prefix

	handler := api.NewRouter(api.Services{
		Composers: service.NewComposerService(store),
		Persons:   service.NewPersonService(store),
		Customers: service.NewCustomerService(store),
		Teams:     service.NewTeamService(store),
		Sessions:  service.NewSessionService(authenticator, jwtManager, store, slog.Default()),
	}, api.Options{
		Prefix:       cfg.API.Prefix,
		StrictStatus: cfg.API.StrictStatus,
		CORSOrigins:  cfg.API.CORSOrigins,
		JWTManager:   jwtManager,
	})

	// Wrap with h2c for HTTP/2 without TLS
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting",
			"address", server.Addr,
			"prefix", cfg.API.Prefix,
			"strict_status", cfg.API.StrictStatus,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
