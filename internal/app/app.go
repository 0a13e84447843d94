package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/result-tracker/internal/adapter/postgres"
	"github.com/heartmarshall/result-tracker/internal/adapter/postgres/event"
	"github.com/heartmarshall/result-tracker/internal/adapter/postgres/reference"
	resultrepo "github.com/heartmarshall/result-tracker/internal/adapter/postgres/result"
	"github.com/heartmarshall/result-tracker/internal/adapter/postgres/status"
	"github.com/heartmarshall/result-tracker/internal/adapter/provider/screenshot"
	"github.com/heartmarshall/result-tracker/internal/audit"
	"github.com/heartmarshall/result-tracker/internal/auth"
	"github.com/heartmarshall/result-tracker/internal/config"
	"github.com/heartmarshall/result-tracker/internal/domain"
	resultsvc "github.com/heartmarshall/result-tracker/internal/service/result"
	"github.com/heartmarshall/result-tracker/internal/transport/middleware"
	"github.com/heartmarshall/result-tracker/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories
	referenceRepo := reference.New(pool)
	statusRepo := status.New(pool)
	resultRepo := resultrepo.New(pool)
	eventRepo := event.New(pool)

	// Audit engine
	classifier, err := audit.NewClassifier(domain.ResultSchema)
	if err != nil {
		return fmt.Errorf("build audit classifier: %w", err)
	}
	builder := audit.NewBuilder(logger, classifier, audit.NewResolver(referenceRepo))

	// Services
	screenshots := screenshot.New(cfg.Screenshot, logger)
	if !cfg.Screenshot.Enabled() {
		logger.Warn("screenshot endpoint not configured, screenshots disabled")
	}

	results := resultsvc.NewService(
		logger,
		resultRepo,
		statusRepo,
		eventRepo,
		builder,
		screenshots,
		postgres.NewTxManager(pool),
		cfg.Screenshot,
	)
	defer results.Wait()

	// Transport
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	router := rest.NewRouter(
		rest.NewResultHandler(results, logger),
		rest.NewHealthHandler(pool, BuildVersion(), cfg.Screenshot.Enabled()),
		rateLimiter.Limit(cfg.Server.CallbackRateLimit),
	)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Recovery(logger),
		middleware.Auth(jwtManager, logger),
		middleware.Logger(logger),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
