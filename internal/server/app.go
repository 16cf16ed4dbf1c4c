// Package server initializes and runs the identity service.
// It wires the repository layer, the token service, the notification
// dispatcher and the HTTP router, and handles graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/JayatheerthP/OraBank/internal/logging"
	"github.com/JayatheerthP/OraBank/internal/server/auth"
	"github.com/JayatheerthP/OraBank/internal/server/config"
	"github.com/JayatheerthP/OraBank/internal/server/httpapi"
	"github.com/JayatheerthP/OraBank/internal/server/notifications"
	"github.com/JayatheerthP/OraBank/internal/server/password"
	"github.com/JayatheerthP/OraBank/internal/server/shared/db"
	"github.com/JayatheerthP/OraBank/internal/server/users"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	manager     db.RepositoryManager
	publisher   *notifications.KafkaPublisher
	userService *users.Service
	tokens      *auth.TokenService
}

func NewApp(c *config.Config) (*App, error) {

	logger, err := newLogger(c.Environment)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	um, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	tokens, err := auth.NewTokenService(c.SecretKey, c.TokenValiditySeconds, logger)
	if err != nil {
		return nil, fmt.Errorf("token service init error: %w", err)
	}

	publisher := notifications.NewKafkaPublisher(c.KafkaBrokerAddr)
	notifier := notifications.NewDispatcher(publisher, logger)

	guard := users.NewLockoutGuard(um.Users(), logger)
	us := users.NewService(um.Users(), guard, password.NewBcryptHasher(), tokens, notifier, logger)

	return &App{
		config:      c,
		logger:      logger,
		manager:     um,
		publisher:   publisher,
		userService: us,
		tokens:      tokens,
	}, nil
}

// newLogger selects the logging backend for the given environment.
// Production uses zap, everything else a text slog to stdout.
func newLogger(environment string) (logging.Logger, error) {
	if environment == "production" {
		zl, err := zap.NewProduction()
		if err != nil {
			return nil, err
		}
		return logging.NewZapLogger(zl), nil
	}
	return logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil))), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	router := httpapi.NewRouter(app.userService, app.tokens, app.logger,
		app.config.Environment == "production")

	srv := &http.Server{
		Addr:    app.config.EndpointAddrHTTP,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, "http server shutdown error", "error", err.Error())
		}
	}()

	app.logger.Info(ctx, "starting http server", "addr", app.config.EndpointAddrHTTP)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app...")

	if err := app.manager.RunMigrations(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	app.initSignalHandler(cancelFunc)

	app.startHTTPServer(ctx, cancelFunc)

	if err := app.publisher.Close(); err != nil {
		app.logger.Error(ctx, "kafka publisher close error", "error", err.Error())
	}
	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}

	app.logger.Info(ctx, "app stopped")
	return nil
}
