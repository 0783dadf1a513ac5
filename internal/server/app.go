// Package server initializes and runs the eventplanner server: it connects
// to PostgreSQL, applies migrations, wires the services and serves gRPC plus
// the metrics endpoint until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/eventplanner/internal/logging"
	"github.com/dmitrijs2005/eventplanner/internal/server/auth"
	"github.com/dmitrijs2005/eventplanner/internal/server/config"
	"github.com/dmitrijs2005/eventplanner/internal/server/metrics"
	"github.com/dmitrijs2005/eventplanner/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/eventplanner/internal/server/services"
	"github.com/sethvargo/go-retry"

	gs "github.com/dmitrijs2005/eventplanner/internal/server/grpc"
)

// connectBackoff paces the startup ping while the database comes up.
var connectBackoff = func() retry.Backoff {
	return retry.WithMaxRetries(5, retry.NewExponential(200*time.Millisecond))
}

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	userService   *services.UserService
	eventService  *services.EventService
	resolver      *auth.Resolver
	metricsServer *metrics.Server
}

// NewApp opens the database, waits for it, runs migrations and wires the
// services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := waitForDB(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db connect error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return newApp(c, logger, db, rm)
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager) (*App, error) {
	hasher, err := auth.NewBcryptHasher(c.BcryptCost)
	if err != nil {
		return nil, err
	}

	codec, err := auth.NewTokenCodec([]byte(c.SecretKey), c.TokenTTL)
	if err != nil {
		return nil, err
	}

	us, err := services.NewUserService(db, rm, hasher, codec)
	if err != nil {
		return nil, err
	}

	app := &App{
		config:       c,
		logger:       logger,
		db:           db,
		userService:  us,
		eventService: services.NewEventService(db, rm),
		resolver:     auth.NewResolver(codec, time.Now),
	}

	if c.MetricsAddr != "" {
		app.metricsServer = metrics.NewServer(c.MetricsAddr, logger, app.ready)
	}

	return app, nil
}

// waitForDB pings db with exponential backoff.
func waitForDB(ctx context.Context, db *sql.DB) error {
	return retry.Do(ctx, connectBackoff(), func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}

func (app *App) ready(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return app.db.PingContext(ctx) == nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	var m *metrics.Metrics
	if app.metricsServer != nil {
		m = app.metricsServer.Metrics()
	}

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.eventService, app.resolver, m)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "grpc server error", "error", err)
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	errCh, err := app.metricsServer.Start()
	if err != nil {
		app.logger.Error(ctx, "metrics server error", "error", err)
		cancelFunc()
		return
	}

	go func() {
		if err, ok := <-errCh; ok && err != nil {
			cancelFunc()
		}
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if app.metricsServer != nil {
		app.startMetricsServer(ctx, cancelFunc)
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if app.metricsServer != nil {
		if err := app.metricsServer.Stop(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, "metrics shutdown error", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(shutdownCtx, "db close error", "error", err)
	}

	app.logger.Info(shutdownCtx, "App stopped")
}
