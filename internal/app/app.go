package app

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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/adslot-go/internal/config"
	"github.com/kirinyoku/adslot-go/internal/postgres"
	"github.com/kirinyoku/adslot-go/internal/redis"
	postgresrepo "github.com/kirinyoku/adslot-go/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/adslot-go/internal/repository/redis"
	"github.com/kirinyoku/adslot-go/internal/scheduler"
	"github.com/kirinyoku/adslot-go/internal/service"
	httpgin "github.com/kirinyoku/adslot-go/internal/transport/http/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const applicationName = "adslot"

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	pool       *pgxpool.Pool
	rdb        *goredis.Client
	services   *service.Services
	sweeper    *scheduler.Sweeper
	httpServer *http.Server
}

// New connects to Postgres and Redis and wires every service and the HTTP router.
// The caller owns the returned App and must Close it.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.New"

	pgxPool, err := postgres.New(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN(),
		MaxConns:        cfg.Postgres.MaxConns,
		ApplicationName: applicationName,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to initialize postgres: %w", op, err)
	}

	rdb, err := redis.New(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		pgxPool.Close()
		return nil, fmt.Errorf("%s: failed to initialize redis: %w", op, err)
	}

	// Initialize repositories
	store := postgresrepo.NewStore(pgxPool)
	cache := redisrepo.New(rdb)
	pubsub := redisrepo.NewZonesPubSub(rdb)
	checkoutLimiter := redisrepo.NewSlidingWindowLimiter(rdb, nil, "checkout", cfg.Limits.CheckoutPerMinute, time.Minute)
	promoLimiter := redisrepo.NewSlidingWindowLimiter(rdb, nil, "promo", cfg.Limits.PromoPerMinute, time.Minute)
	idempotencyStore := redisrepo.NewIdempotencyStore(rdb, cfg.Cache.IdempotencyTTL, cfg.Cache.IdempotencyLock)

	// Initialize services
	services := service.NewServices(store, cache, pubsub, nil, service.ConfigFrom(cfg), logger)

	// Initialize Gin router
	router := httpgin.NewRouter(httpgin.Deps{
		Availability:    services.Availability,
		Promos:          services.Promo,
		Alternates:      services.Alternates,
		Checkout:        services.Checkout,
		Reservations:    services.Reservation,
		Payments:        services.Gateway,
		Idempotency:     idempotencyStore,
		CheckoutLimiter: checkoutLimiter,
		PromoLimiter:    promoLimiter,
		Zones:           pubsub,
		Service:         cfg.Booking.Service,
		AllowOrigins:    cfg.Server.AllowOrigins,
		AdminToken:      cfg.Server.AdminToken,
	}, logger)

	a := &App{
		cfg:      cfg,
		logger:   logger,
		pool:     pgxPool,
		rdb:      rdb,
		services: services,
		httpServer: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	if cfg.Server.DevMode {
		logger.Warn("DEV_MODE is on, admin token and webhook secret checks are relaxed")
	}

	if cfg.Sweep.Enabled {
		a.sweeper = scheduler.NewSweeper(services.Checkout, cfg.Sweep.Interval, cfg.Sweep.BatchSize, logger)
	}

	return a, nil
}

// Run serves HTTP, and sweeps expired checkouts when enabled, until ctx ends or SIGINT/SIGTERM arrives.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "addr", a.httpServer.Addr)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	if a.sweeper != nil {
		g.Go(func() error {
			return keepSweeping(gCtx, a.sweeper, a.logger)
		})
	}

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}

type sweepRunner interface {
	Run(ctx context.Context) error
}

// keepSweeping runs the sweeper until ctx ends. Stopping on ctx is not a failure.
func keepSweeping(ctx context.Context, sweeper sweepRunner, logger *slog.Logger) error {
	err := sweeper.Run(ctx)
	if err == nil || (ctx.Err() != nil && errors.Is(err, ctx.Err())) {
		return nil
	}

	logger.Error("expiry sweeper failed", slog.String("error", err.Error()))
	return fmt.Errorf("expiry sweeper: %w", err)
}

// Sweeper returns the configured sweeper, building one when sweeping is disabled for serve.
func (a *App) Sweeper() *scheduler.Sweeper {
	if a.sweeper != nil {
		return a.sweeper
	}
	return scheduler.NewSweeper(a.services.Checkout, a.cfg.Sweep.Interval, a.cfg.Sweep.BatchSize, a.logger)
}

func (a *App) Close() {
	if err := a.rdb.Close(); err != nil {
		a.logger.Warn("closing redis", slog.String("error", err.Error()))
	}
	a.pool.Close()
}
