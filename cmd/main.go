package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gridstake/pickem/internal/adapters/cache"
	"github.com/gridstake/pickem/internal/adapters/http/api"
	"github.com/gridstake/pickem/internal/adapters/http/docs"
	"github.com/gridstake/pickem/internal/adapters/scoreboard"
	"github.com/gridstake/pickem/internal/app"
	"github.com/gridstake/pickem/internal/config"
	"github.com/gridstake/pickem/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Scoreboard source, optionally behind the redis snapshot cache.
	source := buildSource(ctx, cfg, log)

	// Create and start the service with configuration options
	svc := app.New(
		app.WithLogger(log.Named("leaderboard")),
		app.WithSource(source),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithMaxEntrants(cfg.MaxEntrants),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	// Router with business routes plus the embedded API docs.
	router := api.NewServer(svc).Router()
	docs.Register(router)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// buildSource wires the scoreboard client and, when redis is configured,
// the read-through snapshot cache in front of it.
func buildSource(ctx context.Context, cfg *config.Config, log logger.Logger) scoreboard.Source {
	opts := []scoreboard.Option{
		scoreboard.WithTimeout(time.Duration(cfg.FetchTimeoutMS) * time.Millisecond),
		scoreboard.WithLogger(log.Named("scoreboard")),
	}
	if cfg.ScoreboardBaseURL != "" {
		opts = append(opts, scoreboard.WithBaseURL(cfg.ScoreboardBaseURL))
	}
	client := scoreboard.NewClient(opts...)

	if cfg.RedisAddr == "" {
		return client
	}
	log.Info(ctx, "snapshot cache enabled", logger.String("redis", cfg.RedisAddr))
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	return cache.New(client, rdb,
		cache.WithTTL(time.Duration(cfg.CacheTTLMS)*time.Millisecond),
		cache.WithLogger(log.Named("cache")),
	)
}
