package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mvachon/userd/internal/api"
	"github.com/mvachon/userd/internal/config"
	"github.com/mvachon/userd/internal/repository/postgres"
	"github.com/mvachon/userd/internal/service"
	"github.com/mvachon/userd/internal/session"
	"github.com/redis/go-redis/v9"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL())
	if err != nil {
		slog.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	repos := postgres.NewRepositories(db)

	// Initialize session store
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr()})
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		slog.Error("failed to connect to session store", slog.Any("error", err))
		os.Exit(1)
	}
	sessions := session.NewManager(
		session.NewRedisStore(redisClient),
		[]byte(cfg.SessionSecret),
		cfg.SessionTTL,
		cfg.CookieSecure,
	)

	// Initialize services and router
	services := service.NewServices(repos, sessions)
	router := api.NewRouter(services, sessions, repos)

	srv := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", slog.String("addr", cfg.ListenAddr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("server stopped")
}
