package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/veiculos-api/veiculos-api/internal/admins"
	"github.com/veiculos-api/veiculos-api/internal/app"
	"github.com/veiculos-api/veiculos-api/internal/auth"
	"github.com/veiculos-api/veiculos-api/internal/platform/db"
	"github.com/veiculos-api/veiculos-api/internal/vehicles"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN, cfg.PGMaxConns)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	if err := db.Migrate(ctx, dbpool); err != nil {
		logger.Error("migrate", slog.Any("error", err))
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	scheme, err := auth.SchemeFromName(cfg.CredentialScheme)
	if err != nil {
		logger.Error("credential scheme", slog.Any("error", err))
		os.Exit(1)
	}

	authRepo := auth.NewRepository(dbpool)
	authService := auth.NewService(authRepo, scheme, logger)
	if err := authService.EnsureDefaultAdministrator(ctx); err != nil {
		logger.Error("seed administrator", slog.Any("error", err))
		os.Exit(1)
	}

	issuer := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)
	verifier := auth.NewTokenVerifier([]byte(cfg.JWTSecret))
	authMiddleware := auth.Middleware{Verifier: verifier, Logger: logger}
	authHandler := auth.NewHandler(logger, authService, issuer)

	adminsRepo := admins.NewRepository(dbpool)
	adminsService := admins.NewService(adminsRepo, scheme)
	adminsHandler := admins.NewHandler(logger, adminsService, authMiddleware)

	vehiclesRepo := vehicles.NewRepository(dbpool)
	vehiclesCache := vehicles.NewCache(redisClient, cfg.CacheTTL)
	vehiclesService := vehicles.NewService(vehiclesRepo, vehiclesCache, logger)
	vehiclesHandler := vehicles.NewHandler(logger, vehiclesService, authMiddleware)

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		AuthHandler:     authHandler,
		AdminsHandler:   adminsHandler,
		VehiclesHandler: vehiclesHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server", slog.Any("error", err))
		os.Exit(1)
	}
}
