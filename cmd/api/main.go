package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gestorzap/gestorzap-backend/api/routes"
	"github.com/gestorzap/gestorzap-backend/internal/approvals"
	"github.com/gestorzap/gestorzap-backend/internal/auth"
	"github.com/gestorzap/gestorzap-backend/internal/clients"
	"github.com/gestorzap/gestorzap-backend/internal/dashboard"
	"github.com/gestorzap/gestorzap-backend/internal/messages"
	"github.com/gestorzap/gestorzap-backend/internal/payments"
	"github.com/gestorzap/gestorzap-backend/internal/profiles"
	"github.com/gestorzap/gestorzap-backend/internal/users"
	"github.com/gestorzap/gestorzap-backend/pkg/auth/confirm"
	"github.com/gestorzap/gestorzap-backend/pkg/auth/session"
	"github.com/gestorzap/gestorzap-backend/pkg/config"
	"github.com/gestorzap/gestorzap-backend/pkg/db"
	"github.com/gestorzap/gestorzap-backend/pkg/logger"
	"github.com/gestorzap/gestorzap-backend/pkg/metrics"
	"github.com/gestorzap/gestorzap-backend/pkg/migrate"
	"github.com/gestorzap/gestorzap-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	confirmTokens, err := confirm.NewIssuer(redisClient, cfg.Signup.ConfirmTokenTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create confirm token issuer", err)
		os.Exit(1)
	}

	userRepo := users.NewRepository(dbClient.DB())
	profileRepo := profiles.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		ProfileRepo:    profileRepo,
		SessionManager: sessionManager,
		ConfirmTokens:  confirmTokens,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		UserRepo:       userRepo,
		ProfileRepo:    profileRepo,
		ConfirmTokens:  confirmTokens,
		PasswordConfig: cfg.Password,
		SignupConfig:   cfg.Signup,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	clientService, err := clients.NewService(clients.ServiceParams{
		Repo: clients.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create clients service", err)
		os.Exit(1)
	}

	paymentService, err := payments.NewService(payments.ServiceParams{
		Repo: payments.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create payments service", err)
		os.Exit(1)
	}

	messageService, err := messages.NewService(messages.ServiceParams{
		Repo: messages.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create messages service", err)
		os.Exit(1)
	}

	dashboardService, err := dashboard.NewService(dashboard.ServiceParams{
		Clients:  clients.NewRepository(dbClient.DB()),
		Payments: paymentService,
		Messages: messageService,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
		os.Exit(1)
	}

	approvalService, err := approvals.NewService(approvals.ServiceParams{
		ProfileRepo: profileRepo,
		UserRepo:    userRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create approvals service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			sessionManager,
			httpMetrics,
			prometheus.DefaultGatherer,
			profileRepo,
			authService,
			registerService,
			clientService,
			paymentService,
			messageService,
			dashboardService,
			approvalService,
		),
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-shutdown:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}
