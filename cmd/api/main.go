package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ticketing-rewards/config"
	"ticketing-rewards/internal/adapter/http/handler"
	"ticketing-rewards/internal/adapter/storage/postgres"
	redisStore "ticketing-rewards/internal/adapter/storage/redis"
	"ticketing-rewards/internal/core/ports"
	"ticketing-rewards/internal/scheduler"
	"ticketing-rewards/internal/service"
	"ticketing-rewards/pkg/logger"

	"github.com/google/uuid"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Configuration
	cfgPath := os.Getenv("TRS_CONFIG_PATH")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	log.Info().Str("mode", cfg.Server.Mode).Msg("starting ticketing rewards service")

	ctx := context.Background()

	// PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	// Redis
	redisClient, err := redisStore.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close() //nolint:errcheck

	// Repositories
	userRepo := postgres.NewUserRepo(pool)
	bookingRepo := postgres.NewBookingRepo(pool)
	walletRepo := postgres.NewWalletRepo(pool)
	rewardRepo := postgres.NewRewardRepo(pool)
	transactor := postgres.NewTransactor(pool)

	// Redis-backed stores
	countCache := redisStore.NewRewardCountCache(redisClient)
	rateLimitStore := redisStore.NewRateLimitStore(redisClient)

	// Treasury wallet binding. An empty or malformed ID is tolerated at
	// startup; redemptions fail with a wallet-missing error until fixed.
	treasuryID := uuid.Nil
	if cfg.Reward.TreasuryWalletID != "" {
		treasuryID, err = uuid.Parse(cfg.Reward.TreasuryWalletID)
		if err != nil {
			log.Warn().Err(err).Msg("invalid treasury wallet id, redemptions will be unavailable")
			treasuryID = uuid.Nil
		}
	} else {
		log.Warn().Msg("treasury wallet id not configured, redemptions will be unavailable")
	}

	// Services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	notifier := service.NewPushNotifier(cfg.Notifier.URL, &http.Client{Timeout: cfg.Notifier.Timeout}, log)
	randSource := service.NewRandSource()

	evaluator := service.NewEligibilityEvaluator(
		userRepo, bookingRepo,
		cfg.Reward.EligibilityWindow(), int64(cfg.Reward.MinBookings),
	)
	issuanceSvc := service.NewRewardIssuer(
		evaluator, rewardRepo, userRepo, countCache, transactor, randSource, cfg.Reward, log,
	)
	redemptionSvc := service.NewRedemptionService(
		rewardRepo, walletRepo, userRepo, countCache, transactor, notifier, treasuryID, log,
	)
	rewardQuerySvc := service.NewRewardQuery(rewardRepo, countCache, log)
	walletQuerySvc := service.NewWalletQuery(walletRepo)

	// Router
	router := handler.SetupRouter(handler.RouterDeps{
		IssuanceSvc:    issuanceSvc,
		RedemptionSvc:  redemptionSvc,
		RewardQuerySvc: rewardQuerySvc,
		WalletQuerySvc: walletQuerySvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{
			postgres.NewHealthCheck(pool),
			redisStore.NewHealthCheck(redisClient),
		},
		DebugAuth: cfg.Server.Mode == "debug",
		Logger:    log,
	})

	// Eligibility sweep
	var sweep *scheduler.Sweep
	if cfg.Reward.SweepEnabled {
		sweep = scheduler.NewSweep(
			bookingRepo, issuanceSvc,
			cfg.Reward.EligibilityWindow(), cfg.Reward.SweepSchedule, log,
		)
		if err := sweep.Start(); err != nil {
			log.Fatal().Err(err).Msg("failed to start eligibility sweep")
		}
	}

	// HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if sweep != nil {
		<-sweep.Stop().Done()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	log.Info().Msg("server stopped")
}
