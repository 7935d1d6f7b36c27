package handler

import (
	"ticketing-rewards/internal/adapter/http/middleware"
	redisStore "ticketing-rewards/internal/adapter/storage/redis"
	"ticketing-rewards/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	IssuanceSvc    ports.RewardIssuanceService
	RedemptionSvc  ports.RewardRedemptionService
	RewardQuerySvc ports.RewardQueryService
	WalletQuerySvc ports.WalletQueryService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	DebugAuth      bool // mount the dev token endpoint
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Dev-only token minting ---
	if deps.DebugAuth {
		authHandler := NewAuthHandler(deps.TokenSvc)
		v1.POST("/auth/token", rl("auth_token"), authHandler.Token)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	rewardHandler := NewRewardHandler(deps.IssuanceSvc, deps.RedemptionSvc, deps.RewardQuerySvc)
	walletHandler := NewWalletHandler(deps.WalletQuerySvc)

	rewards := v1.Group("/rewards", jwtAuth)
	{
		rewards.POST("/generate", rl("rewards_generate"), rewardHandler.Generate)
		rewards.GET("", rl("queries"), rewardHandler.List)
		rewards.GET("/count", rl("queries"), rewardHandler.Count)
		rewards.POST("/redeem-all", rl("rewards_redeem"), rewardHandler.RedeemAll)
		rewards.POST("/:id/redeem", rl("rewards_redeem"), rewardHandler.RedeemOne)
	}

	wallet := v1.Group("/wallet", jwtAuth)
	{
		wallet.GET("", rl("queries"), walletHandler.GetStatement)
	}

	return r
}
