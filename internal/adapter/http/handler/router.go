package handler

import (
	"stellar-payout/config"
	"stellar-payout/internal/adapter/http/middleware"
	redisStore "stellar-payout/internal/adapter/storage/redis"
	"stellar-payout/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	DistributionSvc ports.DistributionService
	AssetSvc        ports.AssetIssuer
	HistoryStore    ports.HistoryStore
	Distribution    config.DistributionConfig
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
// Routes live at the root: the paths are the legacy wire contract.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()
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

	distributionHandler := NewDistributionHandler(deps.DistributionSvc, deps.Distribution)
	historyHandler := NewHistoryHandler(deps.HistoryStore)
	assetHandler := NewAssetHandler(deps.AssetSvc)

	r.GET("/start", rl("start"), distributionHandler.Start)
	r.GET("/history", rl("history"), historyHandler.GetHistory)
	r.POST("/clear-history", rl("history"), historyHandler.ClearHistory)

	r.POST("/create-asset", rl("assets"), assetHandler.CreateAsset)
	r.POST("/deposit-token", rl("assets"), assetHandler.DepositToken)
	r.POST("/withdraw-token", rl("assets"), assetHandler.WithdrawToken)

	return r
}
