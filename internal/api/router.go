package api

import (
	v1 "github.com/flexprice/rates/internal/api/v1"
	"github.com/flexprice/rates/internal/config"
	"github.com/flexprice/rates/internal/logger"
	"github.com/flexprice/rates/internal/rest/middleware"
	"github.com/flexprice/rates/internal/types"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health          *v1.HealthHandler
	Rate            *v1.RateHandler
	PriceDefinition *v1.PriceDefinitionHandler
	Season          *v1.SeasonHandler
	Factor          *v1.FactorHandler
	DiscountByDay   *v1.DiscountByDayHandler
	PromotionCode   *v1.PromotionCodeHandler
	Discount        *v1.DiscountHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	if cfg.Logging.Level != types.LogLevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.SentryMiddleware(cfg),
		middleware.CORSMiddleware,
		middleware.RequestIDMiddleware,
		middleware.TenantMiddleware,
		middleware.LoggingMiddleware(logger),
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	registerV1Routes(router.Group("/v1"), handlers, cfg)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers, cfg *config.Configuration) {
	rates := router.Group("/rates", middleware.RateLimitMiddleware(cfg.Rates.QuoteRateLimit, cfg.Rates.QuoteBurst))
	{
		rates.POST("/quote", handlers.Rate.Quote)
		rates.POST("/quote/multiple", handlers.Rate.QuoteMultiple)
		rates.POST("/quote/batch", handlers.Rate.QuoteBatch)
	}

	priceDefinitions := router.Group("/price-definitions")
	{
		priceDefinitions.POST("", handlers.PriceDefinition.Create)
		priceDefinitions.GET("", handlers.PriceDefinition.List)
		priceDefinitions.GET("/:id", handlers.PriceDefinition.Get)
		priceDefinitions.DELETE("/:id", handlers.PriceDefinition.Delete)
		priceDefinitions.GET("/:id/prices", handlers.PriceDefinition.GetPriceTable)
		priceDefinitions.PUT("/:id/prices", handlers.PriceDefinition.ReplacePrices)
	}

	seasons := router.Group("/season-definitions")
	{
		seasons.POST("", handlers.Season.Create)
		seasons.GET("", handlers.Season.List)
		seasons.GET("/:id", handlers.Season.Get)
		seasons.DELETE("/:id", handlers.Season.Delete)
		seasons.GET("/:id/coverage", handlers.Season.Coverage)
		seasons.POST("/:id/copy", handlers.Season.Copy)
	}

	factors := router.Group("/factor-definitions")
	{
		factors.POST("", handlers.Factor.Create)
		factors.GET("/:id", handlers.Factor.Get)
		factors.DELETE("/:id", handlers.Factor.Delete)
		factors.POST("/:id/copy", handlers.Factor.Copy)
	}

	discountsByDay := router.Group("/discount-by-day-definitions")
	{
		discountsByDay.POST("", handlers.DiscountByDay.Create)
		discountsByDay.GET("/:id", handlers.DiscountByDay.Get)
		discountsByDay.DELETE("/:id", handlers.DiscountByDay.Delete)
		discountsByDay.POST("/:id/copy", handlers.DiscountByDay.Copy)
	}

	promotionCodes := router.Group("/promotion-codes")
	{
		promotionCodes.POST("", handlers.PromotionCode.Create)
		promotionCodes.GET("", handlers.PromotionCode.List)
		promotionCodes.POST("/validate", handlers.PromotionCode.Validate)
	}

	discounts := router.Group("/discounts")
	{
		discounts.POST("", handlers.Discount.Create)
		discounts.GET("/active", handlers.Discount.Active)
	}
}
