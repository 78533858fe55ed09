package main

import (
	"context"
	"time"

	"github.com/flexprice/rates/internal/api"
	v1 "github.com/flexprice/rates/internal/api/v1"
	"github.com/flexprice/rates/internal/cache"
	"github.com/flexprice/rates/internal/config"
	"github.com/flexprice/rates/internal/logger"
	"github.com/flexprice/rates/internal/postgres"
	"github.com/flexprice/rates/internal/pyroscope"
	"github.com/flexprice/rates/internal/repository"
	"github.com/flexprice/rates/internal/sentry"
	"github.com/flexprice/rates/internal/service"
	"github.com/flexprice/rates/internal/types"
	"github.com/flexprice/rates/internal/validator"
	"github.com/gin-gonic/gin"
	govalidator "github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

func init() {
	// Dates are calendar days, keep everything in UTC
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.Initialize,

			// Postgres
			postgres.NewDB,
			provideDBClient,

			// Repositories
			repository.NewPriceDefinitionRepository,
			repository.NewPriceRepository,
			repository.NewSeasonRepository,
			repository.NewFactorRepository,
			repository.NewDiscountByDayRepository,
			repository.NewPromotionCodeRepository,
			repository.NewDiscountRepository,
		),
	)

	// Monitoring
	opts = append(opts,
		sentry.Module(),
		pyroscope.Module(),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewRateService,
			service.NewPriceDefinitionService,
			service.NewSeasonDefinitionService,
			service.NewFactorDefinitionService,
			service.NewDiscountByDayDefinitionService,
			service.NewPromotionCodeService,
			service.NewDiscountService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			// DTO validation goes through the package level validator, build it eagerly
			func(*govalidator.Validate) {},
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideDBClient(db *postgres.DB) postgres.IClient {
	return db
}

func provideHandlers(
	db *postgres.DB,
	logger *logger.Logger,
	rateService service.RateService,
	priceDefinitionService service.PriceDefinitionService,
	seasonService service.SeasonDefinitionService,
	factorService service.FactorDefinitionService,
	discountByDayService service.DiscountByDayDefinitionService,
	promotionCodeService service.PromotionCodeService,
	discountService service.DiscountService,
) api.Handlers {
	return api.Handlers{
		Health:          v1.NewHealthHandler(db, logger),
		Rate:            v1.NewRateHandler(rateService, logger),
		PriceDefinition: v1.NewPriceDefinitionHandler(priceDefinitionService, logger),
		Season:          v1.NewSeasonHandler(seasonService, logger),
		Factor:          v1.NewFactorHandler(factorService, logger),
		DiscountByDay:   v1.NewDiscountByDayHandler(discountByDayService, logger),
		PromotionCode:   v1.NewPromotionCodeHandler(promotionCodeService, logger),
		Discount:        v1.NewDiscountHandler(discountService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	db *postgres.DB,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal:
		runMigrations(lc, db, log)
		startAPIServer(lc, r, cfg, log)
	case types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			db.Close()
			return nil
		},
	})
}

// runMigrations brings a local database up to date before the server starts
func runMigrations(lc fx.Lifecycle, db *postgres.DB, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			applied, err := db.Migrate(ctx)
			if err != nil {
				return err
			}
			log.Infow("database migrations applied", "versions", applied)
			return nil
		},
	})
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server...")
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
