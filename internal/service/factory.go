package service

import (
	"time"

	"github.com/flexprice/rates/internal/cache"
	"github.com/flexprice/rates/internal/config"
	"github.com/flexprice/rates/internal/domain/discount"
	"github.com/flexprice/rates/internal/domain/discountbyday"
	"github.com/flexprice/rates/internal/domain/factor"
	"github.com/flexprice/rates/internal/domain/price"
	"github.com/flexprice/rates/internal/domain/pricedefinition"
	"github.com/flexprice/rates/internal/domain/promotioncode"
	"github.com/flexprice/rates/internal/domain/season"
	"github.com/flexprice/rates/internal/logger"
	"github.com/flexprice/rates/internal/postgres"
	"github.com/flexprice/rates/internal/types"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient
	Cache  cache.Cache

	// Repositories
	PriceDefinitionRepo pricedefinition.Repository
	PriceRepo           price.Repository
	SeasonRepo          season.Repository
	FactorRepo          factor.Repository
	DiscountByDayRepo   discountbyday.Repository
	PromotionCodeRepo   promotioncode.Repository
	DiscountRepo        discount.Repository

	// Clock returns the current time, tests pin it
	Clock func() time.Time
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	cache cache.Cache,
	priceDefinitionRepo pricedefinition.Repository,
	priceRepo price.Repository,
	seasonRepo season.Repository,
	factorRepo factor.Repository,
	discountByDayRepo discountbyday.Repository,
	promotionCodeRepo promotioncode.Repository,
	discountRepo discount.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:              logger,
		Config:              config,
		DB:                  db,
		Cache:               cache,
		PriceDefinitionRepo: priceDefinitionRepo,
		PriceRepo:           priceRepo,
		SeasonRepo:          seasonRepo,
		FactorRepo:          factorRepo,
		DiscountByDayRepo:   discountByDayRepo,
		PromotionCodeRepo:   promotionCodeRepo,
		DiscountRepo:        discountRepo,
		Clock:               time.Now,
	}
}

// today is the current calendar day in UTC
func (p ServiceParams) today() time.Time {
	if p.Clock == nil {
		return types.TruncateToDay(time.Now().UTC())
	}
	return types.TruncateToDay(p.Clock().UTC())
}
