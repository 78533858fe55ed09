package testutil

import (
	"context"
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
	"github.com/flexprice/rates/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	PriceDefinitionRepo pricedefinition.Repository
	PriceRepo           price.Repository
	SeasonRepo          season.Repository
	FactorRepo          factor.Repository
	DiscountByDayRepo   discountbyday.Repository
	PromotionCodeRepo   promotioncode.Repository
	DiscountRepo        discount.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	db     *MockPostgresClient
	cache  *cache.InMemoryCache
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	s.config = config.GetDefaultConfig()
	s.logger = logger.NewNopLogger()
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.setupStores()
	s.cache = cache.NewInMemoryCache(s.config, s.logger)
	s.db = NewMockPostgresClient()
	s.now = time.Date(2025, time.July, 1, 10, 0, 0, 0, time.UTC)
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
	s.cache.Flush(s.ctx)
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		PriceDefinitionRepo: NewInMemoryPriceDefinitionStore(),
		PriceRepo:           NewInMemoryPriceStore(),
		SeasonRepo:          NewInMemorySeasonStore(),
		FactorRepo:          NewInMemoryFactorStore(),
		DiscountByDayRepo:   NewInMemoryDiscountByDayStore(),
		PromotionCodeRepo:   NewInMemoryPromotionCodeStore(),
		DiscountRepo:        NewInMemoryDiscountStore(),
	}
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.PriceDefinitionRepo.(*InMemoryPriceDefinitionStore).Clear()
	s.stores.PriceRepo.(*InMemoryPriceStore).Clear()
	s.stores.SeasonRepo.(*InMemorySeasonStore).Clear()
	s.stores.FactorRepo.(*InMemoryFactorStore).Clear()
	s.stores.DiscountByDayRepo.(*InMemoryDiscountByDayStore).Clear()
	s.stores.PromotionCodeRepo.(*InMemoryPromotionCodeStore).Clear()
	s.stores.DiscountRepo.(*InMemoryDiscountStore).Clear()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

// GetMockDB exposes the rollback counter of the mock client
func (s *BaseServiceTestSuite) GetMockDB() *MockPostgresClient {
	return s.db
}

func (s *BaseServiceTestSuite) GetCache() *cache.InMemoryCache {
	return s.cache
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the pinned test clock
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
