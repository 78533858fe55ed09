package repository

import (
	"github.com/flexprice/rates/internal/domain/discount"
	"github.com/flexprice/rates/internal/domain/discountbyday"
	"github.com/flexprice/rates/internal/domain/factor"
	"github.com/flexprice/rates/internal/domain/price"
	"github.com/flexprice/rates/internal/domain/pricedefinition"
	"github.com/flexprice/rates/internal/domain/promotioncode"
	"github.com/flexprice/rates/internal/domain/season"
	"github.com/flexprice/rates/internal/logger"
	"github.com/flexprice/rates/internal/postgres"
	postgresRepo "github.com/flexprice/rates/internal/repository/postgres"
)

func NewPriceDefinitionRepository(db *postgres.DB, logger *logger.Logger) pricedefinition.Repository {
	return postgresRepo.NewPriceDefinitionRepository(db, logger)
}

func NewPriceRepository(db *postgres.DB, logger *logger.Logger) price.Repository {
	return postgresRepo.NewPriceRepository(db, logger)
}

func NewSeasonRepository(db *postgres.DB, logger *logger.Logger) season.Repository {
	return postgresRepo.NewSeasonRepository(db, logger)
}

func NewFactorRepository(db *postgres.DB, logger *logger.Logger) factor.Repository {
	return postgresRepo.NewFactorRepository(db, logger)
}

func NewDiscountByDayRepository(db *postgres.DB, logger *logger.Logger) discountbyday.Repository {
	return postgresRepo.NewDiscountByDayRepository(db, logger)
}

func NewPromotionCodeRepository(db *postgres.DB, logger *logger.Logger) promotioncode.Repository {
	return postgresRepo.NewPromotionCodeRepository(db, logger)
}

func NewDiscountRepository(db *postgres.DB, logger *logger.Logger) discount.Repository {
	return postgresRepo.NewDiscountRepository(db, logger)
}
