package postgres

import (
	"context"

	"github.com/flexprice/rates/internal/domain/price"
	"github.com/flexprice/rates/internal/logger"
	"github.com/flexprice/rates/internal/postgres"
	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
)

type priceRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPriceRepository(db *postgres.DB, logger *logger.Logger) price.Repository {
	return &priceRepository{db: db, logger: logger}
}

func (r *priceRepository) CreateBulk(ctx context.Context, prices []*price.Price) error {
	if len(prices) == 0 {
		return nil
	}

	query := `
		INSERT INTO rates_prices (
			id, tenant_id, price_definition_id, season_id, units, price, adjust_operation, adjust_amount,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :tenant_id, :price_definition_id, :season_id, :units, :price, :adjust_operation, :adjust_amount,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.WithContext(ctx).Debugw("creating prices",
		"price_definition_id", prices[0].PriceDefinitionID,
		"count", len(prices),
	)

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, lo.FromSlicePtr(prices)); err != nil {
		return postgres.WrapError(err, "price")
	}
	return nil
}

func (r *priceRepository) ListByPriceDefinition(ctx context.Context, priceDefinitionID string) ([]*price.Price, error) {
	prices := make([]*price.Price, 0)
	query := `
		SELECT * FROM rates_prices
		WHERE price_definition_id = $1
		AND tenant_id = $2
		AND status = $3
		ORDER BY season_id NULLS FIRST, units`
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &prices, query, priceDefinitionID, types.GetTenantID(ctx), types.StatusPublished); err != nil {
		return nil, postgres.WrapError(err, "price")
	}
	return prices, nil
}

func (r *priceRepository) DeleteByPriceDefinition(ctx context.Context, priceDefinitionID string) error {
	query := `DELETE FROM rates_prices WHERE price_definition_id = $1 AND tenant_id = $2`
	if _, err := r.db.GetQuerier(ctx).ExecContext(ctx, query, priceDefinitionID, types.GetTenantID(ctx)); err != nil {
		return postgres.WrapError(err, "price")
	}
	return nil
}
