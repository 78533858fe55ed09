package postgres

import (
	"context"
	"time"

	"github.com/flexprice/rates/internal/domain/discount"
	"github.com/flexprice/rates/internal/logger"
	"github.com/flexprice/rates/internal/postgres"
	"github.com/flexprice/rates/internal/types"
)

type discountRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewDiscountRepository(db *postgres.DB, logger *logger.Logger) discount.Repository {
	return &discountRepository{db: db, logger: logger}
}

func (r *discountRepository) Create(ctx context.Context, d *discount.Discount) error {
	query := `
		INSERT INTO rates_discounts (
			id, tenant_id, date_from, date_to, discount_type, value,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :tenant_id, :date_from, :date_to, :discount_type, :value,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, d); err != nil {
		return postgres.WrapError(err, "discount")
	}
	return nil
}

func (r *discountRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*discount.Discount, error) {
	discounts := make([]*discount.Discount, 0)
	query, args := listQuery("rates_discounts", types.GetTenantID(ctx), filter)
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &discounts, query, args...); err != nil {
		return nil, postgres.WrapError(err, "discount")
	}
	return discounts, nil
}

func (r *discountRepository) ListActiveAt(ctx context.Context, date time.Time) ([]*discount.Discount, error) {
	discounts := make([]*discount.Discount, 0)
	query := `
		SELECT * FROM rates_discounts
		WHERE tenant_id = $1
		AND status = $2
		AND date_from <= $3
		AND date_to >= $3
		ORDER BY date_from`
	day := types.TruncateToDay(date)
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &discounts, query, types.GetTenantID(ctx), types.StatusPublished, day); err != nil {
		return nil, postgres.WrapError(err, "discount")
	}
	return discounts, nil
}
