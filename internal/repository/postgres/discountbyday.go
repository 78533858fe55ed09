package postgres

import (
	"context"

	"github.com/flexprice/rates/internal/domain/discountbyday"
	"github.com/flexprice/rates/internal/logger"
	"github.com/flexprice/rates/internal/postgres"
	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
)

type discountByDayRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewDiscountByDayRepository(db *postgres.DB, logger *logger.Logger) discountbyday.Repository {
	return &discountByDayRepository{db: db, logger: logger}
}

func (r *discountByDayRepository) Create(ctx context.Context, definition *discountbyday.Definition) error {
	r.logger.WithContext(ctx).Debugw("creating discount by day definition",
		"discount_by_day_definition_id", definition.ID,
		"thresholds", len(definition.DiscountsByDay),
	)

	return r.db.WithTx(ctx, func(ctx context.Context) error {
		q := r.db.GetQuerier(ctx)

		query := `
			INSERT INTO rates_discount_by_day_definitions (
				id, tenant_id, name, description, status, created_at, updated_at, created_by, updated_by
			) VALUES (
				:id, :tenant_id, :name, :description, :status, :created_at, :updated_at, :created_by, :updated_by
			)`
		if _, err := q.NamedExecContext(ctx, query, definition); err != nil {
			return postgres.WrapError(err, "discount by day definition")
		}

		if len(definition.DiscountsByDay) == 0 {
			return nil
		}

		query = `
			INSERT INTO rates_discounts_by_day (
				id, tenant_id, discount_by_day_definition_id, from_days, discount,
				status, created_at, updated_at, created_by, updated_by
			) VALUES (
				:id, :tenant_id, :discount_by_day_definition_id, :from_days, :discount,
				:status, :created_at, :updated_at, :created_by, :updated_by
			)`
		if _, err := q.NamedExecContext(ctx, query, lo.FromSlicePtr(definition.DiscountsByDay)); err != nil {
			return postgres.WrapError(err, "discount by day")
		}
		return nil
	})
}

func (r *discountByDayRepository) Get(ctx context.Context, id string) (*discountbyday.Definition, error) {
	q := r.db.GetQuerier(ctx)

	var definition discountbyday.Definition
	query := `
		SELECT * FROM rates_discount_by_day_definitions
		WHERE id = $1
		AND tenant_id = $2
		AND status = $3`
	if err := q.GetContext(ctx, &definition, query, id, types.GetTenantID(ctx), types.StatusPublished); err != nil {
		return nil, postgres.WrapError(err, "discount by day definition")
	}

	entries := make([]*discountbyday.DiscountByDay, 0)
	query = `
		SELECT * FROM rates_discounts_by_day
		WHERE discount_by_day_definition_id = $1
		AND tenant_id = $2
		ORDER BY from_days`
	if err := q.SelectContext(ctx, &entries, query, id, types.GetTenantID(ctx)); err != nil {
		return nil, postgres.WrapError(err, "discount by day")
	}

	definition.DiscountsByDay = entries
	return &definition, nil
}

func (r *discountByDayRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM rates_discount_by_day_definitions WHERE id = $1 AND tenant_id = $2`
	return deleteOne(ctx, r.db, query, "discount by day definition", id, types.GetTenantID(ctx))
}
