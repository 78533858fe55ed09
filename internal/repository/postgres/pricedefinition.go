package postgres

import (
	"context"
	"time"

	"github.com/flexprice/rates/internal/domain/pricedefinition"
	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/logger"
	"github.com/flexprice/rates/internal/postgres"
	"github.com/flexprice/rates/internal/types"
)

type priceDefinitionRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPriceDefinitionRepository(db *postgres.DB, logger *logger.Logger) pricedefinition.Repository {
	return &priceDefinitionRepository{db: db, logger: logger}
}

func (r *priceDefinitionRepository) Create(ctx context.Context, definition *pricedefinition.PriceDefinition) error {
	query := `
		INSERT INTO rates_price_definitions (
			id, tenant_id, name, description, type, base_price, max_price, time_measurement,
			units_management, units_management_value, units_management_value_hours_list,
			units_management_value_hours_half_day, factor_definition_id, season_definition_id,
			discount_by_day_definition_id, apply_discount_by_days,
			daily_usage_units_days, daily_usage_units_limit, daily_usage_units_price,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :tenant_id, :name, :description, :type, :base_price, :max_price, :time_measurement,
			:units_management, :units_management_value, :units_management_value_hours_list,
			:units_management_value_hours_half_day, :factor_definition_id, :season_definition_id,
			:discount_by_day_definition_id, :apply_discount_by_days,
			:daily_usage_units_days, :daily_usage_units_limit, :daily_usage_units_price,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.WithContext(ctx).Debugw("creating price definition",
		"price_definition_id", definition.ID,
		"type", definition.Type,
		"units_management", definition.UnitsManagement,
	)

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, definition); err != nil {
		return postgres.WrapError(err, "price definition")
	}
	return nil
}

func (r *priceDefinitionRepository) Get(ctx context.Context, id string) (*pricedefinition.PriceDefinition, error) {
	var definition pricedefinition.PriceDefinition
	query := `
		SELECT * FROM rates_price_definitions
		WHERE id = $1
		AND tenant_id = $2
		AND status = $3`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &definition, query, id, types.GetTenantID(ctx), types.StatusPublished); err != nil {
		return nil, postgres.WrapError(err, "price definition")
	}
	return &definition, nil
}

func (r *priceDefinitionRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*pricedefinition.PriceDefinition, error) {
	definitions := make([]*pricedefinition.PriceDefinition, 0)
	query, args := listQuery("rates_price_definitions", types.GetTenantID(ctx), filter)
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &definitions, query, args...); err != nil {
		return nil, postgres.WrapError(err, "price definition")
	}
	return definitions, nil
}

func (r *priceDefinitionRepository) Update(ctx context.Context, definition *pricedefinition.PriceDefinition) error {
	definition.UpdatedAt = time.Now().UTC()
	definition.UpdatedBy = types.GetUserID(ctx)

	query := `
		UPDATE rates_price_definitions SET
			name = :name,
			description = :description,
			base_price = :base_price,
			max_price = :max_price,
			units_management_value = :units_management_value,
			units_management_value_hours_list = :units_management_value_hours_list,
			units_management_value_hours_half_day = :units_management_value_hours_half_day,
			factor_definition_id = :factor_definition_id,
			season_definition_id = :season_definition_id,
			discount_by_day_definition_id = :discount_by_day_definition_id,
			apply_discount_by_days = :apply_discount_by_days,
			daily_usage_units_days = :daily_usage_units_days,
			daily_usage_units_limit = :daily_usage_units_limit,
			daily_usage_units_price = :daily_usage_units_price,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id`

	result, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, definition)
	if err != nil {
		return postgres.WrapError(err, "price definition")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return postgres.WrapError(err, "price definition")
	}
	if rows == 0 {
		return ierr.NewError("price definition not found").
			WithHint("Price definition not found").
			WithReportableDetails(map[string]any{
				"price_definition_id": definition.ID,
			}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *priceDefinitionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM rates_price_definitions WHERE id = $1 AND tenant_id = $2`
	return deleteOne(ctx, r.db, query, "price definition", id, types.GetTenantID(ctx))
}
