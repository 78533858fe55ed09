package postgres

import (
	"context"

	"github.com/flexprice/rates/internal/domain/factor"
	"github.com/flexprice/rates/internal/logger"
	"github.com/flexprice/rates/internal/postgres"
	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
)

type factorRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewFactorRepository(db *postgres.DB, logger *logger.Logger) factor.Repository {
	return &factorRepository{db: db, logger: logger}
}

func (r *factorRepository) Create(ctx context.Context, definition *factor.Definition) error {
	r.logger.WithContext(ctx).Debugw("creating factor definition",
		"factor_definition_id", definition.ID,
		"factors", len(definition.Factors),
	)

	return r.db.WithTx(ctx, func(ctx context.Context) error {
		q := r.db.GetQuerier(ctx)

		query := `
			INSERT INTO rates_factor_definitions (
				id, tenant_id, name, description, status, created_at, updated_at, created_by, updated_by
			) VALUES (
				:id, :tenant_id, :name, :description, :status, :created_at, :updated_at, :created_by, :updated_by
			)`
		if _, err := q.NamedExecContext(ctx, query, definition); err != nil {
			return postgres.WrapError(err, "factor definition")
		}

		if len(definition.Factors) == 0 {
			return nil
		}

		query = `
			INSERT INTO rates_factors (
				id, tenant_id, factor_definition_id, from_units, to_units, factor,
				status, created_at, updated_at, created_by, updated_by
			) VALUES (
				:id, :tenant_id, :factor_definition_id, :from_units, :to_units, :factor,
				:status, :created_at, :updated_at, :created_by, :updated_by
			)`
		if _, err := q.NamedExecContext(ctx, query, lo.FromSlicePtr(definition.Factors)); err != nil {
			return postgres.WrapError(err, "factor")
		}
		return nil
	})
}

func (r *factorRepository) Get(ctx context.Context, id string) (*factor.Definition, error) {
	q := r.db.GetQuerier(ctx)

	var definition factor.Definition
	query := `
		SELECT * FROM rates_factor_definitions
		WHERE id = $1
		AND tenant_id = $2
		AND status = $3`
	if err := q.GetContext(ctx, &definition, query, id, types.GetTenantID(ctx), types.StatusPublished); err != nil {
		return nil, postgres.WrapError(err, "factor definition")
	}

	factors := make([]*factor.Factor, 0)
	query = `
		SELECT * FROM rates_factors
		WHERE factor_definition_id = $1
		AND tenant_id = $2
		ORDER BY from_units`
	if err := q.SelectContext(ctx, &factors, query, id, types.GetTenantID(ctx)); err != nil {
		return nil, postgres.WrapError(err, "factor")
	}

	definition.Factors = factors
	return &definition, nil
}

func (r *factorRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM rates_factor_definitions WHERE id = $1 AND tenant_id = $2`
	return deleteOne(ctx, r.db, query, "factor definition", id, types.GetTenantID(ctx))
}
