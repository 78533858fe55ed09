package postgres

import (
	"context"

	"github.com/flexprice/rates/internal/domain/season"
	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/logger"
	"github.com/flexprice/rates/internal/postgres"
	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
)

type seasonRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewSeasonRepository(db *postgres.DB, logger *logger.Logger) season.Repository {
	return &seasonRepository{db: db, logger: logger}
}

func (r *seasonRepository) Create(ctx context.Context, definition *season.Definition) error {
	r.logger.WithContext(ctx).Debugw("creating season definition",
		"season_definition_id", definition.ID,
		"seasons", len(definition.Seasons),
	)

	return r.db.WithTx(ctx, func(ctx context.Context) error {
		q := r.db.GetQuerier(ctx)

		query := `
			INSERT INTO rates_season_definitions (
				id, tenant_id, name, description, status, created_at, updated_at, created_by, updated_by
			) VALUES (
				:id, :tenant_id, :name, :description, :status, :created_at, :updated_at, :created_by, :updated_by
			)`
		if _, err := q.NamedExecContext(ctx, query, definition); err != nil {
			return postgres.WrapError(err, "season definition")
		}

		if len(definition.Seasons) == 0 {
			return nil
		}

		query = `
			INSERT INTO rates_seasons (
				id, tenant_id, season_definition_id, name, from_month, from_day, to_month, to_day,
				min_days, apply_discount_by_days, status, created_at, updated_at, created_by, updated_by
			) VALUES (
				:id, :tenant_id, :season_definition_id, :name, :from_month, :from_day, :to_month, :to_day,
				:min_days, :apply_discount_by_days, :status, :created_at, :updated_at, :created_by, :updated_by
			)`
		if _, err := q.NamedExecContext(ctx, query, lo.FromSlicePtr(definition.Seasons)); err != nil {
			return postgres.WrapError(err, "season")
		}
		return nil
	})
}

func (r *seasonRepository) Get(ctx context.Context, id string) (*season.Definition, error) {
	q := r.db.GetQuerier(ctx)

	var definition season.Definition
	query := `
		SELECT * FROM rates_season_definitions
		WHERE id = $1
		AND tenant_id = $2
		AND status = $3`
	if err := q.GetContext(ctx, &definition, query, id, types.GetTenantID(ctx), types.StatusPublished); err != nil {
		return nil, postgres.WrapError(err, "season definition")
	}

	seasons := make([]*season.Season, 0)
	query = `
		SELECT * FROM rates_seasons
		WHERE season_definition_id = $1
		AND tenant_id = $2
		ORDER BY from_month, from_day`
	if err := q.SelectContext(ctx, &seasons, query, id, types.GetTenantID(ctx)); err != nil {
		return nil, postgres.WrapError(err, "season")
	}

	definition.Seasons = seasons
	return &definition, nil
}

// List returns definitions without their seasons
func (r *seasonRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*season.Definition, error) {
	definitions := make([]*season.Definition, 0)
	query, args := listQuery("rates_season_definitions", types.GetTenantID(ctx), filter)
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &definitions, query, args...); err != nil {
		return nil, postgres.WrapError(err, "season definition")
	}
	return definitions, nil
}

func (r *seasonRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM rates_season_definitions WHERE id = $1 AND tenant_id = $2`
	return deleteOne(ctx, r.db, query, "season definition", id, types.GetTenantID(ctx))
}

// deleteOne runs a delete and reports ErrNotFound when nothing matched
func deleteOne(ctx context.Context, db *postgres.DB, query, entity string, args ...interface{}) error {
	result, err := db.GetQuerier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return postgres.WrapError(err, entity)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return postgres.WrapError(err, entity)
	}
	if rows == 0 {
		return ierr.NewErrorf("%s not found", entity).
			WithHintf("%s not found", entity).
			WithReportableDetails(map[string]any{
				"id": args[0],
			}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
