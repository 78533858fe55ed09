package postgres

import (
	"context"

	"github.com/flexprice/rates/internal/domain/promotioncode"
	"github.com/flexprice/rates/internal/logger"
	"github.com/flexprice/rates/internal/postgres"
	"github.com/flexprice/rates/internal/types"
)

type promotionCodeRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPromotionCodeRepository(db *postgres.DB, logger *logger.Logger) promotioncode.Repository {
	return &promotionCodeRepository{db: db, logger: logger}
}

func (r *promotionCodeRepository) Create(ctx context.Context, code *promotioncode.PromotionCode) error {
	query := `
		INSERT INTO rates_promotion_codes (
			id, tenant_id, code, date_from, date_to, source_date_from, source_date_to, discount_type, value,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :tenant_id, :code, :date_from, :date_to, :source_date_from, :source_date_to, :discount_type, :value,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, code); err != nil {
		return postgres.WrapError(err, "promotion code")
	}
	return nil
}

func (r *promotionCodeRepository) GetByCode(ctx context.Context, code string) (*promotioncode.PromotionCode, error) {
	var promo promotioncode.PromotionCode
	query := `
		SELECT * FROM rates_promotion_codes
		WHERE code = $1
		AND tenant_id = $2
		AND status = $3`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &promo, query, promotioncode.NormalizeCode(code), types.GetTenantID(ctx), types.StatusPublished); err != nil {
		return nil, postgres.WrapError(err, "promotion code")
	}
	return &promo, nil
}

func (r *promotionCodeRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*promotioncode.PromotionCode, error) {
	codes := make([]*promotioncode.PromotionCode, 0)
	query, args := listQuery("rates_promotion_codes", types.GetTenantID(ctx), filter)
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &codes, query, args...); err != nil {
		return nil, postgres.WrapError(err, "promotion code")
	}
	return codes, nil
}
