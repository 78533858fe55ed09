package service

import (
	"context"

	"github.com/flexprice/rates/internal/api/dto"
	"github.com/flexprice/rates/internal/domain/price"
	"github.com/flexprice/rates/internal/domain/pricedefinition"
	"github.com/flexprice/rates/internal/domain/season"
	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
)

type PriceDefinitionService interface {
	CreatePriceDefinition(ctx context.Context, req dto.CreatePriceDefinitionRequest) (*dto.PriceDefinitionResponse, error)
	GetPriceDefinition(ctx context.Context, id string) (*dto.PriceDefinitionResponse, error)
	ListPriceDefinitions(ctx context.Context, filter *types.QueryFilter) (*dto.ListPriceDefinitionsResponse, error)
	// ReplacePrices swaps the whole price table of a definition
	ReplacePrices(ctx context.Context, id string, req dto.ReplacePricesRequest) (*dto.PriceDefinitionResponse, error)
	DeletePriceDefinition(ctx context.Context, id string) error
	GetPriceTable(ctx context.Context, id string) (*dto.PriceTableResponse, error)
}

type priceDefinitionService struct {
	ServiceParams
	rates RateService
}

func NewPriceDefinitionService(params ServiceParams, rates RateService) PriceDefinitionService {
	return &priceDefinitionService{
		ServiceParams: params,
		rates:         rates,
	}
}

func (s *priceDefinitionService) CreatePriceDefinition(ctx context.Context, req dto.CreatePriceDefinitionRequest) (*dto.PriceDefinitionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	def := req.ToPriceDefinition(ctx)
	prices, err := dto.ToPrices(ctx, def.ID, req.Prices)
	if err != nil {
		return nil, err
	}

	if err := s.validateReferences(ctx, def); err != nil {
		return nil, err
	}
	if err := s.validateSeasonIDs(ctx, def, prices); err != nil {
		return nil, err
	}

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.PriceDefinitionRepo.Create(ctx, def); err != nil {
			return err
		}
		if len(prices) == 0 {
			return nil
		}
		return s.PriceRepo.CreateBulk(ctx, prices)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.WithContext(ctx).Infow("created price definition",
		"price_definition_id", def.ID,
		"type", def.Type,
		"units_management", def.UnitsManagement,
		"prices", len(prices))

	return &dto.PriceDefinitionResponse{PriceDefinition: def, Prices: prices}, nil
}

// validateReferences checks that the referenced definitions exist
func (s *priceDefinitionService) validateReferences(ctx context.Context, def *pricedefinition.PriceDefinition) error {
	if id := lo.FromPtr(def.SeasonDefinitionID); id != "" {
		if _, err := s.SeasonRepo.Get(ctx, id); err != nil {
			return referenceError(err, "season_definition_id", id)
		}
	}
	if id := lo.FromPtr(def.FactorDefinitionID); id != "" {
		if _, err := s.FactorRepo.Get(ctx, id); err != nil {
			return referenceError(err, "factor_definition_id", id)
		}
	}
	if id := lo.FromPtr(def.DiscountByDayDefinitionID); id != "" {
		if _, err := s.DiscountByDayRepo.Get(ctx, id); err != nil {
			return referenceError(err, "discount_by_day_definition_id", id)
		}
	}
	return nil
}

func referenceError(err error, field, id string) error {
	if !ierr.IsNotFound(err) {
		return err
	}
	return ierr.WithError(err).
		WithHintf("Referenced %s does not exist", field).
		WithReportableDetails(map[string]any{
			field: id,
		}).
		Mark(ierr.ErrValidation)
}

// validateSeasonIDs checks that seasonal rows point at seasons of the
// definition's season set and non seasonal rows carry no season
func (s *priceDefinitionService) validateSeasonIDs(ctx context.Context, def *pricedefinition.PriceDefinition, prices []*price.Price) error {
	if !def.IsSeason() {
		if row, found := lo.Find(prices, func(p *price.Price) bool { return p.GetSeasonID() != "" }); found {
			return ierr.NewError("season id on a non seasonal price").
				WithHint("Prices of a non seasonal definition must not reference a season").
				WithReportableDetails(map[string]any{
					"season_id": row.GetSeasonID(),
				}).
				Mark(ierr.ErrValidation)
		}
		return nil
	}

	seasons, err := s.SeasonRepo.Get(ctx, lo.FromPtr(def.SeasonDefinitionID))
	if err != nil {
		return referenceError(err, "season_definition_id", lo.FromPtr(def.SeasonDefinitionID))
	}
	known := lo.SliceToMap(seasons.Seasons, func(ss *season.Season) (string, struct{}) { return ss.ID, struct{}{} })
	for _, row := range prices {
		if _, ok := known[row.GetSeasonID()]; !ok {
			return ierr.NewError("unknown season on price").
				WithHint("Every seasonal price must reference a season of the season definition").
				WithReportableDetails(map[string]any{
					"season_id": row.GetSeasonID(),
					"units":     row.Units,
				}).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (s *priceDefinitionService) GetPriceDefinition(ctx context.Context, id string) (*dto.PriceDefinitionResponse, error) {
	def, err := s.PriceDefinitionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	prices, err := s.PriceRepo.ListByPriceDefinition(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PriceDefinitionResponse{PriceDefinition: def, Prices: prices}, nil
}

func (s *priceDefinitionService) ListPriceDefinitions(ctx context.Context, filter *types.QueryFilter) (*dto.ListPriceDefinitionsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	defs, err := s.PriceDefinitionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := lo.Map(defs, func(def *pricedefinition.PriceDefinition, _ int) *dto.PriceDefinitionResponse {
		return &dto.PriceDefinitionResponse{PriceDefinition: def}
	})
	resp := types.NewListResponse(items, filter)
	return &resp, nil
}

func (s *priceDefinitionService) ReplacePrices(ctx context.Context, id string, req dto.ReplacePricesRequest) (*dto.PriceDefinitionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	def, err := s.PriceDefinitionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	prices, err := dto.ToPrices(ctx, def.ID, req.Prices)
	if err != nil {
		return nil, err
	}
	if err := s.validateSeasonIDs(ctx, def, prices); err != nil {
		return nil, err
	}

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.PriceRepo.DeleteByPriceDefinition(ctx, def.ID); err != nil {
			return err
		}
		if len(prices) == 0 {
			return nil
		}
		return s.PriceRepo.CreateBulk(ctx, prices)
	})
	if err != nil {
		return nil, err
	}

	s.rates.InvalidateSnapshot(ctx, def.ID)
	s.Logger.WithContext(ctx).Infow("replaced price table",
		"price_definition_id", def.ID,
		"prices", len(prices))

	return &dto.PriceDefinitionResponse{PriceDefinition: def, Prices: prices}, nil
}

func (s *priceDefinitionService) DeletePriceDefinition(ctx context.Context, id string) error {
	if err := s.PriceDefinitionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.rates.InvalidateSnapshot(ctx, id)
	return nil
}

func (s *priceDefinitionService) GetPriceTable(ctx context.Context, id string) (*dto.PriceTableResponse, error) {
	def, err := s.PriceDefinitionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := s.PriceRepo.ListByPriceDefinition(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewPriceTableResponse(def, price.NewTable(rows)), nil
}
