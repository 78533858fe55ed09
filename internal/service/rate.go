package service

import (
	"context"
	"sort"

	"github.com/flexprice/rates/internal/api/dto"
	"github.com/flexprice/rates/internal/cache"
	"github.com/flexprice/rates/internal/domain/price"
	"github.com/flexprice/rates/internal/domain/promotioncode"
	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/pricing"
	"github.com/flexprice/rates/internal/sentry"
	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"
)

// RateService quotes stays against stored price definitions
type RateService interface {
	// LoadSnapshot returns the definition and everything it references.
	// Missing optional definitions are left nil.
	LoadSnapshot(ctx context.Context, priceDefinitionID string) (*pricing.Snapshot, error)
	CalculatePrice(ctx context.Context, req dto.CalculatePriceRequest) (*dto.CalculatePriceResponse, error)
	CalculateMultiplePrices(ctx context.Context, req dto.CalculateMultiplePricesRequest) (*dto.CalculateMultiplePricesResponse, error)
	// QuoteBatch prices every quote concurrently, the first failure fails the batch
	QuoteBatch(ctx context.Context, req dto.BatchQuoteRequest) (*dto.BatchQuoteResponse, error)
	InvalidateSnapshot(ctx context.Context, priceDefinitionID string)
}

type rateService struct {
	ServiceParams
}

func NewRateService(params ServiceParams) RateService {
	return &rateService{
		ServiceParams: params,
	}
}

func snapshotKey(ctx context.Context, priceDefinitionID string) string {
	return cache.GenerateKey(cache.PrefixRateSnapshot, types.GetTenantID(ctx), priceDefinitionID)
}

func (s *rateService) LoadSnapshot(ctx context.Context, priceDefinitionID string) (*pricing.Snapshot, error) {
	key := snapshotKey(ctx, priceDefinitionID)
	if cached, found := s.Cache.Get(ctx, key); found {
		if snapshot, ok := cached.(*pricing.Snapshot); ok {
			return snapshot, nil
		}
	}

	span, spanCtx := sentry.StartSpan(ctx, "rates.load_snapshot", priceDefinitionID, nil)
	snapshot, err := s.loadSnapshot(spanCtx, priceDefinitionID)
	sentry.FinishSpan(span, err)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(ctx, key, snapshot, s.Config.Rates.SnapshotTTL())
	return snapshot, nil
}

func (s *rateService) loadSnapshot(ctx context.Context, priceDefinitionID string) (*pricing.Snapshot, error) {
	def, err := s.PriceDefinitionRepo.Get(ctx, priceDefinitionID)
	if err != nil {
		return nil, err
	}

	rows, err := s.PriceRepo.ListByPriceDefinition(ctx, priceDefinitionID)
	if err != nil {
		return nil, err
	}

	snapshot := &pricing.Snapshot{
		Definition: def,
		Prices:     price.NewTable(rows),
	}

	if id := lo.FromPtr(def.SeasonDefinitionID); id != "" {
		snapshot.Seasons, err = optional(s.SeasonRepo.Get(ctx, id))
		if err != nil {
			return nil, err
		}
		if snapshot.Seasons == nil {
			s.Logger.WithContext(ctx).Warnw("season definition not found, pricing without seasons",
				"price_definition_id", def.ID,
				"season_definition_id", id)
		}
	}

	if id := lo.FromPtr(def.FactorDefinitionID); id != "" {
		snapshot.Factors, err = optional(s.FactorRepo.Get(ctx, id))
		if err != nil {
			return nil, err
		}
	}

	if id := lo.FromPtr(def.DiscountByDayDefinitionID); id != "" {
		snapshot.DiscountsByDay, err = optional(s.DiscountByDayRepo.Get(ctx, id))
		if err != nil {
			return nil, err
		}
	}

	s.Logger.WithContext(ctx).Debugw("loaded rate snapshot",
		"price_definition_id", def.ID,
		"prices", len(rows),
		"has_seasons", snapshot.Seasons != nil,
		"has_factors", snapshot.Factors != nil,
		"has_discounts_by_day", snapshot.DiscountsByDay != nil)

	return snapshot, nil
}

// optional turns a not found error into a nil result
func optional[T any](value *T, err error) (*T, error) {
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return value, nil
}

func (s *rateService) InvalidateSnapshot(ctx context.Context, priceDefinitionID string) {
	s.Cache.Delete(ctx, snapshotKey(ctx, priceDefinitionID))
}

func (s *rateService) resolveMode(mode types.CalculationMode) types.CalculationMode {
	if mode == "" {
		return s.Config.Rates.DefaultMode
	}
	return mode
}

func (s *rateService) checkUnits(units int) error {
	if units > s.Config.Rates.MaxUnits {
		return ierr.NewError("units above the configured maximum").
			WithHintf("A quote can cover at most %d units", s.Config.Rates.MaxUnits).
			WithReportableDetails(map[string]any{
				"units":     units,
				"max_units": s.Config.Rates.MaxUnits,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (s *rateService) CalculatePrice(ctx context.Context, req dto.CalculatePriceRequest) (*dto.CalculatePriceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkUnits(req.Units); err != nil {
		return nil, err
	}

	date, err := req.StartDate()
	if err != nil {
		return nil, err
	}

	snapshot, err := s.LoadSnapshot(ctx, req.PriceDefinitionID)
	if err != nil {
		return nil, err
	}

	calculator, err := pricing.NewCalculator(snapshot)
	if err != nil {
		return nil, err
	}

	mode := calculator.EffectiveMode(s.resolveMode(req.Mode))
	amount := calculator.CalculatePrice(date, req.Units, mode)

	resp := &dto.CalculatePriceResponse{
		PriceDefinitionID: req.PriceDefinitionID,
		Date:              types.FormatDate(date),
		Units:             req.Units,
		Mode:              mode,
		Price:             amount,
		FinalPrice:        amount,
	}

	if req.PromotionCode == "" {
		return resp, nil
	}

	source, err := req.SourceWindow.ToDateRange()
	if err != nil {
		return nil, err
	}

	code, valid, err := findValidPromotionCode(ctx, s.ServiceParams, req.PromotionCode, source)
	if err != nil {
		return nil, err
	}

	resp.PromotionCode = promotioncode.NormalizeCode(req.PromotionCode)
	resp.PromotionCodeValid = lo.ToPtr(valid)
	if valid {
		resp.FinalPrice = code.Apply(amount)
	}
	return resp, nil
}

func (s *rateService) CalculateMultiplePrices(ctx context.Context, req dto.CalculateMultiplePricesRequest) (*dto.CalculateMultiplePricesResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkUnits(req.Units); err != nil {
		return nil, err
	}

	date, err := req.StartDate()
	if err != nil {
		return nil, err
	}

	snapshot, err := s.LoadSnapshot(ctx, req.PriceDefinitionID)
	if err != nil {
		return nil, err
	}

	calculator, err := pricing.NewCalculator(snapshot)
	if err != nil {
		return nil, err
	}

	mode := calculator.EffectiveMode(s.resolveMode(req.Mode))
	return &dto.CalculateMultiplePricesResponse{
		PriceDefinitionID: req.PriceDefinitionID,
		Date:              types.FormatDate(date),
		Mode:              mode,
		Prices:            calculator.CalculateMultiplePrices(date, req.Units, mode),
	}, nil
}

type indexedQuote struct {
	index int
	quote *dto.CalculatePriceResponse
}

func (s *rateService) QuoteBatch(ctx context.Context, req dto.BatchQuoteRequest) (*dto.BatchQuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := pool.NewWithResults[indexedQuote]().
		WithContext(ctx).
		WithMaxGoroutines(lo.Max([]int{s.Config.Rates.BatchConcurrency, 1})).
		WithFirstError()

	for i, quote := range req.Quotes {
		p.Go(func(ctx context.Context) (indexedQuote, error) {
			resp, err := s.CalculatePrice(ctx, *quote)
			if err != nil {
				return indexedQuote{}, ierr.WithError(err).
					WithReportableDetails(map[string]any{
						"index":               i,
						"price_definition_id": quote.PriceDefinitionID,
					}).
					Error()
			}
			return indexedQuote{index: i, quote: resp}, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		s.Logger.WithContext(ctx).Warnw("batch quote failed",
			"quotes", len(req.Quotes),
			"error", err)
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].index < results[j].index })
	return &dto.BatchQuoteResponse{
		Quotes: lo.Map(results, func(r indexedQuote, _ int) *dto.CalculatePriceResponse { return r.quote }),
	}, nil
}

// findValidPromotionCode looks the code up and checks it against today.
// Unknown codes are reported as invalid rather than as errors.
func findValidPromotionCode(ctx context.Context, params ServiceParams, code string, source *types.DateRange) (*promotioncode.PromotionCode, bool, error) {
	promo, err := params.PromotionCodeRepo.GetByCode(ctx, promotioncode.NormalizeCode(code))
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return promo, promo.IsValidAt(params.today(), source), nil
}
