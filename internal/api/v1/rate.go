package v1

import (
	"net/http"

	"github.com/flexprice/rates/internal/api/dto"
	"github.com/flexprice/rates/internal/logger"
	"github.com/flexprice/rates/internal/service"
	"github.com/gin-gonic/gin"
)

type RateHandler struct {
	rateService service.RateService
	logger      *logger.Logger
}

func NewRateHandler(rateService service.RateService, logger *logger.Logger) *RateHandler {
	return &RateHandler{
		rateService: rateService,
		logger:      logger,
	}
}

// @Summary Quote a stay
// @Description Calculates the price of a stay, optionally applying a promotion code
// @Tags Rates
// @Accept json
// @Produce json
// @Param request body dto.CalculatePriceRequest true "Quote request"
// @Success 200 {object} dto.CalculatePriceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /rates/quote [post]
func (h *RateHandler) Quote(c *gin.Context) {
	var req dto.CalculatePriceRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.rateService.CalculatePrice(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Quote every stay length up to units
// @Tags Rates
// @Accept json
// @Produce json
// @Param request body dto.CalculateMultiplePricesRequest true "Multiple quote request"
// @Success 200 {object} dto.CalculateMultiplePricesResponse
// @Router /rates/quote/multiple [post]
func (h *RateHandler) QuoteMultiple(c *gin.Context) {
	var req dto.CalculateMultiplePricesRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.rateService.CalculateMultiplePrices(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Quote a batch of stays
// @Tags Rates
// @Accept json
// @Produce json
// @Param request body dto.BatchQuoteRequest true "Batch quote request"
// @Success 200 {object} dto.BatchQuoteResponse
// @Router /rates/quote/batch [post]
func (h *RateHandler) QuoteBatch(c *gin.Context) {
	var req dto.BatchQuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.rateService.QuoteBatch(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
