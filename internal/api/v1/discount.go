package v1

import (
	"net/http"
	"time"

	"github.com/flexprice/rates/internal/api/dto"
	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/logger"
	"github.com/flexprice/rates/internal/service"
	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	service service.DiscountService
	logger  *logger.Logger
}

func NewDiscountHandler(service service.DiscountService, logger *logger.Logger) *DiscountHandler {
	return &DiscountHandler{
		service: service,
		logger:  logger,
	}
}

func (h *DiscountHandler) Create(c *gin.Context) {
	var req dto.CreateDiscountRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreateDiscount(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Active discounts
// @Description Lists the discounts whose window contains the date, today when no date is given
// @Tags Discounts
// @Produce json
// @Param date query string false "Date in YYYY-MM-DD format"
// @Success 200 {object} dto.ActiveDiscountsResponse
// @Router /discounts/active [get]
func (h *DiscountHandler) Active(c *gin.Context) {
	var req dto.ActiveDiscountsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	date, err := req.DateOr(time.Now().UTC())
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetActiveDiscounts(c.Request.Context(), date)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
