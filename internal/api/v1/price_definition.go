package v1

import (
	"net/http"

	"github.com/flexprice/rates/internal/api/dto"
	"github.com/flexprice/rates/internal/logger"
	"github.com/flexprice/rates/internal/service"
	"github.com/gin-gonic/gin"
)

type PriceDefinitionHandler struct {
	service service.PriceDefinitionService
	logger  *logger.Logger
}

func NewPriceDefinitionHandler(service service.PriceDefinitionService, logger *logger.Logger) *PriceDefinitionHandler {
	return &PriceDefinitionHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a price definition
// @Description Creates a price definition together with its price table
// @Tags Price Definitions
// @Accept json
// @Produce json
// @Param request body dto.CreatePriceDefinitionRequest true "Price definition"
// @Success 201 {object} dto.PriceDefinitionResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /price-definitions [post]
func (h *PriceDefinitionHandler) Create(c *gin.Context) {
	var req dto.CreatePriceDefinitionRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreatePriceDefinition(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *PriceDefinitionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "price definition")
	if !ok {
		return
	}

	resp, err := h.service.GetPriceDefinition(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PriceDefinitionHandler) List(c *gin.Context) {
	filter, ok := bindQueryFilter(c)
	if !ok {
		return
	}

	resp, err := h.service.ListPriceDefinitions(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get the price table view
// @Description Returns the price rows grouped by season into basic units and the extra unit
// @Tags Price Definitions
// @Produce json
// @Param id path string true "Price definition ID"
// @Success 200 {object} dto.PriceTableResponse
// @Router /price-definitions/{id}/prices [get]
func (h *PriceDefinitionHandler) GetPriceTable(c *gin.Context) {
	id, ok := pathID(c, "price definition")
	if !ok {
		return
	}

	resp, err := h.service.GetPriceTable(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PriceDefinitionHandler) ReplacePrices(c *gin.Context) {
	id, ok := pathID(c, "price definition")
	if !ok {
		return
	}

	var req dto.ReplacePricesRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.ReplacePrices(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PriceDefinitionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "price definition")
	if !ok {
		return
	}

	if err := h.service.DeletePriceDefinition(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "price definition deleted"})
}
