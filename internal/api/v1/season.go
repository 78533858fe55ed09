package v1

import (
	"net/http"

	"github.com/flexprice/rates/internal/api/dto"
	"github.com/flexprice/rates/internal/logger"
	"github.com/flexprice/rates/internal/service"
	"github.com/gin-gonic/gin"
)

type SeasonHandler struct {
	service service.SeasonDefinitionService
	logger  *logger.Logger
}

func NewSeasonHandler(service service.SeasonDefinitionService, logger *logger.Logger) *SeasonHandler {
	return &SeasonHandler{
		service: service,
		logger:  logger,
	}
}

func (h *SeasonHandler) Create(c *gin.Context) {
	var req dto.CreateSeasonDefinitionRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreateSeasonDefinition(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *SeasonHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "season definition")
	if !ok {
		return
	}

	resp, err := h.service.GetSeasonDefinition(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SeasonHandler) List(c *gin.Context) {
	filter, ok := bindQueryFilter(c)
	if !ok {
		return
	}

	resp, err := h.service.ListSeasonDefinitions(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SeasonHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "season definition")
	if !ok {
		return
	}

	if err := h.service.DeleteSeasonDefinition(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "season definition deleted"})
}

// @Summary Check season coverage
// @Description Reports whether the seasons cover the whole year, starting Jan 1 and ending Dec 31 without gaps
// @Tags Seasons
// @Produce json
// @Param id path string true "Season definition ID"
// @Success 200 {object} dto.SeasonCoverageResponse
// @Router /season-definitions/{id}/coverage [get]
func (h *SeasonHandler) Coverage(c *gin.Context) {
	id, ok := pathID(c, "season definition")
	if !ok {
		return
	}

	resp, err := h.service.ValidateCoverage(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SeasonHandler) Copy(c *gin.Context) {
	id, ok := pathID(c, "season definition")
	if !ok {
		return
	}

	var req dto.CopyDefinitionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	resp, err := h.service.CopySeasonDefinition(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
