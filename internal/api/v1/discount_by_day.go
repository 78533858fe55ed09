package v1

import (
	"net/http"

	"github.com/flexprice/rates/internal/api/dto"
	"github.com/flexprice/rates/internal/logger"
	"github.com/flexprice/rates/internal/service"
	"github.com/gin-gonic/gin"
)

type DiscountByDayHandler struct {
	service service.DiscountByDayDefinitionService
	logger  *logger.Logger
}

func NewDiscountByDayHandler(service service.DiscountByDayDefinitionService, logger *logger.Logger) *DiscountByDayHandler {
	return &DiscountByDayHandler{
		service: service,
		logger:  logger,
	}
}

func (h *DiscountByDayHandler) Create(c *gin.Context) {
	var req dto.CreateDiscountByDayDefinitionRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreateDiscountByDayDefinition(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *DiscountByDayHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "discount by day definition")
	if !ok {
		return
	}

	resp, err := h.service.GetDiscountByDayDefinition(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DiscountByDayHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "discount by day definition")
	if !ok {
		return
	}

	if err := h.service.DeleteDiscountByDayDefinition(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "discount by day definition deleted"})
}

func (h *DiscountByDayHandler) Copy(c *gin.Context) {
	id, ok := pathID(c, "discount by day definition")
	if !ok {
		return
	}

	var req dto.CopyDefinitionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	resp, err := h.service.CopyDiscountByDayDefinition(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
