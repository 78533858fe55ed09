package v1

import (
	"net/http"

	"github.com/flexprice/rates/internal/api/dto"
	"github.com/flexprice/rates/internal/logger"
	"github.com/flexprice/rates/internal/service"
	"github.com/gin-gonic/gin"
)

type FactorHandler struct {
	service service.FactorDefinitionService
	logger  *logger.Logger
}

func NewFactorHandler(service service.FactorDefinitionService, logger *logger.Logger) *FactorHandler {
	return &FactorHandler{
		service: service,
		logger:  logger,
	}
}

func (h *FactorHandler) Create(c *gin.Context) {
	var req dto.CreateFactorDefinitionRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreateFactorDefinition(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *FactorHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "factor definition")
	if !ok {
		return
	}

	resp, err := h.service.GetFactorDefinition(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *FactorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "factor definition")
	if !ok {
		return
	}

	if err := h.service.DeleteFactorDefinition(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "factor definition deleted"})
}

func (h *FactorHandler) Copy(c *gin.Context) {
	id, ok := pathID(c, "factor definition")
	if !ok {
		return
	}

	var req dto.CopyDefinitionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	resp, err := h.service.CopyFactorDefinition(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
