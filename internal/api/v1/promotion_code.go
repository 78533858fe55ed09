package v1

import (
	"net/http"

	"github.com/flexprice/rates/internal/api/dto"
	"github.com/flexprice/rates/internal/logger"
	"github.com/flexprice/rates/internal/service"
	"github.com/gin-gonic/gin"
)

type PromotionCodeHandler struct {
	service service.PromotionCodeService
	logger  *logger.Logger
}

func NewPromotionCodeHandler(service service.PromotionCodeService, logger *logger.Logger) *PromotionCodeHandler {
	return &PromotionCodeHandler{
		service: service,
		logger:  logger,
	}
}

func (h *PromotionCodeHandler) Create(c *gin.Context) {
	var req dto.CreatePromotionCodeRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreatePromotionCode(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *PromotionCodeHandler) List(c *gin.Context) {
	filter, ok := bindQueryFilter(c)
	if !ok {
		return
	}

	resp, err := h.service.ListPromotionCodes(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Validate a promotion code
// @Description A code is valid when today lies in its validity window and, when given, the booking window lies in its source window
// @Tags PromotionCodes
// @Accept json
// @Produce json
// @Param request body dto.ValidatePromotionCodeRequest true "Code to check"
// @Success 200 {object} dto.ValidatePromotionCodeResponse
// @Router /promotion-codes/validate [post]
func (h *PromotionCodeHandler) Validate(c *gin.Context) {
	var req dto.ValidatePromotionCodeRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	source, err := req.SourceWindow.ToDateRange()
	if err != nil {
		c.Error(err)
		return
	}

	valid, err := h.service.ValidateCode(c.Request.Context(), req.Code, source)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ValidatePromotionCodeResponse{
		Code:  req.Code,
		Valid: valid,
	})
}
