package v1

import (
	ierr "github.com/flexprice/rates/internal/errors"
	"github.com/flexprice/rates/internal/types"
	"github.com/gin-gonic/gin"
)

// bindJSON decodes the body into req and reports malformed payloads as validation errors
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (string, bool) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewErrorf("%s ID is required", name).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return "", false
	}
	return id, true
}

func bindQueryFilter(c *gin.Context) (*types.QueryFilter, bool) {
	filter := types.NewDefaultQueryFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return nil, false
	}
	return filter, true
}

// bindOptionalJSON is bindJSON for endpoints whose body may be empty
func bindOptionalJSON(c *gin.Context, req any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	return bindJSON(c, req)
}
