package v1

import (
	"errors"
	"io"
	"strconv"

	"placement-portal-backend/pkg/apperror"
	"placement-portal-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON decodes the body into req. An empty body leaves req zeroed so the
// usecase can report every missing field at once.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.Error(apperror.BadRequest("Validation failed").WithDetails(map[string]interface{}{
			"fields": validation.FormatValidationErrors(err),
		}))
		return false
	}
	c.Error(apperror.BadRequest("Invalid request body"))
	return false
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest("Invalid " + name))
		return 0, false
	}
	return id, true
}
