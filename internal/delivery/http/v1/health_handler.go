package v1

import (
	"net/http"

	"placement-portal-backend/internal/delivery/http/response"
	"placement-portal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func healthHandler(healthUC domain.HealthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, healthy := healthUC.Check(c.Request.Context())
		if !healthy {
			response.Error(c, http.StatusServiceUnavailable, "Database unavailable", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	}
}
