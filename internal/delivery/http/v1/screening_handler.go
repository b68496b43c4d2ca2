package v1

import (
	"net/http"

	"placement-portal-backend/internal/delivery/http/middleware"
	"placement-portal-backend/internal/delivery/http/response"
	"placement-portal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ScreeningHandler struct {
	screeningUC domain.ScreeningUsecase
}

func NewScreeningHandler(recruiter *gin.RouterGroup, screeningUC domain.ScreeningUsecase) {
	handler := &ScreeningHandler{screeningUC: screeningUC}

	screenings := recruiter.Group("/jobs/:jobId/applications/:applicationId/screenings")
	{
		screenings.GET("", handler.List)
		screenings.POST("", handler.Record)
	}
}

type ScreeningRequest struct {
	StageName   string `json:"stage_name"`
	Outcome     string `json:"outcome"`
	ScheduledAt string `json:"scheduled_at"`
	Notes       string `json:"notes"`
}

func (h *ScreeningHandler) ids(c *gin.Context) (jobID, applicationID int64, ok bool) {
	if jobID, ok = pathID(c, "jobId"); !ok {
		return
	}
	applicationID, ok = pathID(c, "applicationId")
	return
}

// ListScreenings godoc
// @Summary      List the screening log of an application
// @Tags         screenings
// @Produce      json
// @Param        jobId          path      int  true  "Job ID"
// @Param        applicationId  path      int  true  "Application ID"
// @Success      200            {object}  response.Response
// @Failure      404            {object}  response.Response
// @Router       /recruiter/jobs/{jobId}/applications/{applicationId}/screenings [get]
// @Security     CookieAuth
func (h *ScreeningHandler) List(c *gin.Context) {
	jobID, applicationID, ok := h.ids(c)
	if !ok {
		return
	}
	screenings, err := h.screeningUC.List(c.Request.Context(), middleware.CurrentIdentity(c).ID, jobID, applicationID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Screenings retrieved", screenings)
}

// RecordScreening godoc
// @Summary      Append a screening event to an application
// @Tags         screenings
// @Accept       json
// @Produce      json
// @Param        jobId          path      int               true  "Job ID"
// @Param        applicationId  path      int               true  "Application ID"
// @Param        body           body      ScreeningRequest  true  "Screening"
// @Success      201            {object}  response.Response
// @Failure      400            {object}  response.Response
// @Failure      404            {object}  response.Response
// @Router       /recruiter/jobs/{jobId}/applications/{applicationId}/screenings [post]
// @Security     CookieAuth
func (h *ScreeningHandler) Record(c *gin.Context) {
	jobID, applicationID, ok := h.ids(c)
	if !ok {
		return
	}
	var req ScreeningRequest
	if !bindJSON(c, &req) {
		return
	}
	screening, err := h.screeningUC.Record(c.Request.Context(), middleware.CurrentIdentity(c).ID, jobID, applicationID, domain.ScreeningInput(req))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Screening recorded", screening)
}
