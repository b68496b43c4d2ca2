package v1

import (
	"fmt"
	"net/http"

	"placement-portal-backend/internal/delivery/http/middleware"
	"placement-portal-backend/internal/delivery/http/response"
	"placement-portal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appUC domain.ApplicationUsecase
}

func NewApplicationHandler(recruiter *gin.RouterGroup, appUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{appUC: appUC}

	apps := recruiter.Group("/jobs/:jobId/applications")
	{
		apps.GET("", handler.List)
		apps.POST("", handler.Upsert)
		apps.GET("/export", handler.Export)
		apps.PATCH("/:applicationId", handler.Update)
	}
}

// ApplicationRequest accepts user_id as an alias of student_user_id.
type ApplicationRequest struct {
	StudentUserID interface{} `json:"student_user_id" swaggertype:"integer"`
	UserID        interface{} `json:"user_id" swaggertype:"integer"`
	Status        string      `json:"status"`
	CurrentStage  string      `json:"current_stage"`
	CoverLetter   string      `json:"cover_letter"`
	PortfolioURL  string      `json:"portfolio_url" binding:"omitempty,url"`
	Notes         string      `json:"notes"`
}

type ApplicationPatchRequest struct {
	CurrentStage *string `json:"current_stage"`
	Status       *string `json:"status"`
	Notes        *string `json:"notes"`
}

// ListApplications godoc
// @Summary      List applications for an owned job
// @Tags         applications
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /recruiter/jobs/{jobId}/applications [get]
// @Security     CookieAuth
func (h *ApplicationHandler) List(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}
	apps, err := h.appUC.List(c.Request.Context(), middleware.CurrentIdentity(c).ID, jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// UpsertApplication godoc
// @Summary      Add or update a student's application to a job
// @Description  Keyed on (job, student); returns 201 when created and 200 when updated
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        jobId  path      int                 true  "Job ID"
// @Param        body   body      ApplicationRequest  true  "Application"
// @Success      200    {object}  response.Response
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /recruiter/jobs/{jobId}/applications [post]
// @Security     CookieAuth
func (h *ApplicationHandler) Upsert(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}
	var req ApplicationRequest
	if !bindJSON(c, &req) {
		return
	}

	studentID := req.StudentUserID
	if studentID == nil || studentID == "" {
		studentID = req.UserID
	}

	app, created, err := h.appUC.Upsert(c.Request.Context(), middleware.CurrentIdentity(c).ID, jobID, domain.ApplicationInput{
		StudentUserID: studentID,
		Status:        req.Status,
		CurrentStage:  req.CurrentStage,
		CoverLetter:   req.CoverLetter,
		PortfolioURL:  req.PortfolioURL,
		Notes:         req.Notes,
	})
	if err != nil {
		c.Error(err)
		return
	}

	if created {
		response.Success(c, http.StatusCreated, "Application created", app)
		return
	}
	response.Success(c, http.StatusOK, "Application updated", app)
}

// UpdateApplication godoc
// @Summary      Update an application's stage, status or notes
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        jobId          path      int                      true  "Job ID"
// @Param        applicationId  path      int                      true  "Application ID"
// @Param        body           body      ApplicationPatchRequest  true  "Changes"
// @Success      200            {object}  response.Response
// @Failure      400            {object}  response.Response
// @Failure      404            {object}  response.Response
// @Router       /recruiter/jobs/{jobId}/applications/{applicationId} [patch]
// @Security     CookieAuth
func (h *ApplicationHandler) Update(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}
	applicationID, ok := pathID(c, "applicationId")
	if !ok {
		return
	}
	var req ApplicationPatchRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.appUC.Update(c.Request.Context(), middleware.CurrentIdentity(c).ID, jobID, applicationID, domain.ApplicationPatch(req))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application updated", app)
}

// ExportApplications godoc
// @Summary      Download a job's applications
// @Tags         applications
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Param        jobId   path      int     true   "Job ID"
// @Param        format  query     string  false  "xlsx or csv"
// @Success      200     {file}    file
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /recruiter/jobs/{jobId}/applications/export [get]
// @Security     CookieAuth
func (h *ApplicationHandler) Export(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}
	export, err := h.appUC.Export(c.Request.Context(), middleware.CurrentIdentity(c).ID, jobID, c.DefaultQuery("format", "xlsx"))
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Data)
}
