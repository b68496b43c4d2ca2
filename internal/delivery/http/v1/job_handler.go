package v1

import (
	"net/http"

	"placement-portal-backend/internal/delivery/http/middleware"
	"placement-portal-backend/internal/delivery/http/response"
	"placement-portal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(recruiter *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := recruiter.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Create)
		jobs.GET("/:jobId", handler.Get)
		jobs.PUT("/:jobId", handler.Update)
		jobs.PATCH("/:jobId/status", handler.UpdateStatus)
	}
}

// JobRequest is shared by create and update. Numeric fields stay loosely typed
// so "12", 12 and "" are all accepted.
type JobRequest struct {
	Title               string      `json:"title"`
	JobFunction         string      `json:"job_function"`
	EmploymentType      string      `json:"employment_type"`
	WorkMode            string      `json:"work_mode"`
	Location            string      `json:"location"`
	Description         string      `json:"description"`
	Responsibilities    string      `json:"responsibilities"`
	Qualifications      string      `json:"qualifications"`
	Skills              interface{} `json:"skills" swaggertype:"array,string"`
	ExperienceLevel     string      `json:"experience_level"`
	ApplicationDeadline string      `json:"application_deadline" binding:"omitempty,iso_date"`
	ApplyLink           string      `json:"apply_link"`
	SalaryCTC           interface{} `json:"salary_ctc" swaggertype:"number"`
	StipendAmount       interface{} `json:"stipend_amount" swaggertype:"number"`
	Currency            string      `json:"currency"`
	CompensationNotes   string      `json:"compensation_notes"`
	Openings            interface{} `json:"openings" swaggertype:"integer"`
	Status              string      `json:"status"`
}

func (r JobRequest) input() domain.JobInput {
	return domain.JobInput(r)
}

type JobStatusRequest struct {
	Status string `json:"status"`
}

// ListJobs godoc
// @Summary      List own job postings
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /recruiter/jobs [get]
// @Security     CookieAuth
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c.Request.Context(), middleware.CurrentIdentity(c).ID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// CreateJob godoc
// @Summary      Create a job posting
// @Description  Status defaults to draft, openings to 1
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /recruiter/jobs [post]
// @Security     CookieAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.jobUC.CreateJob(c.Request.Context(), middleware.CurrentIdentity(c).ID, req.input())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created successfully", job)
}

// GetJob godoc
// @Summary      Get an owned job posting
// @Tags         jobs
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /recruiter/jobs/{jobId} [get]
// @Security     CookieAuth
func (h *JobHandler) Get(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}
	job, err := h.jobUC.GetJob(c.Request.Context(), middleware.CurrentIdentity(c).ID, jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// UpdateJob godoc
// @Summary      Update an owned job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        jobId  path      int         true  "Job ID"
// @Param        job    body      JobRequest  true  "Job"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /recruiter/jobs/{jobId} [put]
// @Security     CookieAuth
func (h *JobHandler) Update(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}
	var req JobRequest
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.jobUC.UpdateJob(c.Request.Context(), middleware.CurrentIdentity(c).ID, jobID, req.input())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated successfully", job)
}

// UpdateJobStatus godoc
// @Summary      Change a job's status
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        jobId  path      int               true  "Job ID"
// @Param        body   body      JobStatusRequest  true  "Status"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /recruiter/jobs/{jobId}/status [patch]
// @Security     CookieAuth
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}
	var req JobStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.jobUC.UpdateJobStatus(c.Request.Context(), middleware.CurrentIdentity(c).ID, jobID, req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job status updated", job)
}
