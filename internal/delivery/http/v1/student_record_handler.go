package v1

import (
	"context"
	"net/http"

	"placement-portal-backend/internal/delivery/http/middleware"
	"placement-portal-backend/internal/delivery/http/response"
	"placement-portal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type StudentRecordHandler struct {
	recordUC domain.StudentRecordUsecase
}

func NewStudentRecordHandler(protected *gin.RouterGroup, recordUC domain.StudentRecordUsecase) {
	h := &StudentRecordHandler{recordUC: recordUC}

	protected.POST("/internship-details-form", createRecord("Internship details added", internshipRequest.input, h.recordUC.AddInternship))
	protected.POST("/volunteer-details-form", createRecord("Volunteer details added", volunteeringRequest.input, h.recordUC.AddVolunteering))
	protected.POST("/skills-form", createRecord("Skill added", skillRequest.input, h.recordUC.AddSkill))
	protected.POST("/projects-form", createRecord("Project added", projectRequest.input, h.recordUC.AddProject))
	protected.POST("/accomplishment-form", createRecord("Accomplishment added", accomplishmentRequest.input, h.recordUC.AddAccomplishment))
	protected.POST("/extra-curricular-form", createRecord("Extra-curricular activity added", extraCurricularRequest.input, h.recordUC.AddExtraCurricular))
	protected.POST("/competitions-form", createRecord("Competition added", competitionRequest.input, h.recordUC.AddCompetition))

	registerReads(protected, "/internship-information", h.recordUC.ListInternships)
	registerReads(protected, "/volunteer-information", h.recordUC.ListVolunteering)
	registerReads(protected, "/skills-information", h.recordUC.ListSkills)
	registerReads(protected, "/projects-information", h.recordUC.ListProjects)
	registerReads(protected, "/accomplishment-information", h.recordUC.ListAccomplishments)
	registerReads(protected, "/extra-curricular-information", h.recordUC.ListExtraCurricular)
	registerReads(protected, "/competition-information", h.recordUC.ListCompetitions)
}

type internshipRequest struct {
	CompanyName   string   `json:"company_name"`
	JobTitle      string   `json:"job_title"`
	Location      string   `json:"location"`
	CompanySector string   `json:"company_sector"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	StipendSalary *float64 `json:"stipend_salary"`
}

func (r internshipRequest) input() domain.InternshipInput {
	return domain.InternshipInput{
		CompanyName:   r.CompanyName,
		JobTitle:      r.JobTitle,
		Location:      r.Location,
		CompanySector: r.CompanySector,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		StipendSalary: r.StipendSalary,
	}
}

type volunteeringRequest struct {
	Location      string `json:"location"`
	CompanySector string `json:"company_sector"`
	Task          string `json:"task"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
}

func (r volunteeringRequest) input() domain.VolunteeringInput {
	return domain.VolunteeringInput(r)
}

type skillRequest struct {
	SkillName        string `json:"skill_name" binding:"omitempty,no_emoji"`
	SkillProficiency string `json:"skill_proficiency"`
}

func (r skillRequest) input() domain.SkillInput {
	return domain.SkillInput(r)
}

type projectRequest struct {
	ProjectTitle string `json:"project_title"`
	Description  string `json:"description"`
	TechStack    string `json:"tech_stack"`
	ProjectLink  string `json:"project_link" binding:"omitempty,url"`
	Role         string `json:"role"`
}

func (r projectRequest) input() domain.ProjectInput {
	return domain.ProjectInput(r)
}

type accomplishmentRequest struct {
	Title              string `json:"title"`
	Institution        string `json:"institution"`
	Type               string `json:"type"`
	Description        string `json:"description"`
	AccomplishmentDate string `json:"accomplishment_date"`
	Rank               string `json:"rank"`
}

func (r accomplishmentRequest) input() domain.AccomplishmentInput {
	return domain.AccomplishmentInput(r)
}

type extraCurricularRequest struct {
	ActivityName string `json:"activity_name"`
	Role         string `json:"role"`
	Organization string `json:"organization"`
	Duration     string `json:"duration"`
}

func (r extraCurricularRequest) input() domain.ExtraCurricularInput {
	return domain.ExtraCurricularInput(r)
}

type competitionRequest struct {
	EventName   string   `json:"event_name"`
	EventDate   string   `json:"event_date"`
	Role        string   `json:"role"`
	Achievement string   `json:"achievement"`
	Skills      []string `json:"skills"`
}

func (r competitionRequest) input() domain.CompetitionInput {
	return domain.CompetitionInput(r)
}

// createRecord binds Req, converts it and stores it for the caller.
func createRecord[Req any, In any, Out any](message string, toInput func(Req) In, add func(context.Context, int64, In) (Out, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Req
		if !bindJSON(c, &req) {
			return
		}
		rec, err := add(c.Request.Context(), middleware.CurrentIdentity(c).ID, toInput(req))
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusCreated, message, rec)
	}
}

// registerReads mounts path for the caller's own records and path/:userId for someone else's.
func registerReads[Out any](group *gin.RouterGroup, path string, list func(context.Context, domain.Identity, int64) (Out, error)) {
	group.GET(path, func(c *gin.Context) {
		requester := middleware.CurrentIdentity(c)
		writeRecords(c, list, requester, requester.ID)
	})
	group.GET(path+"/:userId", func(c *gin.Context) {
		userID, ok := pathID(c, "userId")
		if !ok {
			return
		}
		writeRecords(c, list, middleware.CurrentIdentity(c), userID)
	})
}

func writeRecords[Out any](c *gin.Context, list func(context.Context, domain.Identity, int64) (Out, error), requester domain.Identity, userID int64) {
	records, err := list(c.Request.Context(), requester, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Records retrieved", records)
}
