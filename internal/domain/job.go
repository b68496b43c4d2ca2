package domain

import (
	"context"
	"strings"
	"time"
)

type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"
	JobStatusOpen      JobStatus = "open"
	JobStatusPaused    JobStatus = "paused"
	JobStatusClosed    JobStatus = "closed"
	JobStatusPublished JobStatus = "published"
)

var JobStatuses = []JobStatus{JobStatusDraft, JobStatusOpen, JobStatusPaused, JobStatusClosed, JobStatusPublished}

func (s JobStatus) IsValid() bool {
	for _, v := range JobStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Visibility derives the listing flags exposed to clients.
func (s JobStatus) Visibility() (isPublic, isActive bool) {
	switch s {
	case JobStatusOpen, JobStatusPublished:
		return true, true
	case JobStatusPaused:
		return false, true
	case JobStatusClosed:
		return true, false
	}
	return false, false
}

// ParseJobStatus lower-cases and trims raw before checking membership.
func ParseJobStatus(raw string) (JobStatus, bool) {
	s := JobStatus(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

type EmploymentType string

const (
	EmploymentInternship     EmploymentType = "Internship"
	EmploymentFullTime       EmploymentType = "Full-time"
	EmploymentContract       EmploymentType = "Contract"
	EmploymentApprenticeship EmploymentType = "Apprenticeship"
)

var EmploymentTypes = []EmploymentType{EmploymentInternship, EmploymentFullTime, EmploymentContract, EmploymentApprenticeship}

// NormalizeEmploymentType accepts loose spellings ("full time", "part-time") and returns the canonical value.
func NormalizeEmploymentType(raw string) (EmploymentType, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	switch key {
	case "internship", "intern":
		return EmploymentInternship, true
	case "full-time", "fulltime":
		return EmploymentFullTime, true
	case "part-time", "parttime", "contract":
		return EmploymentContract, true
	case "apprenticeship":
		return EmploymentApprenticeship, true
	}
	return "", false
}

type Job struct {
	ID                  int64          `json:"job_id"`
	RecruiterID         int64          `json:"recruiter_id"`
	CompanyID           *int64         `json:"company_id"`
	Title               string         `json:"title"`
	JobFunction         *string        `json:"job_function"`
	EmploymentType      EmploymentType `json:"employment_type"`
	WorkMode            *string        `json:"work_mode"`
	Location            string         `json:"location"`
	Description         string         `json:"description"`
	Responsibilities    *string        `json:"responsibilities"`
	Qualifications      *string        `json:"qualifications"`
	Skills              []string       `json:"skills"`
	ExperienceLevel     *string        `json:"experience_level"`
	ApplicationDeadline *string        `json:"application_deadline"`
	ApplyLink           *string        `json:"apply_link"`
	SalaryCTC           *float64       `json:"salary_ctc"`
	StipendAmount       *float64       `json:"stipend_amount"`
	Currency            string         `json:"currency"`
	CompensationNotes   *string        `json:"compensation_notes"`
	Openings            int            `json:"openings"`
	Status              JobStatus      `json:"status"`
	IsPublic            bool           `json:"is_public"`
	IsActive            bool           `json:"is_active"`
	ApplicationsCount   int64          `json:"applications_count"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// JobInput holds a create/update payload. Numeric fields stay untyped so that
// loose client input can be normalised instead of rejected.
type JobInput struct {
	Title               string
	JobFunction         string
	EmploymentType      string
	WorkMode            string
	Location            string
	Description         string
	Responsibilities    string
	Qualifications      string
	Skills              interface{}
	ExperienceLevel     string
	ApplicationDeadline string
	ApplyLink           string
	SalaryCTC           interface{}
	StipendAmount       interface{}
	Currency            string
	CompensationNotes   string
	Openings            interface{}
	Status              string
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	ListByRecruiter(ctx context.Context, recruiterID int64) ([]Job, error)
	// GetOwned returns ErrNotFound both for missing jobs and jobs owned by someone else.
	GetOwned(ctx context.Context, jobID, recruiterID int64) (*Job, error)
	Update(ctx context.Context, job *Job) error
	UpdateStatus(ctx context.Context, jobID, recruiterID int64, status JobStatus) (*Job, error)
}

type JobUsecase interface {
	ListJobs(ctx context.Context, userID int64) ([]Job, error)
	CreateJob(ctx context.Context, userID int64, in JobInput) (*Job, error)
	GetJob(ctx context.Context, userID, jobID int64) (*Job, error)
	UpdateJob(ctx context.Context, userID, jobID int64, in JobInput) (*Job, error)
	UpdateJobStatus(ctx context.Context, userID, jobID int64, status string) (*Job, error)
}
