package domain

import (
	"context"
	"strings"
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusPending    ApplicationStatus = "pending"
	ApplicationStatusInProgress ApplicationStatus = "in_progress"
	ApplicationStatusRejected   ApplicationStatus = "rejected"
	ApplicationStatusHired      ApplicationStatus = "hired"
)

var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending, ApplicationStatusInProgress, ApplicationStatusRejected, ApplicationStatusHired,
}

func (s ApplicationStatus) IsValid() bool {
	for _, v := range ApplicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func ParseApplicationStatus(raw string) (ApplicationStatus, bool) {
	s := ApplicationStatus(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

const DefaultApplicationStage = "Application Review"

// Applicant is the slice of the student's profile shown next to an application.
type Applicant struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	PersonalEmail   *string `json:"personal_email"`
	PhoneNumber     *string `json:"phone_number"`
	InstituteRollNo *string `json:"institute_roll_no"`
}

// Application is unique per (job_id, student_user_id).
type Application struct {
	ID            int64             `json:"application_id"`
	JobID         int64             `json:"job_id"`
	StudentUserID int64             `json:"student_user_id"`
	Status        ApplicationStatus `json:"status"`
	CurrentStage  string            `json:"current_stage"`
	CoverLetter   *string           `json:"cover_letter"`
	PortfolioURL  *string           `json:"portfolio_url"`
	Notes         *string           `json:"notes"`
	AppliedAt     time.Time         `json:"applied_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Student       *Applicant        `json:"student,omitempty"`
}

type ApplicationInput struct {
	StudentUserID interface{}
	Status        string
	CurrentStage  string
	CoverLetter   string
	PortfolioURL  string
	Notes         string
}

// ApplicationPatch is a partial update; nil fields are left untouched.
type ApplicationPatch struct {
	CurrentStage *string
	Status       *string
	Notes        *string
}

type ApplicationUpdate struct {
	CurrentStage *string
	Status       *ApplicationStatus
	Notes        *string
	// ClearNotes resets notes to NULL; set when the patch carries blank notes.
	ClearNotes   bool
	UpdatedAt    time.Time
}

// ApplicationExport is a rendered spreadsheet download.
type ApplicationExport struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ApplicationRepository interface {
	ListByJob(ctx context.Context, jobID int64) ([]Application, error)
	// Upsert inserts or overwrites the (job, student) row and reports whether a new row was created.
	Upsert(ctx context.Context, app *Application) (bool, error)
	GetByID(ctx context.Context, jobID, applicationID int64) (*Application, error)
	Update(ctx context.Context, jobID, applicationID int64, upd ApplicationUpdate) (*Application, error)
}

type ApplicationUsecase interface {
	List(ctx context.Context, userID, jobID int64) ([]Application, error)
	Upsert(ctx context.Context, userID, jobID int64, in ApplicationInput) (*Application, bool, error)
	Update(ctx context.Context, userID, jobID, applicationID int64, patch ApplicationPatch) (*Application, error)
	Export(ctx context.Context, userID, jobID int64, format string) (*ApplicationExport, error)
}
