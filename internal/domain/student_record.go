package domain

import (
	"context"
	"time"
)

type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "Beginner"
	ProficiencyIntermediate Proficiency = "Intermediate"
	ProficiencyAdvanced     Proficiency = "Advanced"
	ProficiencyExpert       Proficiency = "Expert"
)

var Proficiencies = []Proficiency{ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert}

func (p Proficiency) IsValid() bool {
	for _, v := range Proficiencies {
		if p == v {
			return true
		}
	}
	return false
}

type Internship struct {
	ID            int64     `json:"internship_id"`
	UserID        int64     `json:"user_id"`
	CompanyName   string    `json:"company_name"`
	JobTitle      string    `json:"job_title"`
	Location      string    `json:"location"`
	CompanySector string    `json:"company_sector"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	StipendSalary *float64  `json:"stipend_salary"`
	CreatedAt     time.Time `json:"created_at"`
}

type Volunteering struct {
	ID            int64     `json:"volunteering_id"`
	UserID        int64     `json:"user_id"`
	Location      string    `json:"location"`
	CompanySector string    `json:"company_sector"`
	Task          string    `json:"task"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	CreatedAt     time.Time `json:"created_at"`
}

type Skill struct {
	ID               int64       `json:"skill_id"`
	UserID           int64       `json:"user_id"`
	SkillName        string      `json:"skill_name"`
	SkillProficiency Proficiency `json:"skill_proficiency"`
	CreatedAt        time.Time   `json:"created_at"`
}

type Project struct {
	ID           int64     `json:"project_id"`
	UserID       int64     `json:"user_id"`
	ProjectTitle string    `json:"project_title"`
	Description  string    `json:"description"`
	TechStack    string    `json:"tech_stack"`
	ProjectLink  *string   `json:"project_link"`
	Role         *string   `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type Accomplishment struct {
	ID                 int64     `json:"accomplishment_id"`
	UserID             int64     `json:"user_id"`
	Title              string    `json:"title"`
	Institution        *string   `json:"institution"`
	Type               *string   `json:"type"`
	Description        *string   `json:"description"`
	AccomplishmentDate *string   `json:"accomplishment_date"`
	Rank               *string   `json:"rank"`
	CreatedAt          time.Time `json:"created_at"`
}

type ExtraCurricular struct {
	ID           int64     `json:"extra_curricular_id"`
	UserID       int64     `json:"user_id"`
	ActivityName *string   `json:"activity_name"`
	Role         *string   `json:"role"`
	Organization *string   `json:"organization"`
	Duration     *string   `json:"duration"`
	CreatedAt    time.Time `json:"created_at"`
}

type Competition struct {
	ID          int64     `json:"event_id"`
	UserID      int64     `json:"user_id"`
	EventName   string    `json:"event_name"`
	EventDate   string    `json:"event_date"`
	Role        *string   `json:"role"`
	Achievement *string   `json:"achievement"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"created_at"`
}

// StudentProfile is the full read model a recruiter sees for one student.
type StudentProfile struct {
	Personal        *PersonalDetails  `json:"personal_details"`
	Internships     []Internship      `json:"internships"`
	Volunteering    []Volunteering    `json:"volunteering"`
	Skills          []Skill           `json:"skills"`
	Projects        []Project         `json:"projects"`
	Accomplishments []Accomplishment  `json:"accomplishments"`
	ExtraCurricular []ExtraCurricular `json:"extra_curricular"`
	Competitions    []Competition     `json:"competitions"`
}

// Inputs carry raw form values; validation happens in the usecase.
type InternshipInput struct {
	CompanyName   string
	JobTitle      string
	Location      string
	CompanySector string
	StartDate     string
	EndDate       string
	StipendSalary *float64
}

type VolunteeringInput struct {
	Location      string
	CompanySector string
	Task          string
	StartDate     string
	EndDate       string
}

type SkillInput struct {
	SkillName        string
	SkillProficiency string
}

type ProjectInput struct {
	ProjectTitle string
	Description  string
	TechStack    string
	ProjectLink  string
	Role         string
}

type AccomplishmentInput struct {
	Title              string
	Institution        string
	Type               string
	Description        string
	AccomplishmentDate string
	Rank               string
}

type ExtraCurricularInput struct {
	ActivityName string
	Role         string
	Organization string
	Duration     string
}

type CompetitionInput struct {
	EventName   string
	EventDate   string
	Role        string
	Achievement string
	Skills      []string
}

// StudentRecordRepository inserts rely on the user_id foreign key to personal_details;
// a missing profile surfaces as a ConstraintError wrapping ErrForeignKey.
type StudentRecordRepository interface {
	CreateInternship(ctx context.Context, rec *Internship) error
	CreateVolunteering(ctx context.Context, rec *Volunteering) error
	CreateSkill(ctx context.Context, rec *Skill) error
	CreateProject(ctx context.Context, rec *Project) error
	CreateAccomplishment(ctx context.Context, rec *Accomplishment) error
	CreateExtraCurricular(ctx context.Context, rec *ExtraCurricular) error
	CreateCompetition(ctx context.Context, rec *Competition) error

	ListInternships(ctx context.Context, userID int64) ([]Internship, error)
	ListVolunteering(ctx context.Context, userID int64) ([]Volunteering, error)
	ListSkills(ctx context.Context, userID int64) ([]Skill, error)
	ListProjects(ctx context.Context, userID int64) ([]Project, error)
	ListAccomplishments(ctx context.Context, userID int64) ([]Accomplishment, error)
	ListExtraCurricular(ctx context.Context, userID int64) ([]ExtraCurricular, error)
	ListCompetitions(ctx context.Context, userID int64) ([]Competition, error)
}

type StudentRecordUsecase interface {
	AddInternship(ctx context.Context, userID int64, in InternshipInput) (*Internship, error)
	AddVolunteering(ctx context.Context, userID int64, in VolunteeringInput) (*Volunteering, error)
	AddSkill(ctx context.Context, userID int64, in SkillInput) (*Skill, error)
	AddProject(ctx context.Context, userID int64, in ProjectInput) (*Project, error)
	AddAccomplishment(ctx context.Context, userID int64, in AccomplishmentInput) (*Accomplishment, error)
	AddExtraCurricular(ctx context.Context, userID int64, in ExtraCurricularInput) (*ExtraCurricular, error)
	AddCompetition(ctx context.Context, userID int64, in CompetitionInput) (*Competition, error)

	ListInternships(ctx context.Context, requester Identity, userID int64) ([]Internship, error)
	ListVolunteering(ctx context.Context, requester Identity, userID int64) ([]Volunteering, error)
	ListSkills(ctx context.Context, requester Identity, userID int64) ([]Skill, error)
	ListProjects(ctx context.Context, requester Identity, userID int64) ([]Project, error)
	ListAccomplishments(ctx context.Context, requester Identity, userID int64) ([]Accomplishment, error)
	ListExtraCurricular(ctx context.Context, requester Identity, userID int64) ([]ExtraCurricular, error)
	ListCompetitions(ctx context.Context, requester Identity, userID int64) ([]Competition, error)
}

type StudentDirectoryUsecase interface {
	Search(ctx context.Context, term string) ([]StudentSummary, error)
	GetFullProfile(ctx context.Context, userID int64) (*StudentProfile, error)
}
