package usecase

import (
	"context"
	"errors"
	"strings"

	"placement-portal-backend/internal/domain"
	"placement-portal-backend/pkg/apperror"
	"placement-portal-backend/pkg/validation"
)

type studentRecordUsecase struct {
	recordRepo domain.StudentRecordRepository
}

func NewStudentRecordUsecase(recordRepo domain.StudentRecordRepository) domain.StudentRecordUsecase {
	return &studentRecordUsecase{recordRepo: recordRepo}
}

// recordError maps insert failures. The only foreign key on a sub-record is the
// profile row, so a dangling reference means the profile was never submitted.
func recordError(err error, duplicateMsg string) error {
	switch {
	case errors.Is(err, domain.ErrForeignKey):
		return profileRequired()
	case errors.Is(err, domain.ErrDuplicate):
		return apperror.Conflict(duplicateMsg)
	case errors.Is(err, domain.ErrCheckViolation):
		return apperror.BadRequest("Invalid value for " + domain.ConstraintName(err))
	}
	return storeError(err)
}

func requireFields(fields ...validation.Field) error {
	if missing := validation.MissingFields(fields...); len(missing) > 0 {
		return apperror.MissingFields("Missing required fields", missing...)
	}
	return nil
}

func invalidDate(field string) error {
	return apperror.BadRequest("Invalid date format").WithDetails(map[string]string{field: "YYYY-MM-DD"})
}

// dateRange validates both dates and requires start to be strictly before end.
func dateRange(start, end string) (string, string, error) {
	s, err := validation.ParseDate(start)
	if err != nil {
		return "", "", invalidDate("start_date")
	}
	e, err := validation.ParseDate(end)
	if err != nil {
		return "", "", invalidDate("end_date")
	}
	if !s.Before(e) {
		return "", "", apperror.BadRequest("Invalid date range").
			WithDetails(map[string]string{"rule": "start_date must be before end_date"})
	}
	return s.Format(validation.DateLayout), e.Format(validation.DateLayout), nil
}

func (u *studentRecordUsecase) AddInternship(ctx context.Context, userID int64, in domain.InternshipInput) (*domain.Internship, error) {
	if err := requireFields(
		validation.Field{Name: "company_name", Value: in.CompanyName},
		validation.Field{Name: "job_title", Value: in.JobTitle},
		validation.Field{Name: "location", Value: in.Location},
		validation.Field{Name: "company_sector", Value: in.CompanySector},
		validation.Field{Name: "start_date", Value: in.StartDate},
		validation.Field{Name: "end_date", Value: in.EndDate},
	); err != nil {
		return nil, err
	}
	start, end, err := dateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if in.StipendSalary != nil && *in.StipendSalary < 0 {
		return nil, apperror.BadRequest("Stipend/salary must be a non-negative number")
	}

	rec := &domain.Internship{
		UserID:        userID,
		CompanyName:   strings.TrimSpace(in.CompanyName),
		JobTitle:      strings.TrimSpace(in.JobTitle),
		Location:      strings.TrimSpace(in.Location),
		CompanySector: strings.TrimSpace(in.CompanySector),
		StartDate:     start,
		EndDate:       end,
		StipendSalary: in.StipendSalary,
	}
	if err := u.recordRepo.CreateInternship(ctx, rec); err != nil {
		return nil, recordError(err, "Internship already exists")
	}
	return rec, nil
}

func (u *studentRecordUsecase) AddVolunteering(ctx context.Context, userID int64, in domain.VolunteeringInput) (*domain.Volunteering, error) {
	if err := requireFields(
		validation.Field{Name: "location", Value: in.Location},
		validation.Field{Name: "company_sector", Value: in.CompanySector},
		validation.Field{Name: "task", Value: in.Task},
		validation.Field{Name: "start_date", Value: in.StartDate},
		validation.Field{Name: "end_date", Value: in.EndDate},
	); err != nil {
		return nil, err
	}
	start, end, err := dateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	rec := &domain.Volunteering{
		UserID:        userID,
		Location:      strings.TrimSpace(in.Location),
		CompanySector: strings.TrimSpace(in.CompanySector),
		Task:          strings.TrimSpace(in.Task),
		StartDate:     start,
		EndDate:       end,
	}
	if err := u.recordRepo.CreateVolunteering(ctx, rec); err != nil {
		return nil, recordError(err, "Volunteering record already exists")
	}
	return rec, nil
}

func (u *studentRecordUsecase) AddSkill(ctx context.Context, userID int64, in domain.SkillInput) (*domain.Skill, error) {
	if err := requireFields(validation.Field{Name: "skill_name", Value: in.SkillName}); err != nil {
		return nil, err
	}

	proficiency := domain.ProficiencyBeginner
	if raw := strings.TrimSpace(in.SkillProficiency); raw != "" {
		proficiency = domain.Proficiency(raw)
		if !proficiency.IsValid() {
			return nil, apperror.InvalidValue("Invalid skill proficiency", domain.Proficiencies)
		}
	}

	rec := &domain.Skill{
		UserID:           userID,
		SkillName:        strings.TrimSpace(in.SkillName),
		SkillProficiency: proficiency,
	}
	if err := u.recordRepo.CreateSkill(ctx, rec); err != nil {
		return nil, recordError(err, "Skill already added")
	}
	return rec, nil
}

func (u *studentRecordUsecase) AddProject(ctx context.Context, userID int64, in domain.ProjectInput) (*domain.Project, error) {
	if err := requireFields(
		validation.Field{Name: "project_title", Value: in.ProjectTitle},
		validation.Field{Name: "description", Value: in.Description},
		validation.Field{Name: "tech_stack", Value: in.TechStack},
	); err != nil {
		return nil, err
	}

	rec := &domain.Project{
		UserID:       userID,
		ProjectTitle: strings.TrimSpace(in.ProjectTitle),
		Description:  strings.TrimSpace(in.Description),
		TechStack:    strings.TrimSpace(in.TechStack),
		ProjectLink:  validation.Optional(in.ProjectLink),
		Role:         validation.Optional(in.Role),
	}
	if err := u.recordRepo.CreateProject(ctx, rec); err != nil {
		return nil, recordError(err, "Project already exists")
	}
	return rec, nil
}

func (u *studentRecordUsecase) AddAccomplishment(ctx context.Context, userID int64, in domain.AccomplishmentInput) (*domain.Accomplishment, error) {
	if err := requireFields(validation.Field{Name: "title", Value: in.Title}); err != nil {
		return nil, err
	}

	date := validation.Optional(in.AccomplishmentDate)
	if date != nil {
		d, err := validation.ParseDate(*date)
		if err != nil {
			return nil, invalidDate("accomplishment_date")
		}
		formatted := d.Format(validation.DateLayout)
		date = &formatted
	}

	rec := &domain.Accomplishment{
		UserID:             userID,
		Title:              strings.TrimSpace(in.Title),
		Institution:        validation.Optional(in.Institution),
		Type:               validation.Optional(in.Type),
		Description:        validation.Optional(in.Description),
		AccomplishmentDate: date,
		Rank:               validation.Optional(in.Rank),
	}
	if err := u.recordRepo.CreateAccomplishment(ctx, rec); err != nil {
		return nil, recordError(err, "Accomplishment already exists")
	}
	return rec, nil
}

func (u *studentRecordUsecase) AddExtraCurricular(ctx context.Context, userID int64, in domain.ExtraCurricularInput) (*domain.ExtraCurricular, error) {
	if !validation.AnyPresent(in.ActivityName, in.Role, in.Organization, in.Duration) {
		return nil, apperror.MissingFields("At least one field is required",
			"activity_name", "role", "organization", "duration")
	}

	rec := &domain.ExtraCurricular{
		UserID:       userID,
		ActivityName: validation.Optional(in.ActivityName),
		Role:         validation.Optional(in.Role),
		Organization: validation.Optional(in.Organization),
		Duration:     validation.Optional(in.Duration),
	}
	if err := u.recordRepo.CreateExtraCurricular(ctx, rec); err != nil {
		return nil, recordError(err, "Activity already exists")
	}
	return rec, nil
}

func (u *studentRecordUsecase) AddCompetition(ctx context.Context, userID int64, in domain.CompetitionInput) (*domain.Competition, error) {
	if err := requireFields(
		validation.Field{Name: "event_name", Value: in.EventName},
		validation.Field{Name: "event_date", Value: in.EventDate},
	); err != nil {
		return nil, err
	}
	date, err := validation.ParseDate(in.EventDate)
	if err != nil {
		return nil, invalidDate("event_date")
	}

	skills := []string{}
	for _, s := range in.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}

	rec := &domain.Competition{
		UserID:      userID,
		EventName:   strings.TrimSpace(in.EventName),
		EventDate:   date.Format(validation.DateLayout),
		Role:        validation.Optional(in.Role),
		Achievement: validation.Optional(in.Achievement),
		Skills:      skills,
	}
	if err := u.recordRepo.CreateCompetition(ctx, rec); err != nil {
		return nil, recordError(err, "Competition already exists")
	}
	return rec, nil
}

// listRecords applies the read policy shared by every sub-record collection.
func listRecords[T any](ctx context.Context, requester domain.Identity, userID int64, noun string,
	fetch func(context.Context, int64) ([]T, error)) ([]T, error) {
	if !canReadStudent(requester, userID) {
		return nil, apperror.Forbidden("Access denied")
	}
	records, err := fetch(ctx, userID)
	if err != nil {
		return nil, storeError(err)
	}
	if len(records) == 0 {
		return nil, apperror.NotFound("No " + noun + " found")
	}
	return records, nil
}

func (u *studentRecordUsecase) ListInternships(ctx context.Context, requester domain.Identity, userID int64) ([]domain.Internship, error) {
	return listRecords(ctx, requester, userID, "internships", u.recordRepo.ListInternships)
}

func (u *studentRecordUsecase) ListVolunteering(ctx context.Context, requester domain.Identity, userID int64) ([]domain.Volunteering, error) {
	return listRecords(ctx, requester, userID, "volunteering records", u.recordRepo.ListVolunteering)
}

func (u *studentRecordUsecase) ListSkills(ctx context.Context, requester domain.Identity, userID int64) ([]domain.Skill, error) {
	return listRecords(ctx, requester, userID, "skills", u.recordRepo.ListSkills)
}

func (u *studentRecordUsecase) ListProjects(ctx context.Context, requester domain.Identity, userID int64) ([]domain.Project, error) {
	return listRecords(ctx, requester, userID, "projects", u.recordRepo.ListProjects)
}

func (u *studentRecordUsecase) ListAccomplishments(ctx context.Context, requester domain.Identity, userID int64) ([]domain.Accomplishment, error) {
	return listRecords(ctx, requester, userID, "accomplishments", u.recordRepo.ListAccomplishments)
}

func (u *studentRecordUsecase) ListExtraCurricular(ctx context.Context, requester domain.Identity, userID int64) ([]domain.ExtraCurricular, error) {
	return listRecords(ctx, requester, userID, "extra-curricular activities", u.recordRepo.ListExtraCurricular)
}

func (u *studentRecordUsecase) ListCompetitions(ctx context.Context, requester domain.Identity, userID int64) ([]domain.Competition, error) {
	return listRecords(ctx, requester, userID, "competitions", u.recordRepo.ListCompetitions)
}
