package usecase

import (
	"context"
	"errors"
	"strings"

	"placement-portal-backend/internal/domain"
	"placement-portal-backend/pkg/apperror"
	"placement-portal-backend/pkg/validation"
)

// recruiterResolver turns an authenticated user id into a provisioned recruiter.
type recruiterResolver struct {
	recruiterRepo domain.RecruiterRepository
}

func (r recruiterResolver) resolve(ctx context.Context, userID int64, action string) (*domain.RecruiterProfile, error) {
	profile, err := r.recruiterRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, recruiterProfileRequired(action)
		}
		return nil, storeError(err)
	}
	return profile, nil
}

// jobOwnership gates application and screening access on owning the parent job.
type jobOwnership struct {
	recruiterResolver
	jobRepo domain.JobRepository
}

func newJobOwnership(jobRepo domain.JobRepository, recruiterRepo domain.RecruiterRepository) jobOwnership {
	return jobOwnership{recruiterResolver: recruiterResolver{recruiterRepo: recruiterRepo}, jobRepo: jobRepo}
}

// ownedJob reports a job owned by someone else exactly like a missing one.
func (o jobOwnership) ownedJob(ctx context.Context, userID, jobID int64, action string) (*domain.Job, error) {
	recruiter, err := o.resolve(ctx, userID, action)
	if err != nil {
		return nil, err
	}
	job, err := o.jobRepo.GetOwned(ctx, jobID, recruiter.RecruiterID)
	if err != nil {
		return nil, jobNotFound(err)
	}
	return job, nil
}

func jobNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Job not found")
	}
	return storeError(err)
}

type jobUsecase struct {
	recruiterResolver
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, recruiterRepo domain.RecruiterRepository) domain.JobUsecase {
	return &jobUsecase{
		recruiterResolver: recruiterResolver{recruiterRepo: recruiterRepo},
		jobRepo:           jobRepo,
	}
}

func (u *jobUsecase) ListJobs(ctx context.Context, userID int64) ([]domain.Job, error) {
	recruiter, err := u.resolve(ctx, userID, "listing jobs")
	if err != nil {
		return nil, err
	}
	jobs, err := u.jobRepo.ListByRecruiter(ctx, recruiter.RecruiterID)
	if err != nil {
		return nil, storeError(err)
	}
	return jobs, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID int64, in domain.JobInput) (*domain.Job, error) {
	recruiter, err := u.resolve(ctx, userID, "posting jobs")
	if err != nil {
		return nil, err
	}

	job, err := buildJob(in)
	if err != nil {
		return nil, err
	}
	status, ok := domain.ParseJobStatus(in.Status)
	if !ok {
		status = domain.JobStatusDraft
	}
	job.Status = status
	job.RecruiterID = recruiter.RecruiterID
	companyID := recruiter.CompanyID
	job.CompanyID = &companyID

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, storeError(err)
	}
	return job, nil
}

func (u *jobUsecase) GetJob(ctx context.Context, userID, jobID int64) (*domain.Job, error) {
	recruiter, err := u.resolve(ctx, userID, "viewing jobs")
	if err != nil {
		return nil, err
	}
	job, err := u.jobRepo.GetOwned(ctx, jobID, recruiter.RecruiterID)
	if err != nil {
		return nil, jobNotFound(err)
	}
	return job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, userID, jobID int64, in domain.JobInput) (*domain.Job, error) {
	recruiter, err := u.resolve(ctx, userID, "updating jobs")
	if err != nil {
		return nil, err
	}

	job, err := buildJob(in)
	if err != nil {
		return nil, err
	}

	existing, err := u.jobRepo.GetOwned(ctx, jobID, recruiter.RecruiterID)
	if err != nil {
		return nil, jobNotFound(err)
	}

	job.Status = existing.Status
	if strings.TrimSpace(in.Status) != "" {
		status, ok := domain.ParseJobStatus(in.Status)
		if !ok {
			return nil, apperror.InvalidValue("Invalid job status", domain.JobStatuses)
		}
		job.Status = status
	}
	job.ID = existing.ID
	job.RecruiterID = existing.RecruiterID
	job.CompanyID = existing.CompanyID

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, jobNotFound(err)
	}
	return job, nil
}

// UpdateJobStatus permits any transition within the fixed status set.
func (u *jobUsecase) UpdateJobStatus(ctx context.Context, userID, jobID int64, raw string) (*domain.Job, error) {
	status, ok := domain.ParseJobStatus(raw)
	if !ok {
		return nil, apperror.InvalidValue("Invalid job status", domain.JobStatuses)
	}

	recruiter, err := u.resolve(ctx, userID, "updating jobs")
	if err != nil {
		return nil, err
	}
	job, err := u.jobRepo.UpdateStatus(ctx, jobID, recruiter.RecruiterID, status)
	if err != nil {
		return nil, jobNotFound(err)
	}
	return job, nil
}

// buildJob validates and normalises the fields shared by create and update.
func buildJob(in domain.JobInput) (*domain.Job, error) {
	if err := requireFields(
		validation.Field{Name: "title", Value: in.Title},
		validation.Field{Name: "location", Value: in.Location},
		validation.Field{Name: "description", Value: in.Description},
	); err != nil {
		return nil, err
	}

	employmentType := domain.EmploymentFullTime
	if strings.TrimSpace(in.EmploymentType) != "" {
		t, ok := domain.NormalizeEmploymentType(in.EmploymentType)
		if !ok {
			return nil, apperror.InvalidValue("Invalid employment_type", domain.EmploymentTypes)
		}
		employmentType = t
	}

	deadline := validation.Optional(in.ApplicationDeadline)
	if deadline != nil {
		d, err := validation.ParseDate(*deadline)
		if err != nil {
			return nil, invalidDate("application_deadline")
		}
		formatted := d.Format(validation.DateLayout)
		deadline = &formatted
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = "INR"
	}

	return &domain.Job{
		Title:               strings.TrimSpace(in.Title),
		JobFunction:         validation.Optional(in.JobFunction),
		EmploymentType:      employmentType,
		WorkMode:            validation.Optional(in.WorkMode),
		Location:            strings.TrimSpace(in.Location),
		Description:         strings.TrimSpace(in.Description),
		Responsibilities:    validation.Optional(in.Responsibilities),
		Qualifications:      validation.Optional(in.Qualifications),
		Skills:              parseStringList(in.Skills),
		ExperienceLevel:     validation.Optional(in.ExperienceLevel),
		ApplicationDeadline: deadline,
		ApplyLink:           validation.Optional(in.ApplyLink),
		SalaryCTC:           nullableNumber(in.SalaryCTC),
		StipendAmount:       nullableNumber(in.StipendAmount),
		Currency:            currency,
		CompensationNotes:   validation.Optional(in.CompensationNotes),
		Openings:            clampOpenings(in.Openings),
	}, nil
}
