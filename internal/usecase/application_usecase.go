package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"placement-portal-backend/internal/domain"
	"placement-portal-backend/pkg/apperror"
	"placement-portal-backend/pkg/logger"
	"placement-portal-backend/pkg/validation"
)

const studentProfileFK = "job_applications_student_fkey"

type applicationUsecase struct {
	jobOwnership
	appRepo domain.ApplicationRepository
	events  domain.EventPublisher
	now     func() time.Time
}

func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	recruiterRepo domain.RecruiterRepository,
	events domain.EventPublisher,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		jobOwnership: newJobOwnership(jobRepo, recruiterRepo),
		appRepo:      appRepo,
		events:       events,
		now:          time.Now,
	}
}

func (u *applicationUsecase) publish(ctx context.Context, routingKey string, app *domain.Application) {
	payload := map[string]interface{}{
		"application_id":  app.ID,
		"job_id":          app.JobID,
		"student_user_id": app.StudentUserID,
		"status":          app.Status,
		"current_stage":   app.CurrentStage,
		"updated_at":      app.UpdatedAt,
	}
	if err := u.events.Publish(ctx, routingKey, payload); err != nil {
		logger.Log.Error("failed to publish application event",
			"event", routingKey, "application_id", app.ID, "error", err)
	}
}

func (u *applicationUsecase) List(ctx context.Context, userID, jobID int64) ([]domain.Application, error) {
	if _, err := u.ownedJob(ctx, userID, jobID, "managing applications"); err != nil {
		return nil, err
	}
	apps, err := u.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, storeError(err)
	}
	return apps, nil
}

// Upsert creates the (job, student) application or overwrites the existing one.
// The bool result reports whether a new row was inserted.
func (u *applicationUsecase) Upsert(ctx context.Context, userID, jobID int64, in domain.ApplicationInput) (*domain.Application, bool, error) {
	if in.StudentUserID == nil {
		return nil, false, apperror.MissingFields("student_user_id is required", "student_user_id")
	}
	studentID, ok := parseID(in.StudentUserID)
	if !ok {
		return nil, false, apperror.BadRequest("student_user_id must be a positive integer")
	}

	status := domain.ApplicationStatusPending
	if strings.TrimSpace(in.Status) != "" {
		s, ok := domain.ParseApplicationStatus(in.Status)
		if !ok {
			return nil, false, apperror.InvalidValue("Invalid application status", domain.ApplicationStatuses)
		}
		status = s
	}

	stage := strings.TrimSpace(in.CurrentStage)
	if stage == "" {
		stage = domain.DefaultApplicationStage
	}

	if _, err := u.ownedJob(ctx, userID, jobID, "managing applications"); err != nil {
		return nil, false, err
	}

	app := &domain.Application{
		JobID:         jobID,
		StudentUserID: studentID,
		Status:        status,
		CurrentStage:  stage,
		CoverLetter:   validation.Optional(in.CoverLetter),
		PortfolioURL:  validation.Optional(in.PortfolioURL),
		Notes:         validation.Optional(in.Notes),
	}
	inserted, err := u.appRepo.Upsert(ctx, app)
	if err != nil {
		if errors.Is(err, domain.ErrForeignKey) && domain.ConstraintName(err) == studentProfileFK {
			return nil, false, apperror.NotFound("Student profile not found")
		}
		return nil, false, storeError(err)
	}

	u.publish(ctx, domain.EventApplicationUpserted, app)
	return app, inserted, nil
}

func (u *applicationUsecase) Update(ctx context.Context, userID, jobID, applicationID int64, patch domain.ApplicationPatch) (*domain.Application, error) {
	if patch.CurrentStage == nil && patch.Status == nil && patch.Notes == nil {
		return nil, apperror.MissingFields("Provide at least one field to update", "current_stage", "status", "notes")
	}

	upd := domain.ApplicationUpdate{}
	if patch.Notes != nil {
		if strings.TrimSpace(*patch.Notes) == "" {
			upd.ClearNotes = true
		} else {
			upd.Notes = patch.Notes
		}
	}
	if patch.CurrentStage != nil {
		stage := strings.TrimSpace(*patch.CurrentStage)
		if stage == "" {
			return nil, apperror.BadRequest("current_stage cannot be empty")
		}
		upd.CurrentStage = &stage
	}
	if patch.Status != nil {
		s, ok := domain.ParseApplicationStatus(*patch.Status)
		if !ok {
			return nil, apperror.InvalidValue("Invalid application status", domain.ApplicationStatuses)
		}
		upd.Status = &s
	}

	if _, err := u.ownedJob(ctx, userID, jobID, "managing applications"); err != nil {
		return nil, err
	}

	upd.UpdatedAt = u.now()
	app, err := u.appRepo.Update(ctx, jobID, applicationID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, storeError(err)
	}

	u.publish(ctx, domain.EventApplicationUpdated, app)
	return app, nil
}

func (u *applicationUsecase) Export(ctx context.Context, userID, jobID int64, format string) (*domain.ApplicationExport, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = exportXLSX
	}
	if format != exportXLSX && format != exportCSV {
		return nil, apperror.InvalidValue("Unsupported export format", []string{exportXLSX, exportCSV})
	}

	job, err := u.ownedJob(ctx, userID, jobID, "managing applications")
	if err != nil {
		return nil, err
	}
	apps, err := u.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, storeError(err)
	}

	export, err := renderApplications(job, apps, format)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return export, nil
}
