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

type screeningUsecase struct {
	jobOwnership
	appRepo       domain.ApplicationRepository
	screeningRepo domain.ScreeningRepository
	events        domain.EventPublisher
}

func NewScreeningUsecase(
	screeningRepo domain.ScreeningRepository,
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	recruiterRepo domain.RecruiterRepository,
	events domain.EventPublisher,
) domain.ScreeningUsecase {
	return &screeningUsecase{
		jobOwnership:  newJobOwnership(jobRepo, recruiterRepo),
		appRepo:       appRepo,
		screeningRepo: screeningRepo,
		events:        events,
	}
}

// ownedApplication walks job ownership first, then the application within that job.
func (u *screeningUsecase) ownedApplication(ctx context.Context, userID, jobID, applicationID int64) (*domain.Application, error) {
	if _, err := u.ownedJob(ctx, userID, jobID, "managing screenings"); err != nil {
		return nil, err
	}
	app, err := u.appRepo.GetByID(ctx, jobID, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, storeError(err)
	}
	return app, nil
}

func (u *screeningUsecase) List(ctx context.Context, userID, jobID, applicationID int64) ([]domain.Screening, error) {
	app, err := u.ownedApplication(ctx, userID, jobID, applicationID)
	if err != nil {
		return nil, err
	}
	screenings, err := u.screeningRepo.ListByApplication(ctx, app.ID)
	if err != nil {
		return nil, storeError(err)
	}
	return screenings, nil
}

// Record appends a screening event. Events are never edited; corrections are new events.
func (u *screeningUsecase) Record(ctx context.Context, userID, jobID, applicationID int64, in domain.ScreeningInput) (*domain.Screening, error) {
	if err := requireFields(validation.Field{Name: "stage_name", Value: in.StageName}); err != nil {
		return nil, err
	}

	outcome := domain.ScreeningPending
	if strings.TrimSpace(in.Outcome) != "" {
		o, ok := domain.ParseScreeningOutcome(in.Outcome)
		if !ok {
			return nil, apperror.InvalidValue("Invalid screening outcome", domain.ScreeningOutcomes)
		}
		outcome = o
	}

	var scheduledAt *time.Time
	if strings.TrimSpace(in.ScheduledAt) != "" {
		t, err := validation.ParseTimestamp(in.ScheduledAt)
		if err != nil {
			return nil, apperror.BadRequest("Invalid scheduled_at").
				WithDetails(map[string]string{"scheduled_at": "RFC3339 timestamp or YYYY-MM-DD"})
		}
		scheduledAt = &t
	}

	app, err := u.ownedApplication(ctx, userID, jobID, applicationID)
	if err != nil {
		return nil, err
	}

	recordedBy := userID
	screening := &domain.Screening{
		ApplicationID: app.ID,
		StageName:     strings.TrimSpace(in.StageName),
		Outcome:       outcome,
		ScheduledAt:   scheduledAt,
		Notes:         validation.Optional(in.Notes),
		RecordedBy:    &recordedBy,
	}
	if err := u.screeningRepo.Create(ctx, screening); err != nil {
		return nil, storeError(err)
	}

	payload := map[string]interface{}{
		"screening_id":   screening.ID,
		"application_id": app.ID,
		"job_id":         jobID,
		"stage_name":     screening.StageName,
		"outcome":        screening.Outcome,
	}
	if err := u.events.Publish(ctx, domain.EventScreeningRecorded, payload); err != nil {
		logger.Log.Error("failed to publish screening event", "screening_id", screening.ID, "error", err)
	}
	return screening, nil
}
