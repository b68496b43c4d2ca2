package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"testing"
	"time"

	"placement-portal-backend/internal/domain"
	"placement-portal-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type applicationFixture struct {
	apps       *MockApplicationRepo
	jobs       *MockJobRepo
	recruiters *MockRecruiterRepo
	events     *MockPublisher
	uc         domain.ApplicationUsecase
}

func newApplicationFixture() *applicationFixture {
	f := &applicationFixture{
		apps:       new(MockApplicationRepo),
		jobs:       new(MockJobRepo),
		recruiters: new(MockRecruiterRepo),
		events:     new(MockPublisher),
	}
	f.uc = usecase.NewApplicationUsecase(f.apps, f.jobs, f.recruiters, f.events)
	return f
}

// ownsJob wires recruiter A as the owner of job 1.
func (f *applicationFixture) ownsJob(ctx context.Context) {
	f.recruiters.On("GetByUserID", ctx, recruiterA).Return(recruiterProfile(recruiterA), nil)
	f.jobs.On("GetOwned", ctx, int64(1), recruiterA).Return(&domain.Job{ID: 1, RecruiterID: recruiterA}, nil)
}

func TestUpsertApplication(t *testing.T) {
	ctx := context.Background()

	t.Run("Insert Uses Defaults", func(t *testing.T) {
		f := newApplicationFixture()
		f.ownsJob(ctx)
		f.apps.On("Upsert", ctx, mock.MatchedBy(func(a *domain.Application) bool {
			return a.StudentUserID == 5 && a.Status == domain.ApplicationStatusPending &&
				a.CurrentStage == domain.DefaultApplicationStage
		})).Return(true, nil)
		f.events.On("Publish", ctx, domain.EventApplicationUpserted, mock.Anything).Return(nil)

		app, inserted, err := f.uc.Upsert(ctx, recruiterA, 1, domain.ApplicationInput{StudentUserID: float64(5)})
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.Equal(t, int64(1), app.JobID)
		f.events.AssertExpectations(t)
	})

	t.Run("Second Call Updates", func(t *testing.T) {
		f := newApplicationFixture()
		f.ownsJob(ctx)
		f.apps.On("Upsert", ctx, mock.MatchedBy(func(a *domain.Application) bool {
			return a.Status == domain.ApplicationStatusInProgress && a.CurrentStage == "Technical"
		})).Return(false, nil)
		f.events.On("Publish", ctx, domain.EventApplicationUpserted, mock.Anything).Return(nil)

		_, inserted, err := f.uc.Upsert(ctx, recruiterA, 1, domain.ApplicationInput{
			StudentUserID: "5", Status: "in_progress", CurrentStage: "Technical",
		})
		require.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("Missing Student", func(t *testing.T) {
		f := newApplicationFixture()
		_, _, err := f.uc.Upsert(ctx, recruiterA, 1, domain.ApplicationInput{})
		assertAppError(t, err, http.StatusBadRequest)
	})

	t.Run("Invalid Status", func(t *testing.T) {
		f := newApplicationFixture()
		_, _, err := f.uc.Upsert(ctx, recruiterA, 1, domain.ApplicationInput{StudentUserID: float64(5), Status: "shortlisted"})
		assertAppError(t, err, http.StatusBadRequest)
	})

	t.Run("Student Profile Not Found", func(t *testing.T) {
		f := newApplicationFixture()
		f.ownsJob(ctx)
		f.apps.On("Upsert", ctx, mock.Anything).
			Return(false, &domain.ConstraintError{Kind: domain.ErrForeignKey, Constraint: "job_applications_student_fkey"})

		_, _, err := f.uc.Upsert(ctx, recruiterA, 1, domain.ApplicationInput{StudentUserID: float64(99)})
		appErr := assertAppError(t, err, http.StatusNotFound)
		assert.Equal(t, "Student profile not found", appErr.Message)
	})

	t.Run("Foreign Job", func(t *testing.T) {
		f := newApplicationFixture()
		f.recruiters.On("GetByUserID", ctx, recruiterB).Return(recruiterProfile(recruiterB), nil)
		f.jobs.On("GetOwned", ctx, int64(1), recruiterB).Return(nil, domain.ErrNotFound)

		_, _, err := f.uc.Upsert(ctx, recruiterB, 1, domain.ApplicationInput{StudentUserID: float64(5)})
		assertAppError(t, err, http.StatusNotFound)
		f.apps.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestUpdateApplication(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Patch", func(t *testing.T) {
		f := newApplicationFixture()
		_, err := f.uc.Update(ctx, recruiterA, 1, 3, domain.ApplicationPatch{})
		assertAppError(t, err, http.StatusBadRequest)
	})

	t.Run("Invalid Status", func(t *testing.T) {
		f := newApplicationFixture()
		_, err := f.uc.Update(ctx, recruiterA, 1, 3, domain.ApplicationPatch{Status: strPtr("offer")})
		assertAppError(t, err, http.StatusBadRequest)
	})

	t.Run("Refreshes Updated At", func(t *testing.T) {
		f := newApplicationFixture()
		f.ownsJob(ctx)
		before := time.Now()
		f.apps.On("Update", ctx, int64(1), int64(3), mock.MatchedBy(func(u domain.ApplicationUpdate) bool {
			return u.Status != nil && *u.Status == domain.ApplicationStatusHired && !u.UpdatedAt.Before(before) &&
				u.CurrentStage == nil
		})).Return(&domain.Application{ID: 3, JobID: 1, Status: domain.ApplicationStatusHired}, nil)
		f.events.On("Publish", ctx, domain.EventApplicationUpdated, mock.Anything).Return(nil)

		app, err := f.uc.Update(ctx, recruiterA, 1, 3, domain.ApplicationPatch{Status: strPtr("hired")})
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusHired, app.Status)
	})

	t.Run("Blank Notes Clear", func(t *testing.T) {
		f := newApplicationFixture()
		f.ownsJob(ctx)
		f.apps.On("Update", ctx, int64(1), int64(3), mock.MatchedBy(func(u domain.ApplicationUpdate) bool {
			return u.ClearNotes && u.Notes == nil && u.Status == nil
		})).Return(&domain.Application{ID: 3, JobID: 1}, nil)
		f.events.On("Publish", ctx, domain.EventApplicationUpdated, mock.Anything).Return(nil)

		app, err := f.uc.Update(ctx, recruiterA, 1, 3, domain.ApplicationPatch{Notes: strPtr("  ")})
		require.NoError(t, err)
		assert.Nil(t, app.Notes)
		f.apps.AssertExpectations(t)
	})

	t.Run("Notes Are Kept Verbatim", func(t *testing.T) {
		f := newApplicationFixture()
		f.ownsJob(ctx)
		f.apps.On("Update", ctx, int64(1), int64(3), mock.MatchedBy(func(u domain.ApplicationUpdate) bool {
			return !u.ClearNotes && u.Notes != nil && *u.Notes == "strong fit"
		})).Return(&domain.Application{ID: 3, JobID: 1}, nil)
		f.events.On("Publish", ctx, domain.EventApplicationUpdated, mock.Anything).Return(nil)

		_, err := f.uc.Update(ctx, recruiterA, 1, 3, domain.ApplicationPatch{Notes: strPtr("strong fit")})
		require.NoError(t, err)
		f.apps.AssertExpectations(t)
	})

	t.Run("Application Of Another Job", func(t *testing.T) {
		f := newApplicationFixture()
		f.ownsJob(ctx)
		f.apps.On("Update", ctx, int64(1), int64(3), mock.Anything).Return(nil, domain.ErrNotFound)

		_, err := f.uc.Update(ctx, recruiterA, 1, 3, domain.ApplicationPatch{Notes: strPtr("n")})
		assertAppError(t, err, http.StatusNotFound)
	})
}

func TestExportApplications(t *testing.T) {
	ctx := context.Background()
	first, last := "Asha", "Rao"
	apps := []domain.Application{{
		ID: 3, JobID: 1, StudentUserID: 5, Status: domain.ApplicationStatusPending,
		CurrentStage: domain.DefaultApplicationStage,
		Student:      &domain.Applicant{FirstName: &first, LastName: &last},
	}}

	t.Run("CSV", func(t *testing.T) {
		f := newApplicationFixture()
		f.ownsJob(ctx)
		f.apps.On("ListByJob", ctx, int64(1)).Return(apps, nil)

		export, err := f.uc.Export(ctx, recruiterA, 1, "csv")
		require.NoError(t, err)
		assert.Equal(t, "job_1_applications.csv", export.Filename)

		records, err := csv.NewReader(bytes.NewReader(export.Data)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Asha", records[1][2])
	})

	t.Run("XLSX By Default", func(t *testing.T) {
		f := newApplicationFixture()
		f.ownsJob(ctx)
		f.apps.On("ListByJob", ctx, int64(1)).Return(apps, nil)

		export, err := f.uc.Export(ctx, recruiterA, 1, "")
		require.NoError(t, err)

		book, err := excelize.OpenReader(bytes.NewReader(export.Data))
		require.NoError(t, err)
		defer book.Close()
		value, err := book.GetCellValue("Applications", "C2")
		require.NoError(t, err)
		assert.Equal(t, "Asha", value)
	})

	t.Run("Unsupported Format", func(t *testing.T) {
		f := newApplicationFixture()
		_, err := f.uc.Export(ctx, recruiterA, 1, "pdf")
		assertAppError(t, err, http.StatusBadRequest)
	})
}
