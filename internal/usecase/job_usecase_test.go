package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"placement-portal-backend/internal/domain"
	"placement-portal-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	recruiterA = int64(10)
	recruiterB = int64(20)
)

func recruiterProfile(id int64) *domain.RecruiterProfile {
	return &domain.RecruiterProfile{RecruiterID: id, CompanyID: id * 100}
}

func validJobInput() domain.JobInput {
	return domain.JobInput{Title: "Backend Engineer", Location: "Bengaluru", Description: "Build APIs"}
}

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	openingsCases := map[string]interface{}{
		"zero":        float64(0),
		"negative":    float64(-4),
		"non numeric": "many",
		"absent":      nil,
	}
	for name, openings := range openingsCases {
		t.Run("Openings Clamped When "+name, func(t *testing.T) {
			jobs, recruiters := new(MockJobRepo), new(MockRecruiterRepo)
			recruiters.On("GetByUserID", ctx, recruiterA).Return(recruiterProfile(recruiterA), nil)
			jobs.On("Create", ctx, mock.MatchedBy(func(j *domain.Job) bool { return j.Openings == 1 })).Return(nil)

			in := validJobInput()
			in.Openings = openings
			_, err := usecase.NewJobUsecase(jobs, recruiters).CreateJob(ctx, recruiterA, in)
			require.NoError(t, err)
			jobs.AssertExpectations(t)
		})
	}

	t.Run("Defaults And Normalisation", func(t *testing.T) {
		jobs, recruiters := new(MockJobRepo), new(MockRecruiterRepo)
		recruiters.On("GetByUserID", ctx, recruiterA).Return(recruiterProfile(recruiterA), nil)
		jobs.On("Create", ctx, mock.Anything).Return(nil)

		in := validJobInput()
		in.Status = "bogus"
		in.EmploymentType = "part-time"
		in.Openings = "3"
		in.SalaryCTC = "not a number"
		in.StipendAmount = float64(15000)
		in.Skills = []interface{}{"Go", " ", "SQL"}

		job, err := usecase.NewJobUsecase(jobs, recruiters).CreateJob(ctx, recruiterA, in)
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusDraft, job.Status)
		assert.Equal(t, domain.EmploymentContract, job.EmploymentType)
		assert.Equal(t, 3, job.Openings)
		assert.Nil(t, job.SalaryCTC)
		require.NotNil(t, job.StipendAmount)
		assert.Equal(t, 15000.0, *job.StipendAmount)
		assert.Equal(t, []string{"Go", "SQL"}, job.Skills)
		assert.Equal(t, "INR", job.Currency)
		assert.Equal(t, recruiterA*100, *job.CompanyID)
	})

	t.Run("Unknown Employment Type", func(t *testing.T) {
		jobs, recruiters := new(MockJobRepo), new(MockRecruiterRepo)
		recruiters.On("GetByUserID", ctx, recruiterA).Return(recruiterProfile(recruiterA), nil)

		in := validJobInput()
		in.EmploymentType = "gig"
		_, err := usecase.NewJobUsecase(jobs, recruiters).CreateJob(ctx, recruiterA, in)
		assertAppError(t, err, http.StatusBadRequest)
	})

	t.Run("Missing Required Fields", func(t *testing.T) {
		jobs, recruiters := new(MockJobRepo), new(MockRecruiterRepo)
		recruiters.On("GetByUserID", ctx, recruiterA).Return(recruiterProfile(recruiterA), nil)

		_, err := usecase.NewJobUsecase(jobs, recruiters).CreateJob(ctx, recruiterA, domain.JobInput{Title: "x"})
		appErr := assertAppError(t, err, http.StatusBadRequest)
		assert.Equal(t, map[string]interface{}{"required": []string{"location", "description"}}, appErr.Details)
	})

	t.Run("No Recruiter Profile", func(t *testing.T) {
		jobs, recruiters := new(MockJobRepo), new(MockRecruiterRepo)
		recruiters.On("GetByUserID", ctx, recruiterA).Return(nil, domain.ErrNotFound)

		_, err := usecase.NewJobUsecase(jobs, recruiters).CreateJob(ctx, recruiterA, validJobInput())
		assertAppError(t, err, http.StatusConflict)
	})
}

func TestJobOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("Foreign Job Status Patch Is Not Found", func(t *testing.T) {
		jobs, recruiters := new(MockJobRepo), new(MockRecruiterRepo)
		recruiters.On("GetByUserID", ctx, recruiterA).Return(recruiterProfile(recruiterA), nil)
		jobs.On("UpdateStatus", ctx, int64(77), recruiterA, domain.JobStatusClosed).Return(nil, domain.ErrNotFound)

		_, err := usecase.NewJobUsecase(jobs, recruiters).UpdateJobStatus(ctx, recruiterA, 77, "closed")
		appErr := assertAppError(t, err, http.StatusNotFound)
		assert.Equal(t, "Job not found", appErr.Message)
	})

	t.Run("Invalid Status Rejected Before Ownership", func(t *testing.T) {
		jobs, recruiters := new(MockJobRepo), new(MockRecruiterRepo)

		_, err := usecase.NewJobUsecase(jobs, recruiters).UpdateJobStatus(ctx, recruiterA, 77, "archived")
		assertAppError(t, err, http.StatusBadRequest)
		recruiters.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	})

	t.Run("Any Status Transition Allowed", func(t *testing.T) {
		jobs, recruiters := new(MockJobRepo), new(MockRecruiterRepo)
		recruiters.On("GetByUserID", ctx, recruiterA).Return(recruiterProfile(recruiterA), nil)
		jobs.On("UpdateStatus", ctx, int64(1), recruiterA, domain.JobStatusDraft).
			Return(&domain.Job{ID: 1, Status: domain.JobStatusDraft}, nil)

		job, err := usecase.NewJobUsecase(jobs, recruiters).UpdateJobStatus(ctx, recruiterA, 1, "DRAFT")
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusDraft, job.Status)
	})

	t.Run("Get Foreign Job", func(t *testing.T) {
		jobs, recruiters := new(MockJobRepo), new(MockRecruiterRepo)
		recruiters.On("GetByUserID", ctx, recruiterB).Return(recruiterProfile(recruiterB), nil)
		jobs.On("GetOwned", ctx, int64(1), recruiterB).Return(nil, domain.ErrNotFound)

		_, err := usecase.NewJobUsecase(jobs, recruiters).GetJob(ctx, recruiterB, 1)
		assertAppError(t, err, http.StatusNotFound)
	})
}

func TestUpdateJob(t *testing.T) {
	ctx := context.Background()
	existing := &domain.Job{ID: 1, RecruiterID: recruiterA, Status: domain.JobStatusOpen}

	t.Run("Keeps Status When Omitted", func(t *testing.T) {
		jobs, recruiters := new(MockJobRepo), new(MockRecruiterRepo)
		recruiters.On("GetByUserID", ctx, recruiterA).Return(recruiterProfile(recruiterA), nil)
		jobs.On("GetOwned", ctx, int64(1), recruiterA).Return(existing, nil)
		jobs.On("Update", ctx, mock.MatchedBy(func(j *domain.Job) bool {
			return j.ID == 1 && j.Status == domain.JobStatusOpen && j.RecruiterID == recruiterA
		})).Return(nil)

		_, err := usecase.NewJobUsecase(jobs, recruiters).UpdateJob(ctx, recruiterA, 1, validJobInput())
		require.NoError(t, err)
		jobs.AssertExpectations(t)
	})

	t.Run("Rejects Unknown Status", func(t *testing.T) {
		jobs, recruiters := new(MockJobRepo), new(MockRecruiterRepo)
		recruiters.On("GetByUserID", ctx, recruiterA).Return(recruiterProfile(recruiterA), nil)
		jobs.On("GetOwned", ctx, int64(1), recruiterA).Return(existing, nil)

		in := validJobInput()
		in.Status = "archived"
		_, err := usecase.NewJobUsecase(jobs, recruiters).UpdateJob(ctx, recruiterA, 1, in)
		assertAppError(t, err, http.StatusBadRequest)
	})
}
