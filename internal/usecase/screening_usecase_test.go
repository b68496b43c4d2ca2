package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"placement-portal-backend/internal/domain"
	"placement-portal-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type screeningFixture struct {
	applicationFixture
	screenings *MockScreeningRepo
	sc         domain.ScreeningUsecase
}

func newScreeningFixture() *screeningFixture {
	f := &screeningFixture{applicationFixture: *newApplicationFixture(), screenings: new(MockScreeningRepo)}
	f.sc = usecase.NewScreeningUsecase(f.screenings, f.apps, f.jobs, f.recruiters, f.events)
	return f
}

func (f *screeningFixture) ownsApplication(ctx context.Context) {
	f.ownsJob(ctx)
	f.apps.On("GetByID", ctx, int64(1), int64(3)).Return(&domain.Application{ID: 3, JobID: 1}, nil)
}

func TestRecordScreening(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults Outcome And Records Author", func(t *testing.T) {
		f := newScreeningFixture()
		f.ownsApplication(ctx)
		f.screenings.On("Create", ctx, mock.MatchedBy(func(s *domain.Screening) bool {
			return s.ApplicationID == 3 && s.Outcome == domain.ScreeningPending &&
				s.RecordedBy != nil && *s.RecordedBy == recruiterA && s.ScheduledAt != nil
		})).Return(nil)
		f.events.On("Publish", ctx, domain.EventScreeningRecorded, mock.Anything).Return(nil)

		s, err := f.sc.Record(ctx, recruiterA, 1, 3, domain.ScreeningInput{StageName: "HR Round", ScheduledAt: "2024-03-01"})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *s.ScheduledAt)
	})

	t.Run("Accepts RFC3339", func(t *testing.T) {
		f := newScreeningFixture()
		f.ownsApplication(ctx)
		f.screenings.On("Create", ctx, mock.Anything).Return(nil)
		f.events.On("Publish", ctx, domain.EventScreeningRecorded, mock.Anything).Return(nil)

		_, err := f.sc.Record(ctx, recruiterA, 1, 3, domain.ScreeningInput{
			StageName: "Tech", Outcome: "PASS", ScheduledAt: "2024-03-01T10:30:00+05:30",
		})
		require.NoError(t, err)
	})

	t.Run("Stage Name Required", func(t *testing.T) {
		f := newScreeningFixture()
		_, err := f.sc.Record(ctx, recruiterA, 1, 3, domain.ScreeningInput{})
		assertAppError(t, err, http.StatusBadRequest)
	})

	t.Run("Invalid Outcome", func(t *testing.T) {
		f := newScreeningFixture()
		_, err := f.sc.Record(ctx, recruiterA, 1, 3, domain.ScreeningInput{StageName: "HR", Outcome: "maybe"})
		assertAppError(t, err, http.StatusBadRequest)
	})

	t.Run("Malformed Schedule", func(t *testing.T) {
		f := newScreeningFixture()
		_, err := f.sc.Record(ctx, recruiterA, 1, 3, domain.ScreeningInput{StageName: "HR", ScheduledAt: "tomorrow"})
		assertAppError(t, err, http.StatusBadRequest)
	})

	t.Run("Application Outside Job", func(t *testing.T) {
		f := newScreeningFixture()
		f.ownsJob(ctx)
		f.apps.On("GetByID", ctx, int64(1), int64(3)).Return(nil, domain.ErrNotFound)

		_, err := f.sc.Record(ctx, recruiterA, 1, 3, domain.ScreeningInput{StageName: "HR"})
		assertAppError(t, err, http.StatusNotFound)
		f.screenings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestListScreenings(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns Log", func(t *testing.T) {
		f := newScreeningFixture()
		f.ownsApplication(ctx)
		f.screenings.On("ListByApplication", ctx, int64(3)).
			Return([]domain.Screening{{ID: 2}, {ID: 1}}, nil)

		list, err := f.sc.List(ctx, recruiterA, 1, 3)
		require.NoError(t, err)
		assert.Len(t, list, 2)
		assert.Equal(t, int64(2), list[0].ID)
	})

	t.Run("Foreign Job", func(t *testing.T) {
		f := newScreeningFixture()
		f.recruiters.On("GetByUserID", ctx, recruiterB).Return(recruiterProfile(recruiterB), nil)
		f.jobs.On("GetOwned", ctx, int64(1), recruiterB).Return(nil, domain.ErrNotFound)

		_, err := f.sc.List(ctx, recruiterB, 1, 3)
		assertAppError(t, err, http.StatusNotFound)
	})
}
