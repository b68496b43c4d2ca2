package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"placement-portal-backend/internal/domain"
	"placement-portal-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// assertAppError fails the test unless err is an AppError with the given status code.
func assertAppError(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func strPtr(s string) *string { return &s }

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
		user.IsActive = true
	}
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) CreatePasswordReset(ctx context.Context, reset *domain.PasswordReset) error {
	return m.Called(ctx, reset).Error(0)
}

func (m *MockUserRepo) RedeemPasswordReset(ctx context.Context, tokenHash, passwordHash string, now time.Time) (int64, error) {
	args := m.Called(ctx, tokenHash, passwordHash, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(identity domain.Identity, ttl time.Duration) (string, time.Time, error) {
	args := m.Called(identity, ttl)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenIssuer) Parse(token string) (*domain.Identity, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

type MockLoginGuard struct {
	mock.Mock
}

func (m *MockLoginGuard) IsBlocked(ctx context.Context, email, ip string) (bool, error) {
	args := m.Called(ctx, email, ip)
	return args.Bool(0), args.Error(1)
}

func (m *MockLoginGuard) RecordFailedAttempt(ctx context.Context, email, ip, userAgent, requestID string) (bool, int, error) {
	args := m.Called(ctx, email, ip, userAgent, requestID)
	return args.Bool(0), args.Int(1), args.Error(2)
}

func (m *MockLoginGuard) ClearAttempts(ctx context.Context, email, ip string) error {
	return m.Called(ctx, email, ip).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	return m.Called(ctx, routingKey, payload).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, details *domain.PersonalDetails) error {
	return m.Called(ctx, details).Error(0)
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.PersonalDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PersonalDetails), args.Error(1)
}

func (m *MockProfileRepo) UpdatePicture(ctx context.Context, userID int64, dataURL string) error {
	return m.Called(ctx, userID, dataURL).Error(0)
}

func (m *MockProfileRepo) Search(ctx context.Context, term string) ([]domain.StudentSummary, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StudentSummary), args.Error(1)
}

type MockRecordRepo struct {
	mock.Mock
}

func (m *MockRecordRepo) CreateInternship(ctx context.Context, rec *domain.Internship) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockRecordRepo) CreateVolunteering(ctx context.Context, rec *domain.Volunteering) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockRecordRepo) CreateSkill(ctx context.Context, rec *domain.Skill) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockRecordRepo) CreateProject(ctx context.Context, rec *domain.Project) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockRecordRepo) CreateAccomplishment(ctx context.Context, rec *domain.Accomplishment) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockRecordRepo) CreateExtraCurricular(ctx context.Context, rec *domain.ExtraCurricular) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockRecordRepo) CreateCompetition(ctx context.Context, rec *domain.Competition) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockRecordRepo) ListInternships(ctx context.Context, userID int64) ([]domain.Internship, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Internship), args.Error(1)
}

func (m *MockRecordRepo) ListVolunteering(ctx context.Context, userID int64) ([]domain.Volunteering, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Volunteering), args.Error(1)
}

func (m *MockRecordRepo) ListSkills(ctx context.Context, userID int64) ([]domain.Skill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockRecordRepo) ListProjects(ctx context.Context, userID int64) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockRecordRepo) ListAccomplishments(ctx context.Context, userID int64) ([]domain.Accomplishment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Accomplishment), args.Error(1)
}

func (m *MockRecordRepo) ListExtraCurricular(ctx context.Context, userID int64) ([]domain.ExtraCurricular, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExtraCurricular), args.Error(1)
}

func (m *MockRecordRepo) ListCompetitions(ctx context.Context, userID int64) ([]domain.Competition, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Competition), args.Error(1)
}

type MockRecruiterRepo struct {
	mock.Mock
}

func (m *MockRecruiterRepo) GetByUserID(ctx context.Context, userID int64) (*domain.RecruiterProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruiterProfile), args.Error(1)
}

func (m *MockRecruiterRepo) Save(ctx context.Context, profile *domain.RecruiterProfile) (bool, error) {
	args := m.Called(ctx, profile)
	return args.Bool(0), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	if args.Error(0) == nil {
		job.ID = 100
	}
	return args.Error(0)
}

func (m *MockJobRepo) ListByRecruiter(ctx context.Context, recruiterID int64) ([]domain.Job, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) GetOwned(ctx context.Context, jobID, recruiterID int64) (*domain.Job, error) {
	args := m.Called(ctx, jobID, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) UpdateStatus(ctx context.Context, jobID, recruiterID int64, status domain.JobStatus) (*domain.Job, error) {
	args := m.Called(ctx, jobID, recruiterID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) Upsert(ctx context.Context, app *domain.Application) (bool, error) {
	args := m.Called(ctx, app)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, jobID, applicationID int64) (*domain.Application, error) {
	args := m.Called(ctx, jobID, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) Update(ctx context.Context, jobID, applicationID int64, upd domain.ApplicationUpdate) (*domain.Application, error) {
	args := m.Called(ctx, jobID, applicationID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

type MockScreeningRepo struct {
	mock.Mock
}

func (m *MockScreeningRepo) ListByApplication(ctx context.Context, applicationID int64) ([]domain.Screening, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Screening), args.Error(1)
}

func (m *MockScreeningRepo) Create(ctx context.Context, s *domain.Screening) error {
	return m.Called(ctx, s).Error(0)
}
