package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"placement-portal-backend/config"
	"placement-portal-backend/internal/delivery/http/middleware"
	v1 "placement-portal-backend/internal/delivery/http/v1"
	"placement-portal-backend/internal/domain"
	"placement-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- usecase mocks ---

type MockAuthUC struct{ mock.Mock }

func (m *MockAuthUC) Signup(ctx context.Context, in domain.SignupInput) (*domain.AuthResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthUC) Login(ctx context.Context, in domain.LoginInput) (*domain.AuthResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthUC) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

func (m *MockAuthUC) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockAuthUC) ResetPassword(ctx context.Context, token, password string) error {
	return m.Called(ctx, token, password).Error(0)
}

type MockJobUC struct{ mock.Mock }

func (m *MockJobUC) ListJobs(ctx context.Context, userID int64) ([]domain.Job, error) {
	args := m.Called(ctx, userID)
	jobs, _ := args.Get(0).([]domain.Job)
	return jobs, args.Error(1)
}

func (m *MockJobUC) CreateJob(ctx context.Context, userID int64, in domain.JobInput) (*domain.Job, error) {
	args := m.Called(ctx, userID, in)
	job, _ := args.Get(0).(*domain.Job)
	return job, args.Error(1)
}

func (m *MockJobUC) GetJob(ctx context.Context, userID, jobID int64) (*domain.Job, error) {
	args := m.Called(ctx, userID, jobID)
	job, _ := args.Get(0).(*domain.Job)
	return job, args.Error(1)
}

func (m *MockJobUC) UpdateJob(ctx context.Context, userID, jobID int64, in domain.JobInput) (*domain.Job, error) {
	args := m.Called(ctx, userID, jobID, in)
	job, _ := args.Get(0).(*domain.Job)
	return job, args.Error(1)
}

func (m *MockJobUC) UpdateJobStatus(ctx context.Context, userID, jobID int64, status string) (*domain.Job, error) {
	args := m.Called(ctx, userID, jobID, status)
	job, _ := args.Get(0).(*domain.Job)
	return job, args.Error(1)
}

type MockApplicationUC struct{ mock.Mock }

func (m *MockApplicationUC) List(ctx context.Context, userID, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, userID, jobID)
	apps, _ := args.Get(0).([]domain.Application)
	return apps, args.Error(1)
}

func (m *MockApplicationUC) Upsert(ctx context.Context, userID, jobID int64, in domain.ApplicationInput) (*domain.Application, bool, error) {
	args := m.Called(ctx, userID, jobID, in)
	app, _ := args.Get(0).(*domain.Application)
	return app, args.Bool(1), args.Error(2)
}

func (m *MockApplicationUC) Update(ctx context.Context, userID, jobID, applicationID int64, patch domain.ApplicationPatch) (*domain.Application, error) {
	args := m.Called(ctx, userID, jobID, applicationID, patch)
	app, _ := args.Get(0).(*domain.Application)
	return app, args.Error(1)
}

func (m *MockApplicationUC) Export(ctx context.Context, userID, jobID int64, format string) (*domain.ApplicationExport, error) {
	args := m.Called(ctx, userID, jobID, format)
	export, _ := args.Get(0).(*domain.ApplicationExport)
	return export, args.Error(1)
}

type MockRecordUC struct {
	mock.Mock
	domain.StudentRecordUsecase
}

func (m *MockRecordUC) AddInternship(ctx context.Context, userID int64, in domain.InternshipInput) (*domain.Internship, error) {
	args := m.Called(ctx, userID, in)
	rec, _ := args.Get(0).(*domain.Internship)
	return rec, args.Error(1)
}

func (m *MockRecordUC) ListSkills(ctx context.Context, requester domain.Identity, userID int64) ([]domain.Skill, error) {
	args := m.Called(ctx, requester, userID)
	skills, _ := args.Get(0).([]domain.Skill)
	return skills, args.Error(1)
}

type MockHealthUC struct{ mock.Mock }

func (m *MockHealthUC) Check(ctx context.Context) (*domain.HealthStatus, bool) {
	args := m.Called(ctx)
	return args.Get(0).(*domain.HealthStatus), args.Bool(1)
}

// --- fixture ---

var (
	student   = &domain.Identity{ID: 7, Email: "s@x.com", Role: domain.RoleStudent}
	recruiter = &domain.Identity{ID: 9, Email: "r@x.com", Role: domain.RoleRecruiter}
)

type fixture struct {
	auth    *MockAuthUC
	jobs    *MockJobUC
	apps    *MockApplicationUC
	records *MockRecordUC
	health  *MockHealthUC
	cfg     *config.Config
	router  *gin.Engine
}

func newFixture(t *testing.T, production bool) *fixture {
	t.Helper()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>spa</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "app.js"), []byte("console.log(1)"), 0o644))

	env := "development"
	if production {
		env = "production"
	}
	f := &fixture{
		auth:    new(MockAuthUC),
		jobs:    new(MockJobUC),
		apps:    new(MockApplicationUC),
		records: new(MockRecordUC),
		health:  new(MockHealthUC),
		cfg: &config.Config{
			Environment:              env,
			CORSOrigins:              []string{"http://localhost:5173"},
			StaticDir:                staticDir,
			RateLimitWindowSeconds:   60,
			RateLimitAuthThreshold:   1000,
			RateLimitGlobalThreshold: 1000,
			MaxPictureBytes:          1 << 20,
		},
	}

	f.auth.On("Verify", mock.Anything, "").Return(nil, apperror.Unauthorized("Access token required")).Maybe()
	f.auth.On("Verify", mock.Anything, "student-token").Return(student, nil).Maybe()
	f.auth.On("Verify", mock.Anything, "recruiter-token").Return(recruiter, nil).Maybe()

	f.router = v1.NewRouter(v1.RouterDeps{
		AuthUC:          f.auth,
		JobUC:           f.jobs,
		ApplicationUC:   f.apps,
		StudentRecordUC: f.records,
		HealthUC:        f.health,
		Config:          f.cfg,
	})
	return f
}

func (f *fixture) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func tokenCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.TokenCookie {
			return c
		}
	}
	return nil
}

// --- auth ---

func TestSignup_SetsCookie(t *testing.T) {
	f := newFixture(t, false)
	f.auth.On("Signup", mock.Anything, domain.SignupInput{Email: "a@b.com", Password: "pw", Role: "hacker"}).
		Return(&domain.AuthResult{Token: "tok", User: &domain.User{ID: 1, Email: "a@b.com", Role: domain.RoleStudent}}, nil)

	rec := f.do(http.MethodPost, "/api/auth/signup", "", map[string]string{"email": "a@b.com", "password": "pw", "role": "hacker"})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Sign-up successful", decode(t, rec).Message)

	cookie := tokenCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "tok", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 3600, cookie.MaxAge)
}

func TestSignup_MalformedEmail(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(http.MethodPost, "/api/auth/signup", "", map[string]string{"email": "not-an-email", "password": "pw"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.auth.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestLogin_ProductionCookieAndRemember(t *testing.T) {
	f := newFixture(t, true)
	f.auth.On("Login", mock.Anything, mock.MatchedBy(func(in domain.LoginInput) bool {
		return in.Email == "a@b.com" && in.Remember && in.RequestID != ""
	})).Return(&domain.AuthResult{Token: "tok"}, nil)

	rec := f.do(http.MethodPost, "/api/auth/login", "", map[string]interface{}{"email": "a@b.com", "password": "pw", "remember": true})

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := tokenCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.Equal(t, 30*24*3600, cookie.MaxAge)
}

func TestLogin_Blocked(t *testing.T) {
	f := newFixture(t, false)
	f.auth.On("Login", mock.Anything, mock.Anything).Return(nil, apperror.TooManyRequests("Too many failed attempts"))

	rec := f.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@b.com", "password": "pw"})

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Nil(t, tokenCookie(rec))
}

func TestLogout_ClearsCookie(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(http.MethodPost, "/api/auth/logout", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := tokenCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestVerify(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(http.MethodGet, "/api/auth/verify", "student-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":{"id":7,"email":"s@x.com","role":"student"}}`, string(decode(t, rec).Data))

	rec = f.do(http.MethodGet, "/api/auth/verify", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// --- student records ---

func TestAddInternship_InvalidDateRange(t *testing.T) {
	f := newFixture(t, false)
	body := map[string]string{
		"company_name": "Acme", "job_title": "Intern", "location": "Pune",
		"start_date": "2024-06-01", "end_date": "2024-01-01",
	}
	f.records.On("AddInternship", mock.Anything, int64(7), mock.MatchedBy(func(in domain.InternshipInput) bool {
		return in.StartDate == "2024-06-01" && in.EndDate == "2024-01-01"
	})).Return(nil, apperror.BadRequest("Invalid date range"))

	rec := f.do(http.MethodPost, "/api/internship-details-form", "student-token", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid date range", decode(t, rec).Message)
}

func TestAddInternship_Created(t *testing.T) {
	f := newFixture(t, false)
	f.records.On("AddInternship", mock.Anything, int64(7), mock.Anything).
		Return(&domain.Internship{ID: 3, UserID: 7, CompanyName: "Acme"}, nil)

	rec := f.do(http.MethodPost, "/api/internship-details-form", "student-token", map[string]string{"company_name": "Acme"})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"internship_id":3`)
}

func TestListSkills_OwnAndOther(t *testing.T) {
	f := newFixture(t, false)
	f.records.On("ListSkills", mock.Anything, *student, int64(7)).Return([]domain.Skill{{ID: 1, UserID: 7, SkillName: "Go"}}, nil)
	f.records.On("ListSkills", mock.Anything, *student, int64(8)).Return(nil, apperror.Forbidden("Not allowed to view this student's records"))

	rec := f.do(http.MethodGet, "/api/skills-information", "student-token", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/api/skills-information/8", "student-token", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(http.MethodGet, "/api/skills-information/abc", "student-token", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// --- recruiter ---

func TestRecruiterRoutes_RejectStudents(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(http.MethodGet, "/api/recruiter/jobs", "student-token", nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	f.jobs.AssertNotCalled(t, "ListJobs", mock.Anything, mock.Anything)
}

func TestUpdateJobStatus_ForeignJobIsNotFound(t *testing.T) {
	f := newFixture(t, false)
	f.jobs.On("UpdateJobStatus", mock.Anything, int64(9), int64(55), "closed").Return(nil, apperror.NotFound("Job not found"))

	rec := f.do(http.MethodPatch, "/api/recruiter/jobs/55/status", "recruiter-token", map[string]string{"status": "closed"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	f.jobs.AssertExpectations(t)
}

func TestCreateJob_PassesLooseNumbers(t *testing.T) {
	f := newFixture(t, false)
	f.jobs.On("CreateJob", mock.Anything, int64(9), mock.MatchedBy(func(in domain.JobInput) bool {
		return in.Title == "SDE" && in.Openings == "3" && in.SalaryCTC == float64(1200000)
	})).Return(&domain.Job{ID: 100, Title: "SDE", Status: domain.JobStatusDraft, Openings: 3}, nil)

	rec := f.do(http.MethodPost, "/api/recruiter/jobs", "recruiter-token", map[string]interface{}{
		"title": "SDE", "location": "Remote", "description": "Build things", "openings": "3", "salary_ctc": 1200000,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	f.jobs.AssertExpectations(t)
}

func TestUpsertApplication_UserIDAlias(t *testing.T) {
	f := newFixture(t, false)
	app := &domain.Application{ID: 1, JobID: 100, StudentUserID: 7, Status: domain.ApplicationStatusPending}
	f.apps.On("Upsert", mock.Anything, int64(9), int64(100), mock.MatchedBy(func(in domain.ApplicationInput) bool {
		return in.StudentUserID == float64(7)
	})).Return(app, true, nil).Once()
	f.apps.On("Upsert", mock.Anything, int64(9), int64(100), mock.Anything).Return(app, false, nil).Once()

	rec := f.do(http.MethodPost, "/api/recruiter/jobs/100/applications", "recruiter-token", map[string]int{"user_id": 7})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(http.MethodPost, "/api/recruiter/jobs/100/applications", "recruiter-token", map[string]int{"student_user_id": 7})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateApplication_PartialPatch(t *testing.T) {
	f := newFixture(t, false)
	f.apps.On("Update", mock.Anything, int64(9), int64(100), int64(4), mock.MatchedBy(func(p domain.ApplicationPatch) bool {
		return p.Status != nil && *p.Status == "hired" && p.CurrentStage == nil && p.Notes == nil
	})).Return(&domain.Application{ID: 4, Status: domain.ApplicationStatusHired}, nil)

	rec := f.do(http.MethodPatch, "/api/recruiter/jobs/100/applications/4", "recruiter-token", map[string]string{"status": "hired"})

	assert.Equal(t, http.StatusOK, rec.Code)
	f.apps.AssertExpectations(t)
}

func TestExportApplications(t *testing.T) {
	f := newFixture(t, false)
	f.apps.On("Export", mock.Anything, int64(9), int64(100), "csv").Return(&domain.ApplicationExport{
		Filename:    "job-100-applications.csv",
		ContentType: "text/csv",
		Data:        []byte("a,b\n"),
	}, nil)
	f.apps.On("Export", mock.Anything, int64(9), int64(100), "pdf").Return(nil, apperror.BadRequest("Unsupported export format"))

	rec := f.do(http.MethodGet, "/api/recruiter/jobs/100/applications/export?format=csv", "recruiter-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="job-100-applications.csv"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/csv"))
	assert.Equal(t, "a,b\n", rec.Body.String())

	rec = f.do(http.MethodGet, "/api/recruiter/jobs/100/applications/export?format=pdf", "recruiter-token", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// --- platform ---

func TestHealth(t *testing.T) {
	f := newFixture(t, false)
	f.health.On("Check", mock.Anything).Return(&domain.HealthStatus{Database: "healthy"}, true).Once()
	f.health.On("Check", mock.Anything).Return(&domain.HealthStatus{Database: "unhealthy"}, false).Once()

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/health", "", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, f.do(http.MethodGet, "/api/health", "", nil).Code)
}

func TestNoRoute(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(http.MethodGet, "/api/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"API route not found"}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/app.js", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())

	rec = f.do(http.MethodGet, "/student/dashboard", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "spa")

	rec = f.do(http.MethodGet, "/../../etc/passwd", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "spa")
	assert.NotContains(t, rec.Body.String(), "root:")

	rec = f.do(http.MethodGet, "/assets/../app.js", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())
}
