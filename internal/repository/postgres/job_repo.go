package postgres

import (
	"context"

	"placement-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

// jobColumns expects the job row aliased as j.
const jobColumns = `
	j.job_id, j.recruiter_id, j.company_id, j.title, j.job_function, j.employment_type, j.work_mode,
	j.location, j.description, j.responsibilities, j.qualifications, j.skills, j.experience_level,
	to_char(j.application_deadline, 'YYYY-MM-DD'), j.apply_link, j.salary_ctc::float8, j.stipend_amount::float8,
	j.currency, j.compensation_notes, j.openings, j.status, j.created_at, j.updated_at,
	(SELECT COUNT(*) FROM job_applications a WHERE a.job_id = j.job_id) AS applications_count`

func scanJob(row pgx.Row, j *domain.Job) error {
	err := row.Scan(
		&j.ID, &j.RecruiterID, &j.CompanyID, &j.Title, &j.JobFunction, &j.EmploymentType, &j.WorkMode,
		&j.Location, &j.Description, &j.Responsibilities, &j.Qualifications, &j.Skills, &j.ExperienceLevel,
		&j.ApplicationDeadline, &j.ApplyLink, &j.SalaryCTC, &j.StipendAmount,
		&j.Currency, &j.CompensationNotes, &j.Openings, &j.Status, &j.CreatedAt, &j.UpdatedAt,
		&j.ApplicationsCount,
	)
	if err != nil {
		return err
	}
	if j.Skills == nil {
		j.Skills = []string{}
	}
	j.IsPublic, j.IsActive = j.Status.Visibility()
	return nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		WITH j AS (
			INSERT INTO job_postings (
				recruiter_id, company_id, title, job_function, employment_type, work_mode, location,
				description, responsibilities, qualifications, skills, experience_level,
				application_deadline, apply_link, salary_ctc, stipend_amount, currency,
				compensation_notes, openings, status
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13::date, $14, $15, $16, $17, $18, $19, $20)
			RETURNING *
		)
		SELECT ` + jobColumns + ` FROM j`

	row := r.db.QueryRow(ctx, query,
		job.RecruiterID, job.CompanyID, job.Title, job.JobFunction, job.EmploymentType, job.WorkMode, job.Location,
		job.Description, job.Responsibilities, job.Qualifications, job.Skills, job.ExperienceLevel,
		job.ApplicationDeadline, job.ApplyLink, job.SalaryCTC, job.StipendAmount, job.Currency,
		job.CompensationNotes, job.Openings, job.Status,
	)
	return translateError(scanJob(row, job))
}

// ListByRecruiter returns the recruiter's jobs newest first with live application counts
func (r *jobRepo) ListByRecruiter(ctx context.Context, recruiterID int64) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + `
		FROM job_postings j
		WHERE j.recruiter_id = $1
		ORDER BY j.created_at DESC, j.job_id DESC`

	rows, err := r.db.Query(ctx, query, recruiterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) GetOwned(ctx context.Context, jobID, recruiterID int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + `
		FROM job_postings j
		WHERE j.job_id = $1 AND j.recruiter_id = $2`

	var job domain.Job
	if err := scanJob(r.db.QueryRow(ctx, query, jobID, recruiterID), &job); err != nil {
		return nil, translateError(err)
	}
	return &job, nil
}

// Update overwrites every mutable column; the ownership predicate makes a foreign job look absent.
func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `
		WITH j AS (
			UPDATE job_postings SET
				title = $3, job_function = $4, employment_type = $5, work_mode = $6, location = $7,
				description = $8, responsibilities = $9, qualifications = $10, skills = $11,
				experience_level = $12, application_deadline = $13::date, apply_link = $14,
				salary_ctc = $15, stipend_amount = $16, currency = $17, compensation_notes = $18,
				openings = $19, status = $20, updated_at = NOW()
			WHERE job_id = $1 AND recruiter_id = $2
			RETURNING *
		)
		SELECT ` + jobColumns + ` FROM j`

	row := r.db.QueryRow(ctx, query,
		job.ID, job.RecruiterID,
		job.Title, job.JobFunction, job.EmploymentType, job.WorkMode, job.Location,
		job.Description, job.Responsibilities, job.Qualifications, job.Skills,
		job.ExperienceLevel, job.ApplicationDeadline, job.ApplyLink,
		job.SalaryCTC, job.StipendAmount, job.Currency, job.CompensationNotes,
		job.Openings, job.Status,
	)
	return translateError(scanJob(row, job))
}

func (r *jobRepo) UpdateStatus(ctx context.Context, jobID, recruiterID int64, status domain.JobStatus) (*domain.Job, error) {
	query := `
		WITH j AS (
			UPDATE job_postings SET status = $3, updated_at = NOW()
			WHERE job_id = $1 AND recruiter_id = $2
			RETURNING *
		)
		SELECT ` + jobColumns + ` FROM j`

	var job domain.Job
	if err := scanJob(r.db.QueryRow(ctx, query, jobID, recruiterID, status), &job); err != nil {
		return nil, translateError(err)
	}
	return &job, nil
}
