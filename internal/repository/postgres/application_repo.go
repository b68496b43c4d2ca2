package postgres

import (
	"context"

	"placement-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// applicationColumns expects job_applications aliased as a and personal_details as p.
const applicationColumns = `
	a.application_id, a.job_id, a.student_user_id, a.status, a.current_stage,
	a.cover_letter, a.portfolio_url, a.notes, a.applied_at, a.updated_at,
	p.first_name, p.last_name, p.personal_email, p.phone_number, p.institute_roll_no`

func scanApplication(row pgx.Row, app *domain.Application, extra ...interface{}) error {
	var s domain.Applicant
	dest := []interface{}{
		&app.ID, &app.JobID, &app.StudentUserID, &app.Status, &app.CurrentStage,
		&app.CoverLetter, &app.PortfolioURL, &app.Notes, &app.AppliedAt, &app.UpdatedAt,
		&s.FirstName, &s.LastName, &s.PersonalEmail, &s.PhoneNumber, &s.InstituteRollNo,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return err
	}
	app.Student = &s
	return nil
}

// ListByJob returns a job's applications newest first, joined with applicant details
func (r *applicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM job_applications a
		LEFT JOIN personal_details p ON p.user_id = a.student_user_id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC, a.application_id DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		var app domain.Application
		if err := scanApplication(rows, &app); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// Upsert keys on (job_id, student_user_id); the second write for a pair overwrites the first.
func (r *applicationRepo) Upsert(ctx context.Context, app *domain.Application) (bool, error) {
	query := `
		WITH a AS (
			INSERT INTO job_applications (
				job_id, student_user_id, status, current_stage, cover_letter, portfolio_url, notes
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT ON CONSTRAINT job_applications_job_student_key DO UPDATE SET
				status = EXCLUDED.status,
				current_stage = EXCLUDED.current_stage,
				cover_letter = EXCLUDED.cover_letter,
				portfolio_url = EXCLUDED.portfolio_url,
				notes = EXCLUDED.notes,
				updated_at = NOW()
			RETURNING *, (xmax = 0) AS inserted
		)
		SELECT ` + applicationColumns + `, a.inserted
		FROM a
		LEFT JOIN personal_details p ON p.user_id = a.student_user_id`

	var inserted bool
	row := r.db.QueryRow(ctx, query,
		app.JobID, app.StudentUserID, app.Status, app.CurrentStage,
		app.CoverLetter, app.PortfolioURL, app.Notes,
	)
	if err := scanApplication(row, app, &inserted); err != nil {
		return false, translateError(err)
	}
	return inserted, nil
}

func (r *applicationRepo) GetByID(ctx context.Context, jobID, applicationID int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM job_applications a
		LEFT JOIN personal_details p ON p.user_id = a.student_user_id
		WHERE a.application_id = $1 AND a.job_id = $2`

	var app domain.Application
	if err := scanApplication(r.db.QueryRow(ctx, query, applicationID, jobID), &app); err != nil {
		return nil, translateError(err)
	}
	return &app, nil
}

// Update applies a partial update; NULL parameters keep the stored value and
// ClearNotes wipes notes.
func (r *applicationRepo) Update(ctx context.Context, jobID, applicationID int64, upd domain.ApplicationUpdate) (*domain.Application, error) {
	var status *string
	if upd.Status != nil {
		s := string(*upd.Status)
		status = &s
	}

	query := `
		WITH a AS (
			UPDATE job_applications SET
				current_stage = COALESCE($3, current_stage),
				status = COALESCE($4, status),
				notes = CASE WHEN $7::boolean THEN NULL ELSE COALESCE($5, notes) END,
				updated_at = $6
			WHERE application_id = $1 AND job_id = $2
			RETURNING *
		)
		SELECT ` + applicationColumns + `
		FROM a
		LEFT JOIN personal_details p ON p.user_id = a.student_user_id`

	var app domain.Application
	row := r.db.QueryRow(ctx, query, applicationID, jobID, upd.CurrentStage, status, upd.Notes, upd.UpdatedAt, upd.ClearNotes)
	if err := scanApplication(row, &app); err != nil {
		return nil, translateError(err)
	}
	return &app, nil
}
