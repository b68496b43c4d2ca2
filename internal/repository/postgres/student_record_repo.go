package postgres

import (
	"context"

	"placement-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// studentRecordRepo stores the seven per-student collections. Inserts are single
// statements; the user_id foreign key to personal_details is the profile gate.
type studentRecordRepo struct {
	db *pgxpool.Pool
}

func NewStudentRecordRepository(db *pgxpool.Pool) domain.StudentRecordRepository {
	return &studentRecordRepo{db: db}
}

func (r *studentRecordRepo) CreateInternship(ctx context.Context, rec *domain.Internship) error {
	query := `
		INSERT INTO internships (
			user_id, company_name, job_title, location, company_sector, start_date, end_date, stipend_salary
		) VALUES ($1, $2, $3, $4, $5, $6::date, $7::date, $8)
		RETURNING internship_id, created_at`
	err := r.db.QueryRow(ctx, query,
		rec.UserID, rec.CompanyName, rec.JobTitle, rec.Location, rec.CompanySector,
		rec.StartDate, rec.EndDate, rec.StipendSalary,
	).Scan(&rec.ID, &rec.CreatedAt)
	return translateError(err)
}

func (r *studentRecordRepo) CreateVolunteering(ctx context.Context, rec *domain.Volunteering) error {
	query := `
		INSERT INTO volunteering (user_id, location, company_sector, task, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5::date, $6::date)
		RETURNING volunteering_id, created_at`
	err := r.db.QueryRow(ctx, query,
		rec.UserID, rec.Location, rec.CompanySector, rec.Task, rec.StartDate, rec.EndDate,
	).Scan(&rec.ID, &rec.CreatedAt)
	return translateError(err)
}

func (r *studentRecordRepo) CreateSkill(ctx context.Context, rec *domain.Skill) error {
	query := `
		INSERT INTO skills (user_id, skill_name, skill_proficiency)
		VALUES ($1, $2, $3)
		RETURNING skill_id, created_at`
	err := r.db.QueryRow(ctx, query, rec.UserID, rec.SkillName, rec.SkillProficiency).
		Scan(&rec.ID, &rec.CreatedAt)
	return translateError(err)
}

func (r *studentRecordRepo) CreateProject(ctx context.Context, rec *domain.Project) error {
	query := `
		INSERT INTO projects (user_id, project_title, description, tech_stack, project_link, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING project_id, created_at`
	err := r.db.QueryRow(ctx, query,
		rec.UserID, rec.ProjectTitle, rec.Description, rec.TechStack, rec.ProjectLink, rec.Role,
	).Scan(&rec.ID, &rec.CreatedAt)
	return translateError(err)
}

func (r *studentRecordRepo) CreateAccomplishment(ctx context.Context, rec *domain.Accomplishment) error {
	query := `
		INSERT INTO accomplishments (user_id, title, institution, type, description, accomplishment_date, rank)
		VALUES ($1, $2, $3, $4, $5, $6::date, $7)
		RETURNING accomplishment_id, created_at`
	err := r.db.QueryRow(ctx, query,
		rec.UserID, rec.Title, rec.Institution, rec.Type, rec.Description, rec.AccomplishmentDate, rec.Rank,
	).Scan(&rec.ID, &rec.CreatedAt)
	return translateError(err)
}

func (r *studentRecordRepo) CreateExtraCurricular(ctx context.Context, rec *domain.ExtraCurricular) error {
	query := `
		INSERT INTO extra_curricular (user_id, activity_name, role, organization, duration)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING extra_curricular_id, created_at`
	err := r.db.QueryRow(ctx, query,
		rec.UserID, rec.ActivityName, rec.Role, rec.Organization, rec.Duration,
	).Scan(&rec.ID, &rec.CreatedAt)
	return translateError(err)
}

func (r *studentRecordRepo) CreateCompetition(ctx context.Context, rec *domain.Competition) error {
	if rec.Skills == nil {
		rec.Skills = []string{}
	}
	query := `
		INSERT INTO competition_events (user_id, event_name, event_date, role, achievement, skills)
		VALUES ($1, $2, $3::date, $4, $5, $6)
		RETURNING event_id, created_at`
	err := r.db.QueryRow(ctx, query,
		rec.UserID, rec.EventName, rec.EventDate, rec.Role, rec.Achievement, rec.Skills,
	).Scan(&rec.ID, &rec.CreatedAt)
	return translateError(err)
}

func (r *studentRecordRepo) ListInternships(ctx context.Context, userID int64) ([]domain.Internship, error) {
	query := `
		SELECT internship_id, user_id, company_name, job_title, location, company_sector,
		       to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), stipend_salary::float8, created_at
		FROM internships WHERE user_id = $1
		ORDER BY start_date DESC`
	return collect(ctx, r.db, query, userID, func(row pgx.Rows, rec *domain.Internship) error {
		return row.Scan(&rec.ID, &rec.UserID, &rec.CompanyName, &rec.JobTitle, &rec.Location, &rec.CompanySector,
			&rec.StartDate, &rec.EndDate, &rec.StipendSalary, &rec.CreatedAt)
	})
}

func (r *studentRecordRepo) ListVolunteering(ctx context.Context, userID int64) ([]domain.Volunteering, error) {
	query := `
		SELECT volunteering_id, user_id, location, company_sector, task,
		       to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), created_at
		FROM volunteering WHERE user_id = $1
		ORDER BY start_date DESC`
	return collect(ctx, r.db, query, userID, func(row pgx.Rows, rec *domain.Volunteering) error {
		return row.Scan(&rec.ID, &rec.UserID, &rec.Location, &rec.CompanySector, &rec.Task,
			&rec.StartDate, &rec.EndDate, &rec.CreatedAt)
	})
}

func (r *studentRecordRepo) ListSkills(ctx context.Context, userID int64) ([]domain.Skill, error) {
	query := `
		SELECT skill_id, user_id, skill_name, skill_proficiency, created_at
		FROM skills WHERE user_id = $1
		ORDER BY created_at DESC`
	return collect(ctx, r.db, query, userID, func(row pgx.Rows, rec *domain.Skill) error {
		return row.Scan(&rec.ID, &rec.UserID, &rec.SkillName, &rec.SkillProficiency, &rec.CreatedAt)
	})
}

func (r *studentRecordRepo) ListProjects(ctx context.Context, userID int64) ([]domain.Project, error) {
	query := `
		SELECT project_id, user_id, project_title, description, tech_stack, project_link, role, created_at
		FROM projects WHERE user_id = $1
		ORDER BY created_at DESC`
	return collect(ctx, r.db, query, userID, func(row pgx.Rows, rec *domain.Project) error {
		return row.Scan(&rec.ID, &rec.UserID, &rec.ProjectTitle, &rec.Description, &rec.TechStack,
			&rec.ProjectLink, &rec.Role, &rec.CreatedAt)
	})
}

func (r *studentRecordRepo) ListAccomplishments(ctx context.Context, userID int64) ([]domain.Accomplishment, error) {
	query := `
		SELECT accomplishment_id, user_id, title, institution, type, description,
		       to_char(accomplishment_date, 'YYYY-MM-DD'), rank, created_at
		FROM accomplishments WHERE user_id = $1
		ORDER BY accomplishment_date DESC NULLS LAST`
	return collect(ctx, r.db, query, userID, func(row pgx.Rows, rec *domain.Accomplishment) error {
		return row.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.Institution, &rec.Type, &rec.Description,
			&rec.AccomplishmentDate, &rec.Rank, &rec.CreatedAt)
	})
}

func (r *studentRecordRepo) ListExtraCurricular(ctx context.Context, userID int64) ([]domain.ExtraCurricular, error) {
	query := `
		SELECT extra_curricular_id, user_id, activity_name, role, organization, duration, created_at
		FROM extra_curricular WHERE user_id = $1
		ORDER BY created_at DESC`
	return collect(ctx, r.db, query, userID, func(row pgx.Rows, rec *domain.ExtraCurricular) error {
		return row.Scan(&rec.ID, &rec.UserID, &rec.ActivityName, &rec.Role, &rec.Organization,
			&rec.Duration, &rec.CreatedAt)
	})
}

func (r *studentRecordRepo) ListCompetitions(ctx context.Context, userID int64) ([]domain.Competition, error) {
	query := `
		SELECT event_id, user_id, event_name, to_char(event_date, 'YYYY-MM-DD'), role, achievement, skills, created_at
		FROM competition_events WHERE user_id = $1
		ORDER BY event_date DESC`
	return collect(ctx, r.db, query, userID, func(row pgx.Rows, rec *domain.Competition) error {
		return row.Scan(&rec.ID, &rec.UserID, &rec.EventName, &rec.EventDate, &rec.Role,
			&rec.Achievement, &rec.Skills, &rec.CreatedAt)
	})
}

// collect runs a per-user list query and scans every row with scan.
func collect[T any](ctx context.Context, db *pgxpool.Pool, query string, userID int64, scan func(pgx.Rows, *T) error) ([]T, error) {
	rows, err := db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var rec T
		if err := scan(rows, &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
