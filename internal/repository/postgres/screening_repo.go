package postgres

import (
	"context"

	"placement-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type screeningRepo struct {
	db *pgxpool.Pool
}

func NewScreeningRepository(db *pgxpool.Pool) domain.ScreeningRepository {
	return &screeningRepo{db: db}
}

// ListByApplication returns the screening log newest first. There is no update or delete.
func (r *screeningRepo) ListByApplication(ctx context.Context, applicationID int64) ([]domain.Screening, error) {
	query := `
		SELECT screening_id, application_id, stage_name, outcome, scheduled_at, notes, recorded_by, created_at
		FROM application_screenings
		WHERE application_id = $1
		ORDER BY created_at DESC, screening_id DESC`

	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	screenings := []domain.Screening{}
	for rows.Next() {
		var s domain.Screening
		if err := rows.Scan(&s.ID, &s.ApplicationID, &s.StageName, &s.Outcome, &s.ScheduledAt,
			&s.Notes, &s.RecordedBy, &s.CreatedAt); err != nil {
			return nil, err
		}
		screenings = append(screenings, s)
	}
	return screenings, rows.Err()
}

func (r *screeningRepo) Create(ctx context.Context, s *domain.Screening) error {
	query := `
		INSERT INTO application_screenings (application_id, stage_name, outcome, scheduled_at, notes, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING screening_id, created_at`
	err := r.db.QueryRow(ctx, query,
		s.ApplicationID, s.StageName, s.Outcome, s.ScheduledAt, s.Notes, s.RecordedBy,
	).Scan(&s.ID, &s.CreatedAt)
	return translateError(err)
}
