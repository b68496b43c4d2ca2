package postgres

import (
	"context"

	"placement-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const personalColumns = `user_id, first_name, last_name, to_char(dob, 'YYYY-MM-DD'), gender, institute_roll_no,
       personal_email, college_email, phone_number, profile_picture, created_at, updated_at`

func (r *profileRepo) Create(ctx context.Context, p *domain.PersonalDetails) error {
	query := `
		INSERT INTO personal_details (
			user_id, first_name, last_name, dob, gender,
			institute_roll_no, personal_email, college_email, phone_number, profile_picture
		) VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		p.UserID, p.FirstName, p.LastName, p.DOB, p.Gender,
		p.InstituteRollNo, p.PersonalEmail, p.CollegeEmail, p.PhoneNumber, p.ProfilePicture,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return translateError(err)
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.PersonalDetails, error) {
	query := `SELECT ` + personalColumns + ` FROM personal_details WHERE user_id = $1`

	var p domain.PersonalDetails
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.FirstName, &p.LastName, &p.DOB, &p.Gender, &p.InstituteRollNo,
		&p.PersonalEmail, &p.CollegeEmail, &p.PhoneNumber, &p.ProfilePicture, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *profileRepo) UpdatePicture(ctx context.Context, userID int64, dataURL string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE personal_details SET profile_picture = $2, updated_at = NOW() WHERE user_id = $1`,
		userID, dataURL)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search matches first name, last name or roll number case-insensitively. An empty term lists everyone.
func (r *profileRepo) Search(ctx context.Context, term string) ([]domain.StudentSummary, error) {
	query := `
		SELECT user_id, first_name, last_name, institute_roll_no, personal_email, phone_number, gender
		FROM personal_details
		WHERE $1 = ''
		   OR first_name ILIKE '%' || $1 || '%'
		   OR last_name ILIKE '%' || $1 || '%'
		   OR institute_roll_no ILIKE '%' || $1 || '%'
		ORDER BY first_name ASC, last_name ASC`

	rows, err := r.db.Query(ctx, query, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []domain.StudentSummary{}
	for rows.Next() {
		var s domain.StudentSummary
		if err := rows.Scan(&s.UserID, &s.FirstName, &s.LastName, &s.InstituteRollNo,
			&s.PersonalEmail, &s.PhoneNumber, &s.Gender); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
