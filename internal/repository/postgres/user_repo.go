package postgres

import (
	"context"
	"time"

	"placement-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, email, password_hash, role, is_active, created_at, updated_at`

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (email, password_hash, role)
              VALUES ($1, $2, $3)
              RETURNING id, is_active, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, user.Email, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	return translateError(err)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *userRepo) CreatePasswordReset(ctx context.Context, reset *domain.PasswordReset) error {
	query := `INSERT INTO password_resets (user_id, token_hash, expires_at)
              VALUES ($1, $2, $3)
              RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, reset.UserID, reset.TokenHash, reset.ExpiresAt).
		Scan(&reset.ID, &reset.CreatedAt)
	return translateError(err)
}

// RedeemPasswordReset burns the token in the same statement that checks it
// and updates the password in the same transaction, so a token is spent only
// when the new password is stored.
func (r *userRepo) RedeemPasswordReset(ctx context.Context, tokenHash, passwordHash string, now time.Time) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var userID int64
	err = tx.QueryRow(ctx, `
		UPDATE password_resets SET used_at = $2
		WHERE token_hash = $1 AND used_at IS NULL AND expires_at > $2
		RETURNING user_id`, tokenHash, now,
	).Scan(&userID)
	if err != nil {
		return 0, translateError(err)
	}

	tag, err := tx.Exec(ctx, `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`, userID, passwordHash)
	if err != nil {
		return 0, translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return 0, domain.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return userID, nil
}
