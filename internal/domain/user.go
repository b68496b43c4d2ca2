package domain

import (
	"context"
	"strings"
	"time"
)

type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// CanRecruit reports whether the role passes the recruiter gate.
func (r Role) CanRecruit() bool {
	return r == RoleRecruiter || r == RoleAdmin
}

// SignupRole maps a requested role onto the self-assignable whitelist.
// Anything other than "recruiter" becomes a student account.
func SignupRole(requested string) Role {
	if Role(strings.ToLower(strings.TrimSpace(requested))) == RoleRecruiter {
		return RoleRecruiter
	}
	return RoleStudent
}

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the claim set carried by an auth token.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type PasswordReset struct {
	ID        int64
	UserID    int64
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

type SignupInput struct {
	Email    string
	Password string
	Role     string
	Remember bool
}

type LoginInput struct {
	Email     string
	Password  string
	Remember  bool
	ClientIP  string
	UserAgent string
	RequestID string
}

// AuthResult is returned by signup and login.
type AuthResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	CreatePasswordReset(ctx context.Context, reset *PasswordReset) error
	// RedeemPasswordReset marks an unexpired, unused reset token as used and
	// stores the new password hash atomically, returning the user id.
	RedeemPasswordReset(ctx context.Context, tokenHash, passwordHash string, now time.Time) (int64, error)
}

// TokenIssuer signs and verifies identity tokens.
type TokenIssuer interface {
	Issue(identity Identity, ttl time.Duration) (string, time.Time, error)
	Parse(token string) (*Identity, error)
}

// LoginGuard tracks failed logins and blocks brute-force attempts.
type LoginGuard interface {
	IsBlocked(ctx context.Context, email, ip string) (bool, error)
	RecordFailedAttempt(ctx context.Context, email, ip, userAgent, requestID string) (bool, int, error)
	ClearAttempts(ctx context.Context, email, ip string) error
}

type AuthUsecase interface {
	Signup(ctx context.Context, in SignupInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	// Verify decodes a token and fills in the role from the store when the token carries none.
	Verify(ctx context.Context, token string) (*Identity, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}

const (
	SessionTTL         = time.Hour
	RememberSessionTTL = 30 * 24 * time.Hour
)

// TokenTTL returns how long a freshly issued token stays valid.
func TokenTTL(remember bool) time.Duration {
	if remember {
		return RememberSessionTTL
	}
	return SessionTTL
}
