package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"

	"placement-portal-backend/internal/domain"
	"placement-portal-backend/pkg/apperror"
	"placement-portal-backend/pkg/auth"
	"placement-portal-backend/pkg/logger"
	"placement-portal-backend/pkg/security"

	"github.com/google/uuid"
)

type AuthConfig struct {
	BcryptCost int
	ResetTTL   time.Duration
}

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   domain.TokenIssuer
	guard    domain.LoginGuard
	events   domain.EventPublisher
	secLog   *security.SecurityLogger
	cfg      AuthConfig
	now      func() time.Time
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	tokens domain.TokenIssuer,
	guard domain.LoginGuard,
	events domain.EventPublisher,
	secLog *security.SecurityLogger,
	cfg AuthConfig,
) domain.AuthUsecase {
	if cfg.ResetTTL <= 0 {
		cfg.ResetTTL = 30 * time.Minute
	}
	if secLog == nil {
		secLog = security.NewNopSecurityLogger()
	}
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		guard:    guard,
		events:   events,
		secLog:   secLog,
		cfg:      cfg,
		now:      time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *authUsecase) Signup(ctx context.Context, in domain.SignupInput) (*domain.AuthResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, apperror.MissingFields("Email and password are required", "email", "password")
	}

	hash, err := auth.HashPassword(in.Password, u.cfg.BcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         domain.SignupRole(in.Role),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("User already exists")
		}
		return nil, storeError(err)
	}

	u.secLog.Log(ctx, security.SecurityEvent{
		Event:        security.EventSignup,
		SubjectType:  "email",
		SubjectValue: email,
		Details:      map[string]interface{}{"role": string(user.Role)},
	})

	return u.issue(user, in.Remember)
}

func (u *authUsecase) Login(ctx context.Context, in domain.LoginInput) (*domain.AuthResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, apperror.MissingFields("Email and password are required", "email", "password")
	}

	blocked, err := u.guard.IsBlocked(ctx, email, in.ClientIP)
	if err != nil {
		logger.Log.Warn("login guard unavailable", "error", err)
	}
	if blocked {
		u.secLog.LogLoginBlocked(ctx, email, in.ClientIP, in.UserAgent, in.RequestID)
		return nil, apperror.TooManyRequests("Too many failed login attempts. Please try again later.")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found. Please sign up.")
		}
		return nil, storeError(err)
	}
	if !user.IsActive {
		return nil, apperror.Forbidden("Account is deactivated")
	}

	if !auth.VerifyPassword(user.PasswordHash, in.Password) {
		nowBlocked, _, err := u.guard.RecordFailedAttempt(ctx, email, in.ClientIP, in.UserAgent, in.RequestID)
		if err != nil {
			logger.Log.Warn("failed to record login attempt", "error", err)
		}
		if nowBlocked {
			return nil, apperror.TooManyRequests("Too many failed login attempts. Please try again later.")
		}
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	if err := u.guard.ClearAttempts(ctx, email, in.ClientIP); err != nil {
		logger.Log.Warn("failed to clear login attempts", "error", err)
	}
	u.secLog.Log(ctx, security.SecurityEvent{
		Event:        security.EventLoginSuccess,
		SubjectType:  "email",
		SubjectValue: email,
		IP:           in.ClientIP,
		UserAgent:    in.UserAgent,
		RequestID:    in.RequestID,
	})

	return u.issue(user, in.Remember)
}

func (u *authUsecase) issue(user *domain.User, remember bool) (*domain.AuthResult, error) {
	token, expiresAt, err := u.tokens.Issue(domain.Identity{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}, domain.TokenTTL(remember))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (u *authUsecase) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, apperror.Unauthorized("Access token required")
	}

	identity, err := u.tokens.Parse(token)
	if err != nil {
		return nil, apperror.Forbidden("Invalid or expired token")
	}

	// Older tokens carry no role; look it up once.
	if identity.Role == "" {
		user, err := u.userRepo.GetByID(ctx, identity.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.Forbidden("Invalid or expired token")
			}
			return nil, storeError(err)
		}
		identity.Role = user.Role
		if identity.Email == "" {
			identity.Email = user.Email
		}
	}
	return identity, nil
}

// ForgotPassword never reveals whether the account exists.
func (u *authUsecase) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return apperror.MissingFields("Email is required", "email")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return storeError(err)
	}

	token := uuid.NewString()
	reset := &domain.PasswordReset{
		UserID:    user.ID,
		TokenHash: hashResetToken(token),
		ExpiresAt: u.now().Add(u.cfg.ResetTTL),
	}
	if err := u.userRepo.CreatePasswordReset(ctx, reset); err != nil {
		return storeError(err)
	}

	u.secLog.Log(ctx, security.SecurityEvent{
		Event:        security.EventPasswordResetAsked,
		SubjectType:  "email",
		SubjectValue: email,
	})

	payload := map[string]interface{}{
		"user_id":    user.ID,
		"email":      user.Email,
		"token":      token,
		"expires_at": reset.ExpiresAt,
	}
	if err := u.events.Publish(ctx, domain.EventPasswordResetRequested, payload); err != nil {
		logger.Log.Error("failed to publish password reset event", "user_id", user.ID, "error", err)
	}
	return nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, token, password string) error {
	token = strings.TrimSpace(token)
	missing := []string{}
	if token == "" {
		missing = append(missing, "token")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return apperror.MissingFields("Token and password are required", missing...)
	}

	hash, err := auth.HashPassword(password, u.cfg.BcryptCost)
	if err != nil {
		return apperror.Internal(err)
	}

	userID, err := u.userRepo.RedeemPasswordReset(ctx, hashResetToken(token), hash, u.now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.BadRequest("Invalid or expired reset token")
		}
		return storeError(err)
	}

	u.secLog.Log(ctx, security.SecurityEvent{
		Event:        security.EventPasswordReset,
		SubjectType:  "user_id",
		SubjectValue: strconv.FormatInt(userID, 10),
	})
	return nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
