package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/careerfolio/backend/internal/models"
	pgrepo "github.com/careerfolio/backend/internal/repositories/postgres"
	"github.com/careerfolio/backend/internal/sessionstore"
	"github.com/careerfolio/backend/internal/utils"

	"github.com/rs/xid"
	"gorm.io/gorm"
)

const (
	minPasswordLen = 6
	minFullNameLen = 2
)

type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
	ValidateToken(ctx context.Context, token string) (string, error)
}

type authService struct {
	users    pgrepo.UserRepository
	profiles pgrepo.ProfileRepository
	sessions sessionstore.Store
}

func NewAuthService(users pgrepo.UserRepository, profiles pgrepo.ProfileRepository, sessions sessionstore.Store) AuthService {
	return &authService{users: users, profiles: profiles, sessions: sessions}
}

// Register creates the credential record and an empty profile placeholder.
// The two writes form a saga: if the placeholder write fails, the freshly
// created user is deleted so no orphaned credential survives.
func (s *authService) Register(ctx context.Context, email, password, fullName string) (*models.User, error) {
	const op = "AuthService.Register"

	email = strings.ToLower(strings.TrimSpace(email))
	fullName = strings.TrimSpace(fullName)

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid email address", nil)
	}
	if len(password) < minPasswordLen {
		return nil, utils.E(utils.CodeInvalidArgument, op, "password must be at least 6 characters", nil)
	}
	if len(fullName) < minFullNameLen {
		return nil, utils.E(utils.CodeInvalidArgument, op, "full name must be at least 2 characters", nil)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, utils.E(utils.CodeConflict, op, "email already registered", nil)
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to check email", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	user := &models.User{
		ID:           xid.New().String(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent registration can still win the unique index race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.E(utils.CodeConflict, op, "email already registered", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}

	first, last := splitFullName(fullName)
	placeholder := &models.Profile{
		UserID:    user.ID,
		FirstName: first,
		LastName:  last,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.profiles.Upsert(ctx, placeholder); err != nil {
		// Compensating delete, best effort. A crash right here can still
		// orphan the credential; the placeholder is recreated lazily on the
		// first profile write.
		_ = s.users.Delete(ctx, user.ID)
		return nil, utils.E(utils.CodeInternal, op, "failed to create profile", err)
	}

	return user, nil
}

// Login verifies the credential and issues an opaque session token. A
// missing email and a wrong password collapse into the same answer so the
// endpoint cannot be used to enumerate accounts.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	const op = "AuthService.Login"

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeUnauthorized, op, "invalid email or password", nil)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}
	if err := utils.CheckPassword(user.PasswordHash, password); err != nil {
		return "", utils.E(utils.CodeUnauthorized, op, "invalid email or password", nil)
	}

	token, err := utils.NewSessionToken()
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to generate token", err)
	}
	if err := s.sessions.Save(ctx, token, user.ID, sessionstore.TTL); err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "session service unavailable", err)
	}
	return token, nil
}

// Logout revokes the session. Revoking an unknown token is a no-op.
func (s *authService) Logout(ctx context.Context, token string) error {
	const op = "AuthService.Logout"

	if token == "" {
		return utils.E(utils.CodeInvalidArgument, op, "token is required", nil)
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return utils.E(utils.CodeUnavailable, op, "session service unavailable", err)
	}
	return nil
}

// ValidateToken resolves a token to its user id. Expired and never-issued
// tokens give the same answer; a store transport failure is reported as
// unavailability, never as an authentication failure.
func (s *authService) ValidateToken(ctx context.Context, token string) (string, error) {
	const op = "AuthService.ValidateToken"

	if token == "" {
		return "", utils.E(utils.CodeUnauthorized, op, "invalid or expired token", nil)
	}
	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, sessionstore.ErrNotFound) {
			return "", utils.E(utils.CodeUnauthorized, op, "invalid or expired token", nil)
		}
		return "", utils.E(utils.CodeUnavailable, op, "session service unavailable", err)
	}
	return userID, nil
}

// splitFullName seeds the profile placeholder: first space-separated word
// becomes the first name, the remainder the last name.
func splitFullName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
