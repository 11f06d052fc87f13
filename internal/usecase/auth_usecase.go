package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"locotraq/internal/domain/entities"
	"locotraq/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user inactive")
	ErrSessionNotFound    = errors.New("session not found")
)

const sessionTTL = 24 * time.Hour

// IAuthUseCase exposes the credentials login flow backing the admin API.
//
// Sessions are bearer tokens stored in Redis with a TTL; middleware resolves
// them on every admin request and rejects missing or expired tokens with 401.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (entities.Session, error)
	Resolve(ctx context.Context, token string) (entities.Session, error)
	Logout(ctx context.Context, token string) error
}

type AuthUseCase struct {
	users    interfaces.IUserRepository
	sessions interfaces.ISessionStore
	log      *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, sessions interfaces.ISessionStore, log *zap.Logger) *AuthUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthUseCase{users: users, sessions: sessions, log: log}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return entities.Session{}, ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.Session{}, err
	}
	if usr.ID == "" {
		return entities.Session{}, ErrInvalidCredentials
	}
	if !usr.Active {
		return entities.Session{}, ErrUserInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return entities.Session{}, ErrInvalidCredentials
	}

	s := entities.Session{
		Token:     uuid.NewString(),
		UserID:    usr.ID,
		Email:     usr.Email,
		Role:      usr.Role,
		ExpiresAt: time.Now().UTC().Add(sessionTTL),
	}
	if err := u.sessions.Save(ctx, s, sessionTTL); err != nil {
		return entities.Session{}, err
	}

	u.log.Info("admin session created", zap.String("user_id", usr.ID), zap.String("role", string(usr.Role)))
	return s, nil
}

func (u *AuthUseCase) Resolve(ctx context.Context, token string) (entities.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Session{}, ErrSessionNotFound
	}

	s, err := u.sessions.Get(ctx, token)
	if err != nil {
		return entities.Session{}, err
	}
	if s.Token == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return u.sessions.Delete(ctx, token)
}
