package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"locotraq/internal/domain/entities"
	"locotraq/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidPassword = errors.New("invalid password")
)

const minPasswordLength = 8

// IUserUseCase exposes admin account operations.

type IUserUseCase interface {
	List(ctx context.Context) ([]entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	Create(ctx context.Context, draft entities.User, password string) (entities.User, error)
	Update(ctx context.Context, id string, draft entities.User) (entities.User, error)
	SetActive(ctx context.Context, id string, active bool) (entities.User, error)
	SetRole(ctx context.Context, id string, role entities.UserRole) (entities.User, error)
	Delete(ctx context.Context, id string) error
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	return u.repo.List(ctx)
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	usr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if usr.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return usr, nil
}

func (u *UserUseCase) Create(ctx context.Context, draft entities.User, password string) (entities.User, error) {
	draft.Email = strings.ToLower(strings.TrimSpace(draft.Email))
	if err := draft.Validate(); err != nil {
		return entities.User{}, err
	}
	if len(password) < minPasswordLength {
		return entities.User{}, ErrInvalidPassword
	}

	if existing, err := u.repo.GetByEmail(ctx, draft.Email); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.PasswordHash = string(hash)
	draft.Active = true
	draft.CreatedAt = now
	draft.UpdatedAt = now
	return u.repo.Create(ctx, draft)
}

func (u *UserUseCase) Update(ctx context.Context, id string, draft entities.User) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	draft.Email = strings.ToLower(strings.TrimSpace(draft.Email))
	if err := draft.Validate(); err != nil {
		return entities.User{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID == "" {
		return entities.User{}, ErrUserNotFound
	}

	draft.ID = existing.ID
	draft.PasswordHash = existing.PasswordHash
	draft.CreatedAt = existing.CreatedAt
	draft.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, draft)
}

func (u *UserUseCase) SetActive(ctx context.Context, id string, active bool) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	updated, err := u.repo.UpdateActive(ctx, id, active)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *UserUseCase) SetRole(ctx context.Context, id string, role entities.UserRole) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	if role != entities.UserRoleAdmin && role != entities.UserRoleCustomer {
		return entities.User{}, &entities.ValidationError{Field: "role", Message: "must be admin or customer"}
	}

	updated, err := u.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *UserUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidUserID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrUserNotFound
	}
	return u.repo.Delete(ctx, id)
}
