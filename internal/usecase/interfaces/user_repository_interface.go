package interfaces

import (
	"context"

	"locotraq/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// Active/role toggles are partial writes and return the full post-update
// user.

type IUserRepository interface {
	List(ctx context.Context) ([]entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	Create(ctx context.Context, u entities.User) (entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
	UpdateActive(ctx context.Context, id string, active bool) (entities.User, error)
	UpdateRole(ctx context.Context, id string, role entities.UserRole) (entities.User, error)
	Delete(ctx context.Context, id string) error
}
