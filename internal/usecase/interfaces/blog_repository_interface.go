package interfaces

import (
	"context"

	"locotraq/internal/domain/entities"
)

// IBlogRepository abstracts DynamoDB persistence for Blog.

type IBlogRepository interface {
	List(ctx context.Context) ([]entities.Blog, error)
	GetByID(ctx context.Context, id string) (entities.Blog, error)
	Create(ctx context.Context, b entities.Blog) (entities.Blog, error)
	Update(ctx context.Context, b entities.Blog) (entities.Blog, error)
	Delete(ctx context.Context, id string) error
}
