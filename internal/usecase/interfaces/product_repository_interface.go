package interfaces

import (
	"context"

	"locotraq/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.

type IProductRepository interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}
