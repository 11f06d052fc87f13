package interfaces

import (
	"context"

	"locotraq/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for submitted quote
// requests (sales leads).

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
	List(ctx context.Context) ([]entities.QuoteRequest, error)
}
