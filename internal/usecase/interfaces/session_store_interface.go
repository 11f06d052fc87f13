package interfaces

import (
	"context"
	"time"

	"locotraq/internal/domain/entities"
)

// ISessionStore abstracts the Redis-backed session index keyed by bearer
// token.

type ISessionStore interface {
	Save(ctx context.Context, s entities.Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (entities.Session, error)
	Delete(ctx context.Context, token string) error
}
