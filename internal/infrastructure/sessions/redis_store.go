package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"locotraq/internal/domain/entities"
	"locotraq/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "locotraq:session:"

// RedisSessionStore keeps admin sessions in Redis, one key per bearer token,
// expiring via TTL. A missing key resolves to the zero Session, which the
// auth use case maps to 401.
type RedisSessionStore struct {
	client *redis.Client
	log    *zap.Logger
}

var _ interfaces.ISessionStore = (*RedisSessionStore)(nil)

// ConnectRedis creates a Redis client from REDIS_URL (default:
// redis://localhost:6379/0) and verifies the connection.
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func NewRedisSessionStore(client *redis.Client, log *zap.Logger) *RedisSessionStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisSessionStore{client: client, log: log}
}

func (s *RedisSessionStore) Save(ctx context.Context, sess entities.Session, ttl time.Duration) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+sess.Token, b, ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (entities.Session, error) {
	b, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Session{}, nil
	}
	if err != nil {
		return entities.Session{}, err
	}

	var sess entities.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		s.log.Warn("corrupt session payload", zap.Error(err))
		return entities.Session{}, nil
	}
	return sess, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}
