package codes

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/uoftclubs/clubs-backend/internal/domain/common/errorz"
)

type Storage struct {
	redis *redis.Client
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

// Get returns the pending login code for the email. A missing key means
// the code expired or was never issued.
func (s *Storage) Get(ctx context.Context, email string) (string, error) {
	code, err := s.redis.Get(ctx, email).Result()
	if errors.Is(err, redis.Nil) {
		return "", errorz.ErrCodeExpired
	}
	return code, err
}

func (s *Storage) Set(ctx context.Context, email, code string, expiration time.Duration) error {
	return s.redis.Set(ctx, email, code, expiration).Err()
}

func (s *Storage) Clear(ctx context.Context, email string) error {
	return s.redis.Del(ctx, email).Err()
}
