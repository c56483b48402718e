package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/uoftclubs/clubs-backend/internal/adapters/database/redis/codes"
)

type Client struct {
	Codes *codes.Storage
}

type Options struct {
	Host     string
	Port     string
	Password string
}

func New(opts Options) (*Client, error) {
	codeStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       0,
	})
	if err := codeStorage.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping codes storage: %w", err)
	}

	return &Client{
		Codes: codes.NewStorage(codeStorage),
	}, nil
}
