package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pizzacraft/backend/internal/redisx"
)

var ErrNoSession = errors.New("no such session")

// Sessions keeps logged-in users in Redis, keyed by an opaque token.
type Sessions struct{ Redis *redis.Client }

func (s *Sessions) Start(ctx context.Context, u User) (string, error) {
	token := uuid.NewString()
	b, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf(redisx.KeySession, token)
	if err := s.Redis.Set(ctx, key, b, redisx.TTLSession).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Sessions) Get(ctx context.Context, token string) (User, error) {
	if token == "" {
		return User{}, ErrNoSession
	}
	key := fmt.Sprintf(redisx.KeySession, token)
	raw, err := s.Redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return User{}, ErrNoSession
	}
	if err != nil {
		return User{}, err
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Sessions) End(ctx context.Context, token string) error {
	key := fmt.Sprintf(redisx.KeySession, token)
	return s.Redis.Del(ctx, key).Err()
}
