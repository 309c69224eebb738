package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const resetTokenTTL = 30 * time.Minute

// PasswordResetService keeps one-shot reset tokens in Redis. Token delivery
// (email) belongs to an external collaborator.
type PasswordResetService struct {
	rdb *redis.Client
}

func NewPasswordResetService(rdb *redis.Client) *PasswordResetService {
	return &PasswordResetService{rdb: rdb}
}

func resetKey(token string) string {
	return "password_reset:" + token
}

// Store associates token with userID for 30 minutes.
func (s *PasswordResetService) Store(ctx context.Context, token string, userID uint64) error {
	return s.rdb.Set(ctx, resetKey(token), strconv.FormatUint(userID, 10), resetTokenTTL).Err()
}

// Consume resolves and invalidates a token. An unknown or expired token
// yields InvalidArgument.
func (s *PasswordResetService) Consume(ctx context.Context, token string) (uint64, error) {
	val, err := s.rdb.Get(ctx, resetKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, InvalidArgument("invalid or expired reset token")
	}
	if err != nil {
		return 0, err
	}
	if err := s.rdb.Del(ctx, resetKey(token)).Err(); err != nil {
		return 0, err
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, InvalidArgument("invalid or expired reset token")
	}
	return userID, nil
}
