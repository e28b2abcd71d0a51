// Package redisstore implements the one-time-code store on top of Redis.
// Codes are keyed by email and expire passively via Redis TTL; there is no
// sweeper process.
package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "otp:"

func otpKey(email string) string { return otpKeyPrefix + email }

type OTPStore struct {
	rdb *redis.Client
}

func NewOTPStore(rdb *redis.Client) *OTPStore {
	return &OTPStore{rdb: rdb}
}

// Put stores the code under the email's key with the given TTL. A single SET
// replaces any previously pending code atomically, so at most one code is
// live per email.
func (s *OTPStore) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	return s.rdb.Set(ctx, otpKey(email), code, ttl).Err()
}

// Get returns the pending code for the email, or ok=false when none exists
// (never issued, consumed, or expired).
func (s *OTPStore) Get(ctx context.Context, email string) (string, bool, error) {
	code, err := s.rdb.Get(ctx, otpKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return code, true, nil
}

// Delete consumes the pending code and reports whether one existed.
func (s *OTPStore) Delete(ctx context.Context, email string) (bool, error) {
	n, err := s.rdb.Del(ctx, otpKey(email)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
