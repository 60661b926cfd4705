package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	tokenKeyPrefix = "session:token:"
	userKeyPrefix  = "session:user:"
)

// Store keeps session tokens in Redis. Each token maps to a user id, and
// each user has a set of live tokens so all of them can be revoked at once.
type Store struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewStore(rdb redis.UniversalClient, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func tokenKey(token string) string { return tokenKeyPrefix + token }

func userKey(userID uint64) string { return userKeyPrefix + strconv.FormatUint(userID, 10) }

func (s *Store) Create(ctx context.Context, userID uint64) (string, error) {
	token := uuid.NewString()
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, tokenKey(token), userID, s.ttl)
		pipe.SAdd(ctx, userKey(userID), token)
		pipe.Expire(ctx, userKey(userID), s.ttl)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

// Lookup returns the user id bound to token, or false when the token is
// unknown or expired.
func (s *Store) Lookup(ctx context.Context, token string) (uint64, bool, error) {
	val, err := s.rdb.Get(ctx, tokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup session: %w", err)
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt session value %q: %w", val, err)
	}
	return id, true, nil
}

func (s *Store) Revoke(ctx context.Context, token string) error {
	id, ok, err := s.Lookup(ctx, token)
	if err != nil || !ok {
		return err
	}
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, tokenKey(token))
		pipe.SRem(ctx, userKey(id), token)
		return nil
	})
	return err
}

// RevokeUser drops every session of userID.
func (s *Store) RevokeUser(ctx context.Context, userID uint64) error {
	tokens, err := s.rdb.SMembers(ctx, userKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}

	keys := make([]string, 0, len(tokens)+1)
	for _, t := range tokens {
		keys = append(keys, tokenKey(t))
	}
	keys = append(keys, userKey(userID))

	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	return nil
}
