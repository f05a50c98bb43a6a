package form

import (
	"context"
	"encoding/json"
	"fmt"

	"leadform/models"
	"leadform/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists form sessions between requests and hands out the
// per-session submit lock.
type SessionStore interface {
	Save(ctx context.Context, sess *models.FormSession) error
	Get(ctx context.Context, sessionID string) (*models.FormSession, error)
	Delete(ctx context.Context, sessionID string) error
	// AcquireSubmitLock returns false when a submission is already in flight.
	AcquireSubmitLock(ctx context.Context, sessionID string) (bool, error)
	ReleaseSubmitLock(ctx context.Context, sessionID string) error
}

type redisSessionStore struct {
	sessions *redis.Client
	locks    *redis.Client
}

// NewRedisSessionStore returns a SessionStore backed by the given Redis
// clients, one for session blobs and one for submit locks.
func NewRedisSessionStore(sessions, locks *redis.Client) SessionStore {
	return &redisSessionStore{sessions: sessions, locks: locks}
}

func (s *redisSessionStore) Save(ctx context.Context, sess *models.FormSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal form session: %w", err)
	}
	key := utils.SessionCachePrefix + sess.SessionID
	if err := s.sessions.Set(ctx, key, data, utils.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store form session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (*models.FormSession, error) {
	key := utils.SessionCachePrefix + sessionID
	data, err := s.sessions.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch form session: %w", err)
	}
	var sess models.FormSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse form session: %w", err)
	}
	return &sess, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.sessions.Del(ctx, utils.SessionCachePrefix+sessionID).Err()
}

func (s *redisSessionStore) AcquireSubmitLock(ctx context.Context, sessionID string) (bool, error) {
	key := utils.SubmitLockPrefix + sessionID
	ok, err := s.locks.SetNX(ctx, key, "1", utils.SubmitLockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire submit lock: %w", err)
	}
	return ok, nil
}

func (s *redisSessionStore) ReleaseSubmitLock(ctx context.Context, sessionID string) error {
	return s.locks.Del(ctx, utils.SubmitLockPrefix+sessionID).Err()
}
