package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/google/uuid"
)

// RedisStore keeps sessions under "session:<sid>" with a TTL, and the
// per-user index as a set under "user_sessions:<uid>".
type RedisStore struct {
	rdb *goredis.Client
}

func NewRedisStore(rdb *goredis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func sessionKey(sid uuid.UUID) string {
	return "session:" + sid.String()
}

func userIndexKey(uid uuid.UUID) string {
	return "user_sessions:" + uid.String()
}

func (s *RedisStore) Create(ctx context.Context, rec Record, ttl time.Duration) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, sessionKey(rec.SessionID), payload, ttl)
	pipe.SAdd(ctx, userIndexKey(rec.UserID), rec.SessionID.String())
	// Keep the index from outliving its newest session.
	pipe.Expire(ctx, userIndexKey(rec.UserID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID uuid.UUID) (*Record, error) {
	payload, err := s.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &rec, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID uuid.UUID) error {
	rec, err := s.Get(ctx, sessionID)
	if err != nil {
		if err == ErrNotFound {
			return nil
		}
		return err
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, sessionKey(sessionID))
	pipe.SRem(ctx, userIndexKey(rec.UserID), sessionID.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *RedisStore) DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int, error) {
	members, err := s.rdb.SMembers(ctx, userIndexKey(userID)).Result()
	if err != nil {
		return 0, fmt.Errorf("load session index: %w", err)
	}

	if len(members) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(members)+1)
	for _, m := range members {
		sid, err := uuid.Parse(m)
		if err != nil {
			continue
		}
		keys = append(keys, sessionKey(sid))
	}
	keys = append(keys, userIndexKey(userID))

	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return 0, fmt.Errorf("delete sessions: %w", err)
	}
	return len(members), nil
}
