package database

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/config"
)

// AdvisoryLocker serializes critical sections across all application
// instances using Postgres session-level advisory locks. The lock lives on
// the same server as the rows it protects, so a check-then-write sequence
// under the lock cannot race with another instance.
type AdvisoryLocker struct {
	db *sql.DB
}

// NewAdvisoryLocker opens a dedicated connection pool for advisory locks.
// Session-level locks are tied to a connection, so the locker must not share
// pooled connections with the ent client.
func NewAdvisoryLocker(cfg config.DatabaseConfig) (*AdvisoryLocker, error) {
	c := FromCentralConfig(cfg)
	// A small pool is enough; each held lock pins one connection.
	if c.MaxOpenConns == 0 || c.MaxOpenConns > 10 {
		c.MaxOpenConns = 10
	}
	db, err := openSQLDB(c)
	if err != nil {
		return nil, err
	}
	return &AdvisoryLocker{db: db}, nil
}

func (l *AdvisoryLocker) Close() error {
	return l.db.Close()
}

// WithLock runs fn while holding the advisory lock for key. The lock is
// acquired and released on the same dedicated connection.
func (l *AdvisoryLocker) WithLock(ctx context.Context, key int64, fn func(ctx context.Context) error) error {
	conn, err := l.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to get lock connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_lock($1)", key); err != nil {
		return fmt.Errorf("failed to acquire advisory lock: %w", err)
	}
	defer func() {
		// Release even when ctx is already cancelled.
		_, _ = conn.ExecContext(context.WithoutCancel(ctx), "SELECT pg_advisory_unlock($1)", key)
	}()

	return fn(ctx)
}

// LockKey maps a UUID to a stable advisory lock key.
func LockKey(id uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(id[:])
	return int64(h.Sum64())
}
