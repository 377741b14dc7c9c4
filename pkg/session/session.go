// Package session is the server-side refresh-session store. A refresh token
// is only honored while its session record is alive here, so deleting the
// record revokes the token immediately regardless of its signed expiry.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

// Record is one live refresh session.
type Record struct {
	SessionID    uuid.UUID `json:"sid"`
	UserID       uuid.UUID `json:"uid"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ClinicID     uuid.UUID `json:"clinic_id"`
	TokenVersion int       `json:"tv"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Store holds refresh sessions keyed by session id, with a secondary
// per-user index so revoking all of a user's sessions never scans the
// whole keyspace.
type Store interface {
	Create(ctx context.Context, rec Record, ttl time.Duration) error
	Get(ctx context.Context, sessionID uuid.UUID) (*Record, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error

	// DeleteAllForUser removes every session of the user and returns how
	// many were deleted.
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int, error)
}
