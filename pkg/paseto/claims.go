package pasetotoken

import (
	"time"

	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Identity is the payload both token types carry.
type Identity struct {
	UserID       uuid.UUID
	Email        string
	Role         string
	ClinicID     uuid.UUID
	TokenVersion int
}

// Claims is the app-facing token payload.
type Claims struct {
	Type TokenType

	UserID       uuid.UUID
	Email        string
	Role         string
	ClinicID     uuid.UUID
	TokenVersion int
	SessionID    *uuid.UUID

	Issuer   string
	Audience string

	IssuedAt    time.Time
	NotBefore   time.Time
	ExpiresAt   time.Time
	TokenID     string // jti
	Subject     string
	RawFooter   []byte
	RawClaimsJS []byte
}

// GetUserID implements the reqctx.AuthClaims interface.
func (c *Claims) GetUserID() uuid.UUID {
	return c.UserID
}

// GetSessionID implements the reqctx.AuthClaims interface.
func (c *Claims) GetSessionID() *uuid.UUID {
	return c.SessionID
}

// GetTokenType implements the reqctx.AuthClaims interface.
func (c *Claims) GetTokenType() string {
	return string(c.Type)
}

// IsExpired implements the reqctx.AuthClaims interface.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

// Identity rebuilds the issuing payload from the claims.
func (c *Claims) Identity() Identity {
	return Identity{
		UserID:       c.UserID,
		Email:        c.Email,
		Role:         c.Role,
		ClinicID:     c.ClinicID,
		TokenVersion: c.TokenVersion,
	}
}
