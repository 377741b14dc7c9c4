package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager(t *testing.T) *Manager {
	t.Helper()

	keys := NewLocalKeys()
	m, err := New(Config{
		Mode:       ModeLocal,
		Issuer:     "medora-test",
		Audience:   "medora-api",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}, keys)
	require.NoError(t, err)
	return m
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := testManager(t)

	id := Identity{
		UserID:       uuid.New(),
		Email:        "doc@example.com",
		Role:         "DOCTOR",
		ClinicID:     uuid.New(),
		TokenVersion: 3,
	}
	sid := uuid.New()

	tokenStr, err := m.IssueAccess(id, &sid)
	require.NoError(t, err)

	claims, err := m.Verify(tokenStr)
	require.NoError(t, err)

	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.Equal(t, id.UserID, claims.UserID)
	assert.Equal(t, id.Email, claims.Email)
	assert.Equal(t, id.Role, claims.Role)
	assert.Equal(t, id.ClinicID, claims.ClinicID)
	assert.Equal(t, id.TokenVersion, claims.TokenVersion)
	require.NotNil(t, claims.SessionID)
	assert.Equal(t, sid, *claims.SessionID)
}

func TestRefreshTokenType(t *testing.T) {
	m := testManager(t)

	tokenStr, err := m.IssueRefresh(Identity{
		UserID:   uuid.New(),
		Email:    "a@b.c",
		Role:     "PATIENT",
		ClinicID: uuid.New(),
	}, nil)
	require.NoError(t, err)

	claims, err := m.Verify(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
	assert.Nil(t, claims.SessionID)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := testManager(t)
	_, err := m.Verify("v4.local.not-a-real-token")
	assert.Error(t, err)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	m1 := testManager(t)
	m2 := testManager(t)

	tokenStr, err := m1.IssueAccess(Identity{
		UserID:   uuid.New(),
		Email:    "a@b.c",
		Role:     "DOCTOR",
		ClinicID: uuid.New(),
	}, nil)
	require.NoError(t, err)

	_, err = m2.Verify(tokenStr)
	assert.Error(t, err, "token issued under a different key must not verify")
}
