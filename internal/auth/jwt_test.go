package auth

import (
	"testing"
	"time"

	"github.com/lshigami/auriter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMaker(secret string) *JWTMaker {
	return NewJWTMaker(&config.Config{JWTSecret: secret})
}

func TestUserTokenRoundTrip(t *testing.T) {
	maker := newTestMaker("secret")

	token, issued, err := maker.CreateUserToken(42, "a@b.c", "recruiter")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(UserTokenTTL), issued.ExpiresAt.Time, time.Minute)

	claims, err := maker.VerifyUserToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "recruiter", claims.Role)
}

func TestUserTokenRejectsOtherSecret(t *testing.T) {
	token, _, err := newTestMaker("one").CreateUserToken(1, "a@b.c", "jobSeeker")
	require.NoError(t, err)

	_, err = newTestMaker("two").VerifyUserToken(token)
	assert.Error(t, err)
}

func TestRoomTokenExpires(t *testing.T) {
	maker := newTestMaker("secret")
	start := time.Now()
	maker.now = func() time.Time { return start }

	token, err := maker.CreateRoomToken("room-1", RoomRoleGuest)
	require.NoError(t, err)

	claims, err := maker.VerifyRoomToken(token)
	require.NoError(t, err)
	assert.Equal(t, "room-1", claims.RoomID)
	assert.Equal(t, RoomRoleGuest, claims.Role)

	maker.now = func() time.Time { return start.Add(RoomTokenTTL + time.Minute) }
	_, err = maker.VerifyRoomToken(token)
	assert.Error(t, err)
}

func TestRoomTokenRejectsUnknownRole(t *testing.T) {
	_, err := newTestMaker("secret").CreateRoomToken("room-1", "admin")
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NoError(t, ComparePassword(hash, "hunter2"))
	assert.Error(t, ComparePassword(hash, "hunter3"))
}
