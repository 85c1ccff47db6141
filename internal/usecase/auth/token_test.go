package auth

import (
	"testing"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService(secret, time.Hour)

	token, expiresAt, err := svc.Issue("luna")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	userID, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "luna", userID)
}

func TestTokenService_Rejects(t *testing.T) {
	svc := NewTokenService(secret, time.Hour)

	other, _, err := NewTokenService("another-secret-another-secret-123", time.Hour).Issue("luna")
	require.NoError(t, err)

	expiredSvc := NewTokenService(secret, time.Hour)
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := expiredSvc.Issue("luna")
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":       "not-a-token",
		"wrong secret":  other,
		"expired":       expired,
		"missing claim": noSubject,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.VerifyToken(token)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}
