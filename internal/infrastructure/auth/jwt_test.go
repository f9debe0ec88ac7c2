package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService() *TokenService {
	return NewTokenService("test-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestIssueAndVerifyAccessToken(t *testing.T) {
	svc := newTestTokenService()

	token, err := svc.IssueAccessToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Verify(token, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)
}

func TestIssuePairRoundTrip(t *testing.T) {
	svc := newTestTokenService()

	pair, err := svc.IssuePair("user-456")
	require.NoError(t, err)
	assert.Equal(t, "bearer", pair.TokenType)

	accessSubject, err := svc.Verify(pair.AccessToken, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-456", accessSubject)

	refreshSubject, err := svc.Verify(pair.RefreshToken, TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, "user-456", refreshSubject)
}

func TestVerifyRejectsWrongTokenType(t *testing.T) {
	svc := newTestTokenService()

	pair, err := svc.IssuePair("user-789")
	require.NoError(t, err)

	// An access token is never accepted where a refresh token is
	// expected, and vice versa. Both failures are indistinguishable from
	// a bad signature.
	_, err = svc.Verify(pair.AccessToken, TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Verify(pair.RefreshToken, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", -1*time.Minute, 7*24*time.Hour)

	token, err := svc.IssueAccessToken("user-123")
	require.NoError(t, err)

	_, err = svc.Verify(token, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	svc := newTestTokenService()
	other := NewTokenService("different-secret", 15*time.Minute, 7*24*time.Hour)

	token, err := other.IssueAccessToken("user-123")
	require.NoError(t, err)

	_, err = svc.Verify(token, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := newTestTokenService()

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(token, TokenTypeAccess)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
