package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// ErrInvalidToken is the single failure returned for any verification
// problem: bad signature, expired token, or wrong token type. Callers
// probing for the token type learn nothing from it.
var ErrInvalidToken = errors.New("invalid token")

type tokenClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, typed, expiring tokens.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// TokenPair holds one short-lived access token and one long-lived refresh
// token for the same principal.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

func (s *TokenService) issue(userID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) IssueAccessToken(userID string) (string, error) {
	return s.issue(userID, TokenTypeAccess, s.accessTTL)
}

func (s *TokenService) IssueRefreshToken(userID string) (string, error) {
	return s.issue(userID, TokenTypeRefresh, s.refreshTTL)
}

// IssuePair mints a fresh access+refresh pair. There is no rotation or
// denylist: a previously issued refresh token stays valid until expiry.
func (s *TokenService) IssuePair(userID string) (*TokenPair, error) {
	accessToken, err := s.IssueAccessToken(userID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.IssueRefreshToken(userID)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// Verify validates signature and expiry, then checks the embedded type
// claim against expectedType. Every failure mode returns ErrInvalidToken.
func (s *TokenService) Verify(tokenString, expectedType string) (string, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Type != expectedType {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
