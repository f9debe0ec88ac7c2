package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"mfgmarket/internal/domain/entity"
	"mfgmarket/internal/domain/repository"
	"mfgmarket/internal/infrastructure/auth"
	"mfgmarket/pkg/errors"
	"mfgmarket/pkg/response"
)

type AuthMiddleware struct {
	tokens   *auth.TokenService
	userRepo repository.UserRepository
}

func NewAuthMiddleware(tokens *auth.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// Authenticate requires a valid access token resolving to an existing
// user. The user row is loaded fresh on every request: tokens are not a
// cache of permission.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.resolveUser(c)
		if err != nil {
			return response.Error(c, err)
		}

		c.Set("uid", user.ID)
		c.Set("user", user)

		return next(c)
	}
}

// RequireActive rejects principals whose account was deactivated, even if
// their token is still unexpired.
func (m *AuthMiddleware) RequireActive(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*entity.User)
		if !ok {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}

		if !user.IsActive {
			return response.Error(c, errors.Forbidden("Inactive user account", nil))
		}

		return next(c)
	}
}

// RequireVerified gates mutating actions: listing creation, image upload,
// messaging.
func (m *AuthMiddleware) RequireVerified(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*entity.User)
		if !ok {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}

		if !user.IsActive {
			return response.Error(c, errors.Forbidden("Inactive user account", nil))
		}

		if !user.IsVerified {
			return response.Error(c, errors.Forbidden("User account not verified", nil))
		}

		return next(c)
	}
}

// OptionalAuth resolves a principal when a usable token is presented and
// silently continues without one otherwise. Public endpoints use it to
// personalize behavior without demanding authentication.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if user, err := m.resolveUser(c); err == nil {
			c.Set("uid", user.ID)
			c.Set("user", user)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) resolveUser(c echo.Context) (*entity.User, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, errors.Unauthorized("Authorization header is required", nil)
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errors.Unauthorized("Invalid authorization format", nil)
	}

	userID, err := m.tokens.Verify(parts[1], auth.TokenTypeAccess)
	if err != nil {
		return nil, errors.Unauthorized("Could not validate credentials", err)
	}

	user, err := m.userRepo.GetByID(c.Request().Context(), userID)
	if err != nil || user == nil {
		return nil, errors.Unauthorized("Could not validate credentials", err)
	}

	return user, nil
}
