package middleware

import (
	"github.com/labstack/echo/v4"

	"mfgmarket/internal/domain/entity"
	"mfgmarket/pkg/errors"
	"mfgmarket/pkg/response"
)

type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

// AdminOnly gates the moderation surface. The check is inherited as-is:
// any active, verified user counts as an admin.
// TODO: replace with a real role or capability field on User.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*entity.User)
		if !ok {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}

		if !user.IsActive || !user.IsVerified {
			return response.Error(c, errors.Forbidden("Admin access denied", nil))
		}

		return next(c)
	}
}
