package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Hellothereeee2312/Portal/core/portal"
)

var (
	studentMiddleware = roleMiddleware(portal.RoleStudent)
	teacherMiddleware = roleMiddleware(portal.RoleTeacher)
)

// roleMiddleware lets through tokens issued to the given role only.
func roleMiddleware(role portal.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if claims.Role == role {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}
