package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// intParam reads a numeric path parameter. Malformed values are reported as not found.
func intParam(ctx echo.Context, name string) (int, error) {
	val, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, errHttpNotFound
	}
	return val, nil
}

// intQuery reads a numeric query parameter, falling back to def when absent or malformed.
func intQuery(ctx echo.Context, name string, def int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return val
}
