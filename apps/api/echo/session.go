package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/portal"
	"github.com/Hellothereeee2312/Portal/core/session"
)

type sessionApi struct {
	conf     *core.Config
	gate     *session.Gate
	validate *validator.Validate
}

func registerSessionAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	conf *core.Config,
	gate *session.Gate,
	validate *validator.Validate,
) {
	api := sessionApi{
		conf:     conf,
		gate:     gate,
		validate: validate,
	}

	sg := g.Group("/session")
	sg.POST("/login", api.login)

	ag := sg.Group("", jwt)
	ag.POST("/logout", api.logout)
	ag.POST("/token-refresh", api.refreshToken)

	pg := g.Group("/preferences")
	pg.GET("/theme", api.theme)
	pg.POST("/theme/toggle", api.toggleTheme)
}

// Handlers

func (api *sessionApi) login(ctx echo.Context) error {
	var data session.LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := session.Authenticate(data.Role, data.Username, data.Password)
	if err != nil {
		return errors.Wrap(err, "authenticating")
	}
	token, err := GenerateToken(api.conf, GetUserClaims(api.conf, usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, User: usr})
}

// logout only acknowledges: tokens are stateless and simply dropped by the client.
func (api *sessionApi) logout(ctx echo.Context) error {
	return ctx.NoContent(http.StatusNoContent)
}

func (api *sessionApi) refreshToken(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	token, err := refreshToken(ctx, api.conf)
	if err != nil {
		return errors.Wrap(err, "refreshing token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, User: claims.User()})
}

func (api *sessionApi) theme(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ThemeResponse{DarkMode: api.gate.DarkMode(ctx.Request().Context())})
}

func (api *sessionApi) toggleTheme(ctx echo.Context) error {
	enabled, err := api.gate.ToggleTheme(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "toggling theme")
	}
	return ctx.JSON(http.StatusOK, ThemeResponse{DarkMode: enabled})
}

type (
	LoginResponse struct {
		Token string             `json:"token"`
		User  portal.CurrentUser `json:"user"`
	}

	ThemeResponse struct {
		DarkMode bool `json:"dark_mode"`
	}
)
