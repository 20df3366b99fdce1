package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/dineshpandey3618-web/Rank1/core/appconfig"
)

type settingsApi struct {
	svc *appconfig.Service
}

func registerSettingsAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := settingsApi{svc: deps.ConfigSvc}

	// branding is public; the login screen needs it before auth
	g.GET("/settings", api.retrieve)
	g.PUT("/settings", api.update, jwt, adminMiddleware())
}

// Handlers

func (api *settingsApi) retrieve(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Settings(ctx.Request().Context()))
}

func (api *settingsApi) update(ctx echo.Context) error {
	var data appconfig.Settings
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Settings")
	}

	if err := api.svc.UpdateSettings(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "updating settings")
	}
	return ctx.JSON(http.StatusOK, api.svc.Settings(ctx.Request().Context()))
}
