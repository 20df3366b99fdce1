package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/dineshpandey3618-web/Rank1/core/catalog"
	"github.com/dineshpandey3618-web/Rank1/core/session"
)

// sessionApi exposes the per-session navigation state. Every mutation
// returns the resulting view so clients can re-render from it.
type sessionApi struct {
	catalogSvc *catalog.Service
	sessions   *session.Manager
}

func registerSessionAPI(g *echo.Group, deps ServerDeps) {
	api := sessionApi{catalogSvc: deps.CatalogSvc, sessions: deps.Sessions}

	sg := g.Group("/session")
	sg.GET("", api.retrieve)
	sg.PUT("/tab", api.selectTab)
	sg.PUT("/class", api.selectClass)
	sg.PUT("/subject", api.selectSubject)
	sg.POST("/back", api.goBack)
	sg.POST("/logout", api.logout)
}

// Handlers

func (api *sessionApi) retrieve(ctx echo.Context) error {
	view, err := getContextView(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, view)
}

func (api *sessionApi) selectTab(ctx echo.Context) error {
	var data TabRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to TabRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	view, err := getContextView(ctx)
	if err != nil {
		return err
	}
	if err := view.SelectTab(session.Tab(data.Tab)); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, view)
}

func (api *sessionApi) selectClass(ctx echo.Context) error {
	var data ClassRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ClassRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	view, err := getContextView(ctx)
	if err != nil {
		return err
	}
	view.SelectClass(data.Class)
	return ctx.JSON(http.StatusOK, view)
}

// selectSubject resolves the subject first so the view records its name; an
// unknown subject never touches the navigation state.
func (api *sessionApi) selectSubject(ctx echo.Context) error {
	var data SubjectRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SubjectRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	view, err := getContextView(ctx)
	if err != nil {
		return err
	}

	sub, err := api.catalogSvc.GetSubject(ctx.Request().Context(), data.SubjectID)
	if err != nil {
		return errors.Wrap(err, "finding subject by ID")
	}
	if err := view.SelectSubject(sub.ID, sub.Name); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, view)
}

func (api *sessionApi) goBack(ctx echo.Context) error {
	view, err := getContextView(ctx)
	if err != nil {
		return err
	}
	if err := view.GoBack(); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, view)
}

// logout resets the view and retires the session entry; the client's next
// contact gets a fresh session ID.
func (api *sessionApi) logout(ctx echo.Context) error {
	view, err := getContextView(ctx)
	if err != nil {
		return err
	}
	view.Logout()
	if id, ok := ctx.Get(contextSessionIDKey).(string); ok {
		api.sessions.Delete(id)
	}
	return ctx.JSON(http.StatusOK, view)
}
