package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dineshpandey3618-web/Rank1/core/news"
)

type newsApi struct {
	svc *news.Service
}

func registerNewsAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := newsApi{svc: deps.NewsSvc}

	g.GET("/news", api.query, jwt)
}

// query never fails: a broken feed renders as an empty listing.
func (api *newsApi) query(ctx echo.Context) error {
	headlines := api.svc.Fetch(ctx.Request().Context())
	if headlines == nil {
		headlines = []news.Headline{}
	}
	return ctx.JSON(http.StatusOK, headlines)
}
