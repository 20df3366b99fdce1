package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/dineshpandey3618-web/Rank1/core/catalog"
)

var errInvalidID = echo.NewHTTPError(http.StatusBadRequest, "invalid id")

type catalogApi struct {
	svc *catalog.Service
}

func registerCatalogAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := catalogApi{svc: deps.CatalogSvc}

	ag := g.Group("", jwt)

	sg := ag.Group("/subjects")
	sg.GET("", api.querySubjects, onboardedMiddleware())
	sg.GET("/:id/chapters", api.queryChapters, onboardedMiddleware())
	sg.POST("", api.createSubject, adminMiddleware())

	cg := ag.Group("/chapters")
	cg.GET("/:id/materials", api.queryMaterials, onboardedMiddleware())
	cg.POST("", api.createChapter, adminMiddleware())

	ag.POST("/materials", api.createMaterial, adminMiddleware())

	tg := ag.Group("/tests")
	tg.GET("", api.queryTests, onboardedMiddleware())
	tg.POST("", api.createTest, adminMiddleware())
}

// Handlers

func (api *catalogApi) querySubjects(ctx echo.Context) error {
	var subjects []catalog.Subject
	var err error

	if class := ctx.QueryParam("class"); class != "" {
		subjects, err = api.svc.ListSubjects(ctx.Request().Context(), class)
	} else {
		subjects, err = api.svc.ListAllSubjects(ctx.Request().Context())
	}
	if err != nil {
		return errors.Wrap(err, "querying subjects")
	}
	if subjects == nil {
		subjects = []catalog.Subject{}
	}
	return ctx.JSON(http.StatusOK, subjects)
}

func (api *catalogApi) queryChapters(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errInvalidID
	}

	chapters, err := api.svc.ListChapters(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "querying chapters")
	}
	if chapters == nil {
		chapters = []catalog.Chapter{}
	}
	return ctx.JSON(http.StatusOK, chapters)
}

func (api *catalogApi) queryMaterials(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errInvalidID
	}

	materials, err := api.svc.ListMaterials(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "querying materials")
	}
	if materials == nil {
		materials = []catalog.Material{}
	}
	return ctx.JSON(http.StatusOK, materials)
}

func (api *catalogApi) queryTests(ctx echo.Context) error {
	var tests []catalog.Test
	var err error

	if class := ctx.QueryParam("class"); class != "" {
		tests, err = api.svc.ListTests(ctx.Request().Context(), class)
	} else {
		tests, err = api.svc.ListAllTests(ctx.Request().Context())
	}
	if err != nil {
		return errors.Wrap(err, "querying tests")
	}
	if tests == nil {
		tests = []catalog.Test{}
	}
	return ctx.JSON(http.StatusOK, tests)
}

func (api *catalogApi) createSubject(ctx echo.Context) error {
	var data catalog.NewSubject
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSubject")
	}

	sub, err := api.svc.AddSubject(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating subject")
	}
	return ctx.JSON(http.StatusCreated, sub)
}

func (api *catalogApi) createChapter(ctx echo.Context) error {
	var data catalog.NewChapter
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewChapter")
	}

	chap, err := api.svc.AddChapter(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating chapter")
	}
	return ctx.JSON(http.StatusCreated, chap)
}

func (api *catalogApi) createMaterial(ctx echo.Context) error {
	var data catalog.NewMaterial
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMaterial")
	}

	mat, err := api.svc.AddMaterial(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating material")
	}
	return ctx.JSON(http.StatusCreated, mat)
}

func (api *catalogApi) createTest(ctx echo.Context) error {
	var data catalog.NewTest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTest")
	}

	tst, err := api.svc.AddTest(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating test")
	}
	return ctx.JSON(http.StatusCreated, tst)
}
