package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/dineshpandey3618-web/Rank1/core"
	"github.com/dineshpandey3618-web/Rank1/core/user"
)

type userApi struct {
	svc  *user.Service
	conf *core.Config
}

func registerUserAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := userApi{
		svc:  deps.UserSvc,
		conf: deps.Conf,
	}

	ug := g.Group("/users")

	// un-authed endpoints
	ug.POST("/otp", api.requestOTP)
	ug.POST("/signup", api.signup)
	ug.POST("/login", api.login)

	// authed endpoints
	ag := ug.Group("", jwt)
	ag.GET("/me", api.me)
	ag.POST("/onboarding", api.onboard)
	ag.GET("", api.query, adminMiddleware())
}

// Handlers

// requestOTP generates a signup verification code for this session. The code
// lives in the session view only and supersedes any previous one.
func (api *userApi) requestOTP(ctx echo.Context) error {
	var data OTPRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to OTPRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	// fail early on a taken username so no code is burned on it
	if _, err := api.svc.GetByUsername(ctx.Request().Context(), data.Username); err == nil {
		return core.NewValidationError(user.ErrUsernameExists,
			core.FieldError{Field: "username", Error: user.ErrUsernameExists.Error()})
	} else if errors.Cause(err) != user.ErrNotFound {
		return errors.Wrap(err, "checking username availability")
	}

	view, err := getContextView(ctx)
	if err != nil {
		return err
	}

	code, err := user.GenerateOTP()
	if err != nil {
		return errors.Wrap(err, "generating verification code")
	}
	view.SetOTP(code)
	api.svc.SendOTP(data.Username, code)

	return ctx.JSON(http.StatusOK, OTPResponse{
		Detail: "verification code generated",
		OTP:    code,
	})
}

func (api *userApi) signup(ctx echo.Context) error {
	var data SignupRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SignupRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	view, err := getContextView(ctx)
	if err != nil {
		return err
	}

	usr, err := api.svc.RegisterWithOTP(ctx.Request().Context(), data.NewUser(), view.GeneratedOTP, data.OTP)
	if err != nil {
		return errors.Wrap(err, "registering user")
	}
	view.ConsumeOTP()

	res := SignupResponse{User: usr}
	if api.conf.AutoLoginAfterSignup {
		view.Login(usr.ID)
		token, err := GenerateToken(GetUserClaims(usr))
		if err != nil {
			return errors.Wrap(err, "generating token")
		}
		res.Token = token
	}
	return ctx.JSON(http.StatusCreated, res)
}

func (api *userApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	usr, err := api.svc.Authenticate(ctx.Request().Context(), data.Username, data.Password)
	if err != nil {
		return errors.Wrap(err, "authenticating")
	}

	if view, err := getContextView(ctx); err == nil {
		view.Login(usr.ID)
	}

	token, err := GenerateToken(GetUserClaims(usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, User: usr})
}

// onboard completes the one-time role/board/state setup and issues a fresh
// token since the claims change with it.
func (api *userApi) onboard(ctx echo.Context) error {
	var data user.Onboarding
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Onboarding")
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	usr, err := api.svc.CompleteOnboarding(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "completing onboarding")
	}

	token, err := GenerateToken(GetUserClaims(usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, User: usr})
}

func (api *userApi) me(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.svc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *userApi) query(ctx echo.Context) error {
	users, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	if users == nil {
		users = []user.User{}
	}
	return ctx.JSON(http.StatusOK, users)
}
