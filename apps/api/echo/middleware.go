package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/dineshpandey3618-web/Rank1/core/session"
)

const (
	sessionHeader = "X-Session-ID"
	sessionCookie = "session_id"

	contextSessionIDKey = "sessionID"
	contextViewKey      = "sessionView"
)

var errViewNotFoundInCtx = errors.New("session view not found in echo.Context")

// sessionMiddleware resolves the caller's view state from the X-Session-ID
// header (or session_id cookie) and echoes the ID back so clients can pick
// it up on first contact.
func sessionMiddleware(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id := ctx.Request().Header.Get(sessionHeader)
			if id == "" {
				if c, err := ctx.Cookie(sessionCookie); err == nil {
					id = c.Value
				}
			}

			id, view := sessions.GetOrCreate(id)
			ctx.Set(contextSessionIDKey, id)
			ctx.Set(contextViewKey, view)
			ctx.Response().Header().Set(sessionHeader, id)
			return next(ctx)
		}
	}
}

func getContextView(ctx echo.Context) (*session.View, error) {
	if view, ok := ctx.Get(contextViewKey).(*session.View); ok {
		return view, nil
	}
	return nil, errViewNotFoundInCtx
}

func adminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if claims.IsAdmin {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}

// onboardedMiddleware keeps users out of the dashboard until the one-time
// role/board/state setup is done.
func onboardedMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if claims.Onboarded || claims.IsAdmin {
				return next(ctx)
			}
			return errOnboardingRequired
		}
	}
}
