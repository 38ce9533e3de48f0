package middleware

import (
	"net/http"

	"growguard/internal/domain/entity"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/errors"
	"growguard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	Session   usecase.SessionUsecase
	Navigator usecase.NavigatorUsecase
}

// SessionMiddleware guards the protected screens.
type SessionMiddleware struct {
	session   usecase.SessionUsecase
	navigator usecase.NavigatorUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		session:   params.Session,
		navigator: params.Navigator,
	}
}

// RequireSession sends unauthenticated requests to the login screen, replacing the
// current location.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.session.IsAuthenticated() {
			m.navigator.ForceLogin()

			return errors.WithStack(domainerrors.ErrNotAuthenticated)
		}

		return next(c)
	}
}

// Enter records the screen a route renders when the user opens it. A pending flash
// survives when the client is already on route.
func (m *SessionMiddleware) Enter(route entity.Route) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method == http.MethodGet && m.navigator.Current().Route != route {
				m.navigator.Navigate(route, "")
			}

			return next(c)
		}
	}
}
