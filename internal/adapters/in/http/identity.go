package http

import (
	"net/http"

	"proofparcel/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CallerHeader carries the authenticated caller, set by the gateway in front
// of the service.
const CallerHeader = "X-Caller-Identity"

const callerKey = "caller"

// KindUnauthenticated is reported when no caller identity is present.
const KindUnauthenticated = "Unauthenticated"

func (s *Server) requireCaller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(CallerHeader)
		if header == "" {
			return c.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Kind:    KindUnauthenticated,
				Message: "missing " + CallerHeader + " header",
			})
		}
		caller, err := kernel.NewIdentity(header)
		if err != nil {
			return s.fail(c, err)
		}
		c.Set(callerKey, caller)
		return next(c)
	}
}

func callerOf(c echo.Context) kernel.Identity {
	caller, _ := c.Get(callerKey).(kernel.Identity)
	return caller
}
