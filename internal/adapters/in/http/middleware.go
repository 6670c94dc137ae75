package http

import (
	"net/http"

	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// requireSession rejects calls made without an authenticated session.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.sessions.Current().IsAuthenticated() {
			return c.JSON(http.StatusUnauthorized, errorResponse{
				Code:    http.StatusUnauthorized,
				Message: errs.ErrNotAuthenticated.Error(),
			})
		}
		return next(c)
	}
}

// requireAdmin stops non-admin callers before the workflow is reached.
func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := s.sessions.Current()
		if !sess.Role().IsAdmin() {
			s.logger.Warn("admin route refused", "path", c.Path(), "user_id", sess.UserID(), "role", sess.Role())
			return c.JSON(http.StatusForbidden, errorResponse{
				Code:    http.StatusForbidden,
				Message: errs.ErrForbidden.Error(),
			})
		}
		return next(c)
	}
}
