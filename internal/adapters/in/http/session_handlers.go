package http

import (
	"net/http"
	"strconv"

	"logistics/internal/core/domain/model/toast"

	"github.com/labstack/echo/v4"
)

// Login handles POST /api/v1/session/login.
func (s *Server) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	sess, err := s.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, sessionToResponse(sess))
}

// Register handles POST /api/v1/session/register. It never logs the user in.
func (s *Server) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := s.sessions.Register(c.Request().Context(), req.Email, req.Password); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

// Logout handles DELETE /api/v1/session. It succeeds whether or not a session exists.
func (s *Server) Logout(c echo.Context) error {
	if err := s.sessions.Logout(c.Request().Context()); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetSession handles GET /api/v1/session.
func (s *Server) GetSession(c echo.Context) error {
	return c.JSON(http.StatusOK, sessionToResponse(s.sessions.Current()))
}

// ListToasts handles GET /api/v1/toasts.
func (s *Server) ListToasts(c echo.Context) error {
	return c.JSON(http.StatusOK, toastsToResponse(s.toasts.List()))
}

// DismissToast handles DELETE /api/v1/toasts/:id.
func (s *Server) DismissToast(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid toast id")
	}
	if !s.toasts.Remove(toast.ID(id)) {
		return c.JSON(http.StatusNotFound, errorResponse{Code: http.StatusNotFound, Message: "toast not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
