package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	domainErrors "dress-catalogue/internal/domain/errors"
	"dress-catalogue/internal/infrastructure/auth"
)

// AdminHandler owns the password gate endpoints and the middleware that
// protects the admin routes.
type AdminHandler struct {
	gate *auth.Gate
}

func NewAdminHandler(gate *auth.Gate) *AdminHandler {
	return &AdminHandler{gate: gate}
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Login exchanges the shared admin password for a bearer token.
// POST /admin/login
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request format",
		})
	}

	token, err := h.gate.Login(req.Password)
	if err != nil {
		if domainErrors.IsUnauthorizedError(err) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error: "incorrect password",
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "login failed",
		})
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// Logout revokes the presented token.
// POST /admin/logout
func (h *AdminHandler) Logout(c echo.Context) error {
	h.gate.Revoke(bearerToken(c))
	return c.NoContent(http.StatusNoContent)
}

// RequireSession is echo middleware guarding the admin routes.
func (h *AdminHandler) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !h.gate.Validate(bearerToken(c)) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error: "admin session required",
			})
		}
		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
