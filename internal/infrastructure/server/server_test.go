package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"dress-catalogue/internal/infrastructure/auth"
	"dress-catalogue/internal/infrastructure/whatsapp"
	adminController "dress-catalogue/internal/interfaces/controller/admin"
	itemsController "dress-catalogue/internal/interfaces/controller/items"
	"dress-catalogue/internal/interfaces/presenter"
)

func newTestServer() *Server {
	itemHandler := itemsController.NewItemHandler(nil, presenter.NewItemPresenter(whatsapp.NewLinkBuilder("")))
	adminHandler := adminController.NewAdminHandler(auth.NewGate("s3cret", time.Hour))
	return New("8080", zap.NewNop(), itemHandler, adminHandler)
}

func TestNew_RouteTable(t *testing.T) {
	s := newTestServer()

	routes := make(map[string]bool)
	for _, r := range s.echo.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /healthz",
		"GET /api/items",
		"GET /api/items/:id",
		"POST /api/items/:id/interest",
		"POST /api/admin/login",
		"POST /api/admin/logout",
		"POST /api/admin/items",
		"PATCH /api/admin/items/:id",
		"DELETE /api/admin/items/:id",
		"GET /api/admin/items/summary",
	} {
		assert.True(t, routes[want], "missing route %s", want)
	}
}

func TestNew_AdminRoutesAreGated(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/items", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNew_Healthz(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	e := echo.New()
	e.Use(RequestLogger(logger))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusTeapot, "pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "request", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/ping", fields["path"])
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
}
