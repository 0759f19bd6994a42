package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	adminController "dress-catalogue/internal/interfaces/controller/admin"
	itemsController "dress-catalogue/internal/interfaces/controller/items"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	echo   *echo.Echo
	logger *zap.Logger
	port   string
}

// New wires the route table. Everything under /api/admin except login
// sits behind the session middleware.
func New(port string, logger *zap.Logger, itemHandler *itemsController.ItemHandler, adminHandler *adminController.AdminHandler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")
	api.GET("/items", itemHandler.GetItems)
	api.GET("/items/:id", itemHandler.GetItem)
	api.POST("/items/:id/interest", itemHandler.RegisterInterest)

	admin := api.Group("/admin")
	admin.POST("/login", adminHandler.Login)

	protected := admin.Group("", adminHandler.RequireSession)
	protected.POST("/logout", adminHandler.Logout)
	protected.POST("/items", itemHandler.CreateItem)
	protected.PATCH("/items/:id", itemHandler.UpdateItem)
	protected.DELETE("/items/:id", itemHandler.DeleteItem)
	protected.GET("/items/summary", itemHandler.GetSummary)

	return &Server{
		echo:   e,
		logger: logger,
		port:   port,
	}
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.echo.Start(":" + s.port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info("server started", zap.String("port", s.port))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.echo.Shutdown(shutdownCtx)
}

// RequestLogger logs one structured line per request.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info("request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return err
		}
	}
}
