// Package router maps the HTTP surface onto handlers and applies the
// JWT and role middleware per route group.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/dinehall/restaurant-reservation/internal/handler"
)

// RegisterRoutes registers the endpoints that carry no authentication:
// the health check, the static menu and the demo seeder.
func RegisterRoutes(e *echo.Echo, seed *handler.SeedHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/api/menu", handler.Menu)
	// Demo convenience endpoint; wipes and re-creates the fixture set.
	e.POST("/api/seed/demo", seed.Demo)
}
