package router

import (
	"github.com/labstack/echo/v4"

	"github.com/dinehall/restaurant-reservation/internal/handler"
	"github.com/dinehall/restaurant-reservation/internal/middleware"
	"github.com/dinehall/restaurant-reservation/internal/model"
)

// RegisterTables registers the table inventory routes. Reads are
// public so guests can browse tables and check availability before
// registering; writes require staff or admin.
func RegisterTables(e *echo.Echo, t *handler.TableHandler, jwtSecret string) {
	e.GET("/api/tables", t.List)
	e.GET("/api/tables/available", t.Available)
	e.GET("/api/tables/number/:tableNumber", t.GetByNumber)

	staff := e.Group("/api/tables",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleStaff, model.RoleAdmin))
	staff.PUT("/:id", t.Update)
	staff.PUT("/number/:tableNumber", t.UpdateByNumber)

	admin := e.Group("/api/tables",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin))
	admin.POST("", t.Create)
	admin.DELETE("/:id", t.Delete)
}
