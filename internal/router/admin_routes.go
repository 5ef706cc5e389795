package router

import (
	"github.com/labstack/echo/v4"

	"github.com/dinehall/restaurant-reservation/internal/handler"
	"github.com/dinehall/restaurant-reservation/internal/middleware"
	"github.com/dinehall/restaurant-reservation/internal/model"
)

// RegisterStaff registers the admin-only staff management routes.
func RegisterStaff(e *echo.Echo, s *handler.StaffHandler, jwtSecret string) {
	g := e.Group("/api/staff",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin))
	g.GET("", s.List)
	g.POST("", s.Create)
	g.PUT("/:id", s.Update)
	g.DELETE("/:id", s.Delete)
}

// RegisterReports registers the analytics report (admin) and the
// dashboard summary (staff and admin).
func RegisterReports(e *echo.Echo, a *handler.AnalyticsHandler, d *handler.DashboardHandler, jwtSecret string) {
	e.GET("/api/analytics", a.Report,
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin))
	e.GET("/api/dashboard/stats", d.Stats,
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleStaff, model.RoleAdmin))
}
