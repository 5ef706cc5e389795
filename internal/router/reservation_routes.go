package router

import (
	"github.com/labstack/echo/v4"

	"github.com/dinehall/restaurant-reservation/internal/handler"
	"github.com/dinehall/restaurant-reservation/internal/middleware"
	"github.com/dinehall/restaurant-reservation/internal/model"
)

// RegisterReservations registers the reservation routes. Creation is
// open so walk-ins can book without an account; listing and cancelling
// require a session, and status transitions are staff business.
func RegisterReservations(e *echo.Echo, r *handler.ReservationHandler, jwtSecret string) {
	e.POST("/api/reservations", r.Create)

	auth := e.Group("/api/reservations", middleware.JWTAuth(jwtSecret))
	auth.GET("", r.List)
	auth.GET("/:id", r.GetByID)
	auth.GET("/user/:email", r.ListByCustomer)
	auth.PUT("/:id/cancel", r.Cancel)

	staff := e.Group("/api/reservations",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleStaff, model.RoleAdmin))
	staff.PUT("/:id/status", r.UpdateStatus)
}
