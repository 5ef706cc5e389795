package router

import (
	"github.com/labstack/echo/v4"

	"github.com/dinehall/restaurant-reservation/internal/handler"
	"github.com/dinehall/restaurant-reservation/internal/middleware"
)

// RegisterAuth registers registration, login and the token endpoints
// under /api/auth. Only /me requires a valid access token; logout takes
// the refresh token in the body and needs no bearer.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)
	g.GET("/me", a.Me, middleware.JWTAuth(jwtSecret))
}
