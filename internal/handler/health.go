package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health responds 200 for load balancers and uptime monitors.
func Health(c echo.Context) error {
	return ok(c, http.StatusOK, echo.Map{"status": "ok"})
}
