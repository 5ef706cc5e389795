// Package handler implements the HTTP endpoints. Every response uses
// the same envelope: {"success": bool, "data": ..., "message": ...},
// with data omitted on failures and message omitted when there is
// nothing to say.
package handler

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dinehall/restaurant-reservation/internal/repository"
	"github.com/dinehall/restaurant-reservation/internal/service"
)

// dbTimeout bounds every database call made from a handler.
const dbTimeout = 5 * time.Second

// ExposeErrorDetail controls whether unclassified store errors are
// echoed to clients. main enables it outside production; in production
// clients only see a generic message while the detail stays in the
// server log.
var ExposeErrorDetail bool

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

func ok(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, echo.Map{"success": true, "data": data})
}

func okMessage(c echo.Context, status int, data interface{}, message string) error {
	return c.JSON(status, echo.Map{"success": true, "data": data, "message": message})
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"success": false, "message": message})
}

// failFrom maps the service and repository error taxonomy onto HTTP
// status codes: validation errors become 400, missing records 404,
// conflicts (taken slot, duplicate key, blocked transition or delete)
// 409, anything else 500 with a generic message.
func failFrom(c echo.Context, err error) error {
	switch {
	case service.IsValidation(err):
		return fail(c, http.StatusBadRequest, err.Error())
	case err == repository.ErrTableNotFound:
		return fail(c, http.StatusNotFound, "table not found")
	case err == repository.ErrReservationNotFound:
		return fail(c, http.StatusNotFound, "reservation not found")
	case err == repository.ErrUserNotFound:
		return fail(c, http.StatusNotFound, "user not found")
	case err == repository.ErrTableNumberExists:
		return fail(c, http.StatusConflict, "table number already exists")
	case err == repository.ErrSlotTaken:
		return fail(c, http.StatusConflict, "table is already reserved for this slot")
	case err == repository.ErrTableHasActiveReservations:
		return fail(c, http.StatusConflict, "table has active reservations")
	case err == repository.ErrUserExists:
		return fail(c, http.StatusConflict, "username or email already exists")
	case err == service.ErrInvalidTransition:
		return fail(c, http.StatusConflict, "invalid status transition")
	default:
		if ExposeErrorDetail {
			return fail(c, http.StatusInternalServerError, err.Error())
		}
		return fail(c, http.StatusInternalServerError, "internal error")
	}
}

// validEmail reports whether s looks like a deliverable address. The
// check is deliberately loose; the address is only ever used for
// lookups and contact, never parsed.
var emailRx = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func validEmail(s string) bool { return emailRx.MatchString(s) }

// currentUserID returns the authenticated user's id as stored by the
// JWT middleware, or 0 on unauthenticated routes.
func currentUserID(c echo.Context) uint64 {
	id, _ := c.Get("user_id").(uint64)
	return id
}
