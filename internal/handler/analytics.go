package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dinehall/restaurant-reservation/internal/repository"
	"github.com/dinehall/restaurant-reservation/internal/service"
)

// AnalyticsHandler serves the admin analytics report.
type AnalyticsHandler struct {
	Tables       *repository.TableRepo
	Reservations *repository.ReservationRepo
}

func NewAnalyticsHandler(tables *repository.TableRepo, reservations *repository.ReservationRepo) *AnalyticsHandler {
	return &AnalyticsHandler{Tables: tables, Reservations: reservations}
}

// Report aggregates the last 30 days of reservations (or an explicit
// ?from=YYYY-MM-DD&to=YYYY-MM-DD window) into revenue, table, peak-hour
// and customer statistics.
func (h *AnalyticsHandler) Report(c echo.Context) error {
	now := time.Now().UTC()
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	if from == "" {
		from = now.AddDate(0, 0, -30).Format("2006-01-02")
	}
	if to == "" {
		to = now.Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", from); err != nil {
		return fail(c, http.StatusBadRequest, "from must be YYYY-MM-DD")
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		return fail(c, http.StatusBadRequest, "to must be YYYY-MM-DD")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	reservations, err := h.Reservations.ListBetweenDates(ctx, from, to)
	if err != nil {
		return failFrom(c, err)
	}
	tables, err := h.Tables.List(ctx)
	if err != nil {
		return failFrom(c, err)
	}
	return ok(c, http.StatusOK, service.BuildAnalytics(reservations, tables))
}
