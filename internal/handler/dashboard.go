package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dinehall/restaurant-reservation/internal/model"
	"github.com/dinehall/restaurant-reservation/internal/repository"
)

// DashboardHandler serves the staff dashboard summary.
type DashboardHandler struct {
	Tables       *repository.TableRepo
	Reservations *repository.ReservationRepo
}

func NewDashboardHandler(tables *repository.TableRepo, reservations *repository.ReservationRepo) *DashboardHandler {
	return &DashboardHandler{Tables: tables, Reservations: reservations}
}

type dashboardStats struct {
	TotalTables                int                 `json:"totalTables"`
	AvailableTables            int                 `json:"availableTables"`
	TodayReservations          int                 `json:"todayReservations"`
	TodayConfirmedReservations int                 `json:"todayConfirmedReservations"`
	RecentReservations         []model.Reservation `json:"recentReservations"`
	OccupancyRate              int                 `json:"occupancyRate"`
}

// Stats returns today's headline numbers: table counts, reservation
// counts for the current date and the ten most recently created
// reservations. Occupancy is the share of tables not currently
// available, rounded to whole percent.
func (h *DashboardHandler) Stats(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	totalTables, err := h.Tables.CountAll(ctx)
	if err != nil {
		return failFrom(c, err)
	}
	availableTables, err := h.Tables.CountByStatus(ctx, model.TableAvailable)
	if err != nil {
		return failFrom(c, err)
	}

	today := time.Now().UTC().Format("2006-01-02")
	todayCount, err := h.Reservations.CountByDate(ctx, today)
	if err != nil {
		return failFrom(c, err)
	}
	todayConfirmed, err := h.Reservations.CountByDateAndStatuses(ctx, today,
		model.ReservationConfirmed, model.ReservationSeated)
	if err != nil {
		return failFrom(c, err)
	}
	recent, err := h.Reservations.ListRecent(ctx, 10)
	if err != nil {
		return failFrom(c, err)
	}

	stats := dashboardStats{
		TotalTables:                totalTables,
		AvailableTables:            availableTables,
		TodayReservations:          todayCount,
		TodayConfirmedReservations: todayConfirmed,
		RecentReservations:         recent,
	}
	if totalTables > 0 {
		stats.OccupancyRate = int(float64(totalTables-availableTables)/float64(totalTables)*100 + 0.5)
	}
	return ok(c, http.StatusOK, stats)
}
