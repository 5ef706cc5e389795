package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dinehall/restaurant-reservation/internal/model"
	"github.com/dinehall/restaurant-reservation/internal/repository"
	"github.com/dinehall/restaurant-reservation/internal/service"
)

// TableHandler serves the table inventory endpoints, including the
// public availability query.
type TableHandler struct {
	Tables       *repository.TableRepo
	Reservations *repository.ReservationRepo
	Availability *service.AvailabilityService
}

func NewTableHandler(tables *repository.TableRepo, reservations *repository.ReservationRepo, availability *service.AvailabilityService) *TableHandler {
	return &TableHandler{Tables: tables, Reservations: reservations, Availability: availability}
}

type tableReq struct {
	TableNumber string `json:"tableNumber"`
	Capacity    uint32 `json:"capacity"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// normalize trims the request and fills defaults; it returns a message
// for the first invalid field, or "".
func (r *tableReq) normalize() string {
	r.TableNumber = strings.TrimSpace(r.TableNumber)
	r.Location = strings.ToLower(strings.TrimSpace(r.Location))
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.TableNumber == "" {
		return "tableNumber is required"
	}
	if r.Capacity < 1 || r.Capacity > 20 {
		return "capacity must be between 1 and 20"
	}
	if r.Location == "" {
		r.Location = model.LocationIndoors
	}
	if !model.ValidLocation(r.Location) {
		return "unknown location"
	}
	if r.Status == "" {
		r.Status = model.TableAvailable
	}
	if !model.ValidTableStatus(r.Status) {
		return "unknown status"
	}
	return ""
}

func (r *tableReq) toModel() model.Table {
	t := model.Table{
		TableNumber: r.TableNumber,
		Capacity:    r.Capacity,
		Location:    r.Location,
		Status:      r.Status,
	}
	if d := strings.TrimSpace(r.Description); d != "" {
		t.Description = &d
	}
	return t
}

// List returns all tables in table-number order.
func (h *TableHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	tables, err := h.Tables.List(ctx)
	if err != nil {
		return failFrom(c, err)
	}
	return ok(c, http.StatusOK, tables)
}

// Available answers the availability query: which tables can seat
// partySize guests at the given date and time.
func (h *TableHandler) Available(c echo.Context) error {
	date := c.QueryParam("date")
	timeOfDay := c.QueryParam("time")
	partySize, err := strconv.Atoi(c.QueryParam("partySize"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "partySize must be a number")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	tables, err := h.Availability.FindAvailableTables(ctx, date, timeOfDay, partySize)
	if err != nil {
		return failFrom(c, err)
	}
	return ok(c, http.StatusOK, tables)
}

// GetByNumber returns a single table by its natural key.
func (h *TableHandler) GetByNumber(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.Tables.GetByNumber(ctx, c.Param("tableNumber"))
	if err != nil {
		return failFrom(c, err)
	}
	return ok(c, http.StatusOK, t)
}

// Create adds a table to the inventory (admin).
func (h *TableHandler) Create(c echo.Context) error {
	var req tableReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if msg := req.normalize(); msg != "" {
		return fail(c, http.StatusBadRequest, msg)
	}
	t := req.toModel()

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Tables.Create(ctx, &t); err != nil {
		return failFrom(c, err)
	}
	return ok(c, http.StatusCreated, t)
}

// Update overwrites a table identified by numeric id.
func (h *TableHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var req tableReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if msg := req.normalize(); msg != "" {
		return fail(c, http.StatusBadRequest, msg)
	}
	t := req.toModel()

	ctx, cancel := reqCtx(c)
	defer cancel()
	updated, err := h.Tables.Update(ctx, id, &t)
	if err != nil {
		return failFrom(c, err)
	}
	return ok(c, http.StatusOK, updated)
}

// UpdateByNumber overwrites a table identified by its natural key. The
// body may omit tableNumber; the path wins either way.
func (h *TableHandler) UpdateByNumber(c echo.Context) error {
	number := strings.TrimSpace(c.Param("tableNumber"))

	ctx, cancel := reqCtx(c)
	defer cancel()
	cur, err := h.Tables.GetByNumber(ctx, number)
	if err != nil {
		return failFrom(c, err)
	}

	var req tableReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	req.TableNumber = number
	if msg := req.normalize(); msg != "" {
		return fail(c, http.StatusBadRequest, msg)
	}
	t := req.toModel()

	updated, err := h.Tables.Update(ctx, cur.ID, &t)
	if err != nil {
		return failFrom(c, err)
	}
	return ok(c, http.StatusOK, updated)
}

// Delete removes a table, refusing while any non-terminal reservation
// still references it.
func (h *TableHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.Tables.GetByID(ctx, id)
	if err != nil {
		return failFrom(c, err)
	}
	active, err := h.Reservations.CountActiveByTable(ctx, t.TableNumber)
	if err != nil {
		return failFrom(c, err)
	}
	if active > 0 {
		return failFrom(c, repository.ErrTableHasActiveReservations)
	}
	if err := h.Tables.Delete(ctx, id); err != nil {
		return failFrom(c, err)
	}
	return okMessage(c, http.StatusOK, nil, "table deleted")
}
