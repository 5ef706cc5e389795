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

// ReservationHandler serves reservation creation, listing and the
// status lifecycle endpoints. All mutations go through the lifecycle
// service so the table-status side effects stay transactional.
type ReservationHandler struct {
	Lifecycle    *service.LifecycleService
	Reservations *repository.ReservationRepo
}

func NewReservationHandler(lifecycle *service.LifecycleService, reservations *repository.ReservationRepo) *ReservationHandler {
	return &ReservationHandler{Lifecycle: lifecycle, Reservations: reservations}
}

type reservationReq struct {
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	TableNumber     string `json:"tableNumber"`
	ReservationDate string `json:"reservationDate"`
	ReservationTime string `json:"reservationTime"`
	PartySize       uint32 `json:"partySize"`
	SpecialRequests string `json:"specialRequests"`
}

type statusReq struct {
	Status string `json:"status"`
}

// Create books a table for a slot. The draft is validated and the slot
// taken atomically by the lifecycle service; racing creators for the
// same slot receive a 409.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req reservationReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	draft := model.Reservation{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		TableNumber:     req.TableNumber,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		PartySize:       req.PartySize,
	}
	if s := strings.TrimSpace(req.SpecialRequests); s != "" {
		draft.SpecialRequests = &s
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	created, err := h.Lifecycle.Create(ctx, draft)
	if err != nil {
		return failFrom(c, err)
	}
	return ok(c, http.StatusCreated, created)
}

// List returns reservations, optionally filtered by ?date=YYYY-MM-DD,
// ?status= and ?email=. Newest slots come first.
func (h *ReservationHandler) List(c echo.Context) error {
	filter := repository.ReservationFilter{
		Date:          c.QueryParam("date"),
		Status:        strings.ToLower(c.QueryParam("status")),
		CustomerEmail: c.QueryParam("email"),
	}
	if filter.Status != "" && filter.Status != "all" && !model.ValidReservationStatus(filter.Status) {
		return fail(c, http.StatusBadRequest, "unknown status")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Reservations.List(ctx, filter)
	if err != nil {
		return failFrom(c, err)
	}
	return ok(c, http.StatusOK, list)
}

// GetByID returns a single reservation.
func (h *ReservationHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	res, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		return failFrom(c, err)
	}
	return ok(c, http.StatusOK, res)
}

// ListByCustomer returns all reservations booked under an email.
func (h *ReservationHandler) ListByCustomer(c echo.Context) error {
	email := strings.TrimSpace(c.Param("email"))
	if email == "" {
		return fail(c, http.StatusBadRequest, "email is required")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Reservations.List(ctx, repository.ReservationFilter{CustomerEmail: email})
	if err != nil {
		return failFrom(c, err)
	}
	return ok(c, http.StatusOK, list)
}

// UpdateStatus moves a reservation through its state machine. Illegal
// moves come back as 409; re-issuing a terminal status it already holds
// succeeds without touching anything.
func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	updated, err := h.Lifecycle.UpdateStatus(ctx, id, strings.ToLower(strings.TrimSpace(req.Status)))
	if err != nil {
		return failFrom(c, err)
	}
	return ok(c, http.StatusOK, updated)
}

// Cancel moves a reservation to cancelled. Cancelling an already
// cancelled reservation is a no-op success.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	updated, err := h.Lifecycle.Cancel(ctx, id)
	if err != nil {
		return failFrom(c, err)
	}
	return okMessage(c, http.StatusOK, updated, "reservation cancelled")
}
