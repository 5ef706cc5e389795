package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dinehall/restaurant-reservation/internal/config"
	"github.com/dinehall/restaurant-reservation/internal/model"
	"github.com/dinehall/restaurant-reservation/internal/repository"
	"github.com/dinehall/restaurant-reservation/internal/service"
)

// SeedHandler resets the database to a small demo fixture: three
// accounts, six tables and four reservations for today and tomorrow.
// Meant for demos and local development only.
type SeedHandler struct {
	Cfg          config.Config
	Users        *repository.UserRepo
	Tables       *repository.TableRepo
	Reservations *repository.ReservationRepo
}

func NewSeedHandler(cfg config.Config, users *repository.UserRepo, tables *repository.TableRepo, reservations *repository.ReservationRepo) *SeedHandler {
	return &SeedHandler{Cfg: cfg, Users: users, Tables: tables, Reservations: reservations}
}

const demoPassword = "password123"

type seedAccount struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func strptr(s string) *string { return &s }

// Demo wipes and re-creates the demo data set. Table statuses are
// re-derived from the seeded reservations the same way the lifecycle
// maintains them.
func (h *SeedHandler) Demo(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	if err := h.Reservations.DeleteAll(ctx); err != nil {
		return failFrom(c, err)
	}
	if err := h.Tables.DeleteAll(ctx); err != nil {
		return failFrom(c, err)
	}
	if err := h.Users.DeleteAll(ctx); err != nil {
		return failFrom(c, err)
	}

	users := []model.User{
		{
			Username: "admin", Email: "admin@example.com", Role: model.RoleAdmin,
			Salary: 75000, Rank: model.RankExecutive, IsActive: true,
			Phone:   strptr("+1 (555) 123-4567"),
			Address: strptr("123 Admin Street, New York, NY"),
		},
		{
			Username: "staff", Email: "staff@example.com", Role: model.RoleStaff,
			Salary: 45000, Rank: model.RankSenior, IsActive: true,
			Phone:   strptr("+1 (555) 987-6543"),
			Address: strptr("456 Staff Avenue, New York, NY"),
		},
		{
			Username: "customer", Email: "customer@example.com", Role: model.RoleCustomer,
			Rank: model.RankJunior, IsActive: true,
			Phone:   strptr("+1 (555) 555-5555"),
			Address: strptr("789 Customer Road, New York, NY"),
		},
	}
	accounts := make([]seedAccount, 0, len(users))
	for i := range users {
		if _, err := h.Users.Create(ctx, &users[i], demoPassword, h.Cfg.BcryptCost); err != nil {
			return failFrom(c, err)
		}
		accounts = append(accounts, seedAccount{Email: users[i].Email, Password: demoPassword, Role: users[i].Role})
	}

	tables := []model.Table{
		{TableNumber: "T01", Capacity: 2, Location: model.LocationIndoors, Status: model.TableAvailable},
		{TableNumber: "T02", Capacity: 4, Location: model.LocationIndoors, Status: model.TableAvailable},
		{TableNumber: "T03", Capacity: 6, Location: model.LocationOutdoors, Status: model.TableAvailable},
		{TableNumber: "T04", Capacity: 2, Location: model.LocationBalcony, Status: model.TableAvailable},
		{TableNumber: "T05", Capacity: 8, Location: model.LocationPrivate, Status: model.TableAvailable},
		{TableNumber: "T06", Capacity: 4, Location: model.LocationIndoors, Status: model.TableAvailable},
	}
	for i := range tables {
		if err := h.Tables.Create(ctx, &tables[i]); err != nil {
			return failFrom(c, err)
		}
	}

	today := time.Now().UTC().Format("2006-01-02")
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	reservations := []model.Reservation{
		{
			CustomerName: "John Doe", CustomerEmail: "customer@example.com",
			CustomerPhone: "123-456-7890", TableNumber: "T01",
			ReservationDate: today, ReservationTime: "18:00",
			PartySize: 2, Status: model.ReservationConfirmed,
		},
		{
			CustomerName: "Jane Smith", CustomerEmail: "jane@example.com",
			CustomerPhone: "987-654-3210", TableNumber: "T02",
			ReservationDate: today, ReservationTime: "19:30",
			PartySize: 4, Status: model.ReservationPending,
		},
		{
			CustomerName: "Bob Wilson", CustomerEmail: "bob@example.com",
			CustomerPhone: "555-123-4567", TableNumber: "T03",
			ReservationDate: today, ReservationTime: "20:00",
			PartySize: 6, Status: model.ReservationSeated,
		},
		{
			CustomerName: "Alice Johnson", CustomerEmail: "alice@example.com",
			CustomerPhone: "555-987-6543", TableNumber: "T04",
			ReservationDate: tomorrow, ReservationTime: "19:00",
			PartySize: 2, Status: model.ReservationConfirmed,
		},
	}

	tx, err := h.Reservations.DB().BeginTx(ctx, nil)
	if err != nil {
		return failFrom(c, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	for i := range reservations {
		if err := h.Reservations.CreateTx(ctx, tx, &reservations[i]); err != nil {
			return failFrom(c, err)
		}
	}
	for _, t := range tables {
		seated, otherActive, err := h.Reservations.ActiveCountsByTableTx(ctx, tx, t.TableNumber)
		if err != nil {
			return failFrom(c, err)
		}
		status, write := service.NextTableStatus(t.Status, seated, otherActive)
		if !write {
			continue
		}
		if err := h.Tables.UpdateStatusByNumberTx(ctx, tx, t.TableNumber, status); err != nil {
			return failFrom(c, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return failFrom(c, err)
	}
	committed = true

	return okMessage(c, http.StatusOK, echo.Map{
		"users":        accounts,
		"tables":       len(tables),
		"reservations": len(reservations),
	}, "demo data created")
}
