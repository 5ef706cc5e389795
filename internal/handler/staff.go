package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dinehall/restaurant-reservation/internal/config"
	"github.com/dinehall/restaurant-reservation/internal/model"
	"github.com/dinehall/restaurant-reservation/internal/repository"
)

// StaffHandler serves the admin-only staff management endpoints.
type StaffHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewStaffHandler(cfg config.Config, users *repository.UserRepo) *StaffHandler {
	return &StaffHandler{Cfg: cfg, Users: users}
}

// staffView is the staff record as exposed over the API. The password
// hash never leaves the repository layer.
type staffView struct {
	ID       uint64  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Salary   uint32  `json:"salary"`
	Rank     string  `json:"rank"`
	JoinDate string  `json:"joinDate"`
	IsActive bool    `json:"isActive"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

func toStaffView(u model.User) staffView {
	return staffView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Salary:   u.Salary,
		Rank:     u.Rank,
		JoinDate: u.JoinDate.Format("2006-01-02"),
		IsActive: u.IsActive,
		Phone:    u.Phone,
		Address:  u.Address,
	}
}

type staffCreateReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Salary   uint32 `json:"salary"`
	Rank     string `json:"rank"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type staffUpdateReq struct {
	Salary   *uint32 `json:"salary"`
	Rank     *string `json:"rank"`
	IsActive *bool   `json:"isActive"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// List returns all staff and admin accounts.
func (h *StaffHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	users, err := h.Users.ListStaff(ctx)
	if err != nil {
		return failFrom(c, err)
	}
	out := make([]staffView, 0, len(users))
	for _, u := range users {
		out = append(out, toStaffView(u))
	}
	return ok(c, http.StatusOK, out)
}

// Create adds a staff or admin account.
func (h *StaffHandler) Create(c echo.Context) error {
	var req staffCreateReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "username, email and password are required")
	}
	if !validEmail(req.Email) {
		return fail(c, http.StatusBadRequest, "invalid email format")
	}
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		role = model.RoleStaff
	}
	if role != model.RoleStaff && role != model.RoleAdmin {
		return fail(c, http.StatusBadRequest, "role must be staff or admin")
	}
	rank := strings.ToLower(strings.TrimSpace(req.Rank))
	if rank == "" {
		rank = model.RankJunior
	}
	if !model.ValidRank(rank) {
		return fail(c, http.StatusBadRequest, "unknown rank")
	}

	u := model.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     role,
		Salary:   req.Salary,
		Rank:     rank,
		IsActive: true,
	}
	if req.Phone != "" {
		u.Phone = &req.Phone
	}
	if req.Address != "" {
		u.Address = &req.Address
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	uid, err := h.Users.Create(ctx, &u, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return failFrom(c, err)
	}
	created, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return failFrom(c, err)
	}
	return ok(c, http.StatusCreated, toStaffView(created))
}

// Update applies a partial update to a staff member. Absent fields keep
// their current values.
func (h *StaffHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var req staffUpdateReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if req.Rank != nil {
		r := strings.ToLower(strings.TrimSpace(*req.Rank))
		if !model.ValidRank(r) {
			return fail(c, http.StatusBadRequest, "unknown rank")
		}
		req.Rank = &r
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	updated, err := h.Users.UpdateStaff(ctx, id, repository.StaffUpdate{
		Salary:   req.Salary,
		Rank:     req.Rank,
		IsActive: req.IsActive,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return failFrom(c, err)
	}
	return ok(c, http.StatusOK, toStaffView(updated))
}

// Delete removes a staff account. Admins cannot delete themselves so a
// restaurant always keeps at least the acting admin.
func (h *StaffHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	if id == currentUserID(c) {
		return fail(c, http.StatusConflict, "cannot delete your own account")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Users.Delete(ctx, id); err != nil {
		return failFrom(c, err)
	}
	return okMessage(c, http.StatusOK, nil, "staff member deleted")
}
