package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dinehall/restaurant-reservation/internal/repository"
	"github.com/dinehall/restaurant-reservation/internal/service"
)

func recordFailFrom(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := failFrom(e.NewContext(req, rec), err); err != nil {
		t.Fatalf("failFrom returned error: %v", err)
	}
	return rec
}

func TestFailFromStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &service.ValidationError{Field: "partySize", Reason: "must be at least 1"}, http.StatusBadRequest},
		{"table missing", repository.ErrTableNotFound, http.StatusNotFound},
		{"reservation missing", repository.ErrReservationNotFound, http.StatusNotFound},
		{"slot taken", repository.ErrSlotTaken, http.StatusConflict},
		{"duplicate number", repository.ErrTableNumberExists, http.StatusConflict},
		{"active reservations", repository.ErrTableHasActiveReservations, http.StatusConflict},
		{"bad transition", service.ErrInvalidTransition, http.StatusConflict},
		{"unclassified", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		rec := recordFailFrom(t, c.err)
		if rec.Code != c.want {
			t.Errorf("%s: status = %d, want %d", c.name, rec.Code, c.want)
		}
		if !strings.Contains(rec.Body.String(), `"success":false`) {
			t.Errorf("%s: body missing failure envelope: %s", c.name, rec.Body.String())
		}
	}
}

func TestFailFromErrorDetailToggle(t *testing.T) {
	defer func() { ExposeErrorDetail = false }()

	ExposeErrorDetail = false
	rec := recordFailFrom(t, errors.New("dial tcp: connection refused"))
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Errorf("production response leaks detail: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "internal error") {
		t.Errorf("production response missing generic message: %s", rec.Body.String())
	}

	ExposeErrorDetail = true
	rec = recordFailFrom(t, errors.New("dial tcp: connection refused"))
	if !strings.Contains(rec.Body.String(), "connection refused") {
		t.Errorf("dev response hides detail: %s", rec.Body.String())
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{
		"customer@example.com",
		"jane.smith+promo@mail.example.co",
		"a_b-c%d@sub.domain.io",
	}
	for _, s := range valid {
		if !validEmail(s) {
			t.Errorf("validEmail(%q) = false, want true", s)
		}
	}
	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@nodot",
		"user@example.c om",
		"user name@example.com",
	}
	for _, s := range invalid {
		if validEmail(s) {
			t.Errorf("validEmail(%q) = true, want false", s)
		}
	}
}
