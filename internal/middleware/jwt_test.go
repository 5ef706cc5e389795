package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dinehall/restaurant-reservation/internal/utils"
)

const testSecret = "unit-test-secret"

func runProtected(t *testing.T, authHeader string, roles ...string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	mw := JWTAuth(testSecret)
	if len(roles) > 0 {
		h = RequireRole(roles...)(h)
	}
	if err := mw(h)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, c
}

func TestJWTAuthMissingToken(t *testing.T) {
	rec, _ := runProtected(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthBadToken(t *testing.T) {
	rec, _ := runProtected(t, "Bearer not.a.jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthSetsIdentity(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 7, "staff", 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	rec, c := runProtected(t, "Bearer "+at.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if uid, _ := c.Get("user_id").(uint64); uid != 7 {
		t.Errorf("user_id = %v, want 7", c.Get("user_id"))
	}
	if role, _ := c.Get("role").(string); role != "staff" {
		t.Errorf("role = %v, want staff", c.Get("role"))
	}
}

func TestRequireRole(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 3, "customer", 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	rec, _ := runProtected(t, "Bearer "+at.Token, "staff", "admin")
	if rec.Code != http.StatusForbidden {
		t.Errorf("customer on staff route: status = %d, want 403", rec.Code)
	}

	rec, _ = runProtected(t, "Bearer "+at.Token, "customer")
	if rec.Code != http.StatusOK {
		t.Errorf("customer on customer route: status = %d, want 200", rec.Code)
	}
}
