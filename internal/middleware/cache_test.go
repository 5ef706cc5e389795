package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/dinehall/restaurant-reservation/internal/config"
)

func TestEncodeDecodePayload(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}}
	body := []byte(`{"success":true}`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(bs)
	if !ok {
		t.Fatal("decodePayload rejected its own encoding")
	}
	if status != http.StatusOK {
		t.Errorf("status = %d", status)
	}
	if gotHdr.Get("Content-Type") != "application/json" {
		t.Errorf("header lost: %v", gotHdr)
	}
	if string(gotBody) != string(body) {
		t.Errorf("body = %q", gotBody)
	}
}

func TestDecodePayloadGarbage(t *testing.T) {
	for _, bs := range [][]byte{nil, []byte("short"), []byte("\x00\x00\x00\xc8\xff\xff\xff\xff")} {
		if _, _, _, ok := decodePayload(bs); ok {
			t.Errorf("decodePayload accepted %q", bs)
		}
	}
}

func newTestContext(method, target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/tables/available")
	return c
}

func TestCacheKeyFromStrategies(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}
	a := cacheKeyFrom(cfg, newTestContext(http.MethodGet, "/api/tables/available?date=2024-06-01"))
	b := cacheKeyFrom(cfg, newTestContext(http.MethodGet, "/api/tables/available?date=2024-06-02"))
	if a == b {
		t.Error("different query strings share a route_query key")
	}

	cfg.KeyStrategy = "route"
	a = cacheKeyFrom(cfg, newTestContext(http.MethodGet, "/api/tables/available?date=2024-06-01"))
	b = cacheKeyFrom(cfg, newTestContext(http.MethodGet, "/api/tables/available?date=2024-06-02"))
	if a != b {
		t.Error("route strategy should ignore the query string")
	}
}

func TestRedisCacheSkipsExcludedRoutes(t *testing.T) {
	cfg := config.CacheConfig{
		Enabled:         true,
		Methods:         map[string]bool{http.MethodGet: true},
		ExcludePrefixes: []string{"/api/tables"},
	}
	// A client that reaches no server: excluded routes must never
	// touch Redis, so the handler still runs untouched.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	mw := NewRedisCache(cfg, rdb)

	c := newTestContext(http.MethodGet, "/api/tables/available?date=2024-06-01")
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !called {
		t.Fatal("handler not reached on excluded route")
	}
	if got := c.Response().Header().Get("X-Cache"); got != "" {
		t.Errorf("X-Cache = %q, want unset on excluded route", got)
	}
}

func TestBuildRateKeyStrategies(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip"}
	c := newTestContext(http.MethodGet, "/api/tables")
	ipKey := buildRateKey(cfg, c)

	cfg.KeyStrategy = "user"
	c.Set("user_id", uint64(7))
	userKey := buildRateKey(cfg, c)
	if ipKey == userKey {
		t.Error("ip and user strategies produced the same key")
	}
	if want := "rl:user:7"; userKey != want {
		t.Errorf("user key = %q, want %q", userKey, want)
	}

	c.Set("user_id", nil)
	if got := buildRateKey(cfg, c); got != "rl:user:anon" {
		t.Errorf("anonymous key = %q", got)
	}
}

func TestAsInt64(t *testing.T) {
	tests := []struct {
		in   interface{}
		want int64
	}{
		{int64(5), 5},
		{int(3), 3},
		{float64(2), 2},
		{"9", 9},
		{"junk", 0},
		{nil, 0},
	}
	for _, tc := range tests {
		if got := asInt64(tc.in); got != tc.want {
			t.Errorf("asInt64(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
