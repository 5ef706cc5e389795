package config

import (
	"testing"
	"time"
)

func TestParseMethods(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"GET", []string{"GET"}},
		{"get, head", []string{"GET", "HEAD"}},
		{" , ,GET", []string{"GET"}},
		{"", nil},
	}
	for _, tc := range tests {
		got := parseMethods(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("parseMethods(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for _, m := range tc.want {
			if !got[m] {
				t.Errorf("parseMethods(%q) missing %q", tc.in, m)
			}
		}
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STR", "hello")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_DUR", "90s")
	t.Setenv("TEST_BAD", "nonsense")

	if got := envStr("TEST_STR", "def"); got != "hello" {
		t.Errorf("envStr = %q", got)
	}
	if got := envStr("TEST_MISSING", "def"); got != "def" {
		t.Errorf("envStr default = %q", got)
	}
	if !envBool("TEST_BOOL", false) {
		t.Error("envBool did not read true")
	}
	if envBool("TEST_BAD", false) {
		t.Error("envBool accepted garbage")
	}
	if got := envInt("TEST_INT", 0); got != 42 {
		t.Errorf("envInt = %d", got)
	}
	if got := envInt("TEST_BAD", 7); got != 7 {
		t.Errorf("envInt fallback = %d", got)
	}
	if got := envDur("TEST_DUR", time.Second); got != 90*time.Second {
		t.Errorf("envDur = %v", got)
	}
	if got := envDur("TEST_BAD", time.Second); got != time.Second {
		t.Errorf("envDur fallback = %v", got)
	}
}

func TestCacheConfigExcluded(t *testing.T) {
	cfg := CacheConfig{ExcludePrefixes: []string{"/api/tables", "/api/reservations"}}
	tests := []struct {
		path string
		want bool
	}{
		{"/api/tables/available", true},
		{"/api/tables", true},
		{"/api/tables/number/:tableNumber", true},
		{"/api/reservations", true},
		{"/api/reservations/user/:email", true},
		{"/api/menu", false},
		{"/healthz", false},
	}
	for _, tc := range tests {
		if got := cfg.Excluded(tc.path); got != tc.want {
			t.Errorf("Excluded(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestLoadCacheConfigDefaultExcludes(t *testing.T) {
	cfg := LoadCacheConfig()
	if !cfg.Excluded("/api/tables/available") {
		t.Error("availability route cacheable by default")
	}
	if !cfg.Excluded("/api/reservations") {
		t.Error("reservation listing cacheable by default")
	}
	if cfg.Excluded("/api/menu") {
		t.Error("menu route excluded by default")
	}
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 {
		t.Errorf("Capacity = %d, want clamp to 1", cfg.Capacity)
	}
	if cfg.RefillTokens != 1 {
		t.Errorf("RefillTokens = %d, want clamp to 1", cfg.RefillTokens)
	}
	if want := 5 * cfg.RefillInterval; cfg.TTL != want {
		t.Errorf("TTL = %v, want at least %v", cfg.TTL, want)
	}
}
