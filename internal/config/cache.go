package config

import (
	"strings"
	"time"
)

// CacheConfig tunes the Redis response cache middleware. Methods lists
// the HTTP methods eligible for caching, KeyStrategy picks which
// request attributes form the cache key, MaxBodyBytes caps the size of
// bodies stored in Redis, and ExcludePrefixes names route prefixes
// that must never be cached.
type CacheConfig struct {
	Enabled         bool
	Methods         map[string]bool
	TTL             time.Duration
	KeyStrategy     string
	Prefix          string
	MaxBodyBytes    int
	ExcludePrefixes []string
}

// LoadCacheConfig reads CACHE_* environment variables, falling back to
// caching GET responses for 30 seconds keyed by route and query string.
// Availability and reservation reads must always reflect the live
// reservation set (a booking made a second ago has to disappear from
// the very next availability query), so they are excluded by default;
// only static-ish routes like the table of menu items stay cacheable.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:         envBool("CACHE_ENABLED", true),
		Methods:         parseMethods(envStr("CACHE_METHODS", "GET")),
		TTL:             envDur("CACHE_TTL", 30*time.Second),
		KeyStrategy:     envStr("CACHE_KEY_STRATEGY", "route_query"),
		Prefix:          envStr("CACHE_PREFIX", "cache"),
		MaxBodyBytes:    envInt("CACHE_MAX_BODY_BYTES", 1<<20),
		ExcludePrefixes: parseList(envStr("CACHE_EXCLUDE_PREFIXES", "/api/tables,/api/reservations")),
	}
}

// Excluded reports whether the route path is exempt from caching.
func (c CacheConfig) Excluded(path string) bool {
	for _, p := range c.ExcludePrefixes {
		if p != "" && strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func parseMethods(s string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(strings.ToUpper(p)); p != "" {
			m[p] = true
		}
	}
	return m
}

func parseList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
