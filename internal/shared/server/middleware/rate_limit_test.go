package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterAllowRefills(t *testing.T) {
	now := time.Unix(0, 0)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 2}

	for i := 0; i < 2; i++ {
		allowed, _ := limiter.Allow("ip|G", rule)
		if !allowed {
			t.Fatalf("request %d within burst should pass", i)
		}
	}
	allowed, retryAfter := limiter.Allow("ip|G", rule)
	if allowed {
		t.Fatal("request beyond burst should be rejected")
	}
	if retryAfter <= 0 {
		t.Fatalf("expected positive retry-after, got %v", retryAfter)
	}

	now = now.Add(time.Second)
	if allowed, _ := limiter.Allow("ip|G", rule); !allowed {
		t.Fatal("one token should have refilled after a second")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	now := time.Unix(0, 0)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if allowed, _ := limiter.Allow("a|G", rule); !allowed {
		t.Fatal("first key should pass")
	}
	if allowed, _ := limiter.Allow("b|G", rule); !allowed {
		t.Fatal("second key has its own bucket")
	}
	if allowed, _ := limiter.Allow("a|G", rule); allowed {
		t.Fatal("first key should be drained")
	}
}

func TestRateLimitMiddlewareResponds429(t *testing.T) {
	gin.SetMode(gin.TestMode)

	now := time.Unix(0, 0)
	router := gin.New()
	router.Use(RateLimit(RateLimitConfig{
		Rules:   map[string]RateLimitRule{"DEFAULT": {Rate: 1, Burst: 1}},
		Limiter: NewRateLimiter(func() time.Time { return now }),
	}))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/x", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200 within burst, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/x", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 beyond burst, got %d", second.Code)
	}
	if second.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header on 429")
	}
}

func TestRateLimitMiddlewarePassesUnknownGroups(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(RateLimitConfig{
		Rules:    map[string]RateLimitRule{"UPLOAD": {Rate: 1, Burst: 1}},
		GroupFor: func(c *gin.Context) string { return "OTHER" },
	}))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/x", nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200 for unmatched group, got %d", i, resp.Code)
		}
	}
}
