package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func get(r http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	r := setupLimitedRouter(NewRateLimiter(1, 3))

	for i := 0; i < 3; i++ {
		resp := get(r, "10.0.0.1:1234")
		assert.Equal(t, http.StatusOK, resp.Code)
	}
}

func TestRateLimiter_RejectsPastBurst(t *testing.T) {
	r := setupLimitedRouter(NewRateLimiter(0.001, 2))

	get(r, "10.0.0.1:1234")
	get(r, "10.0.0.1:1234")
	resp := get(r, "10.0.0.1:1234")

	assert.Equal(t, http.StatusTooManyRequests, resp.Code)
}

// Exhausting one client's bucket must not throttle another client.
func TestRateLimiter_BucketsArePerIP(t *testing.T) {
	r := setupLimitedRouter(NewRateLimiter(0.001, 1))

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.2:1234").Code)
}

func TestRateLimiter_UsesForwardedForWhenPresent(t *testing.T) {
	r := setupLimitedRouter(NewRateLimiter(0.001, 1))

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "127.0.0.1:1000"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)

	// same forwarded client, different socket: still the same bucket
	req2, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req2.RemoteAddr = "127.0.0.1:2000"
	req2.Header.Set("X-Forwarded-For", "203.0.113.7")
	resp2 := httptest.NewRecorder()
	r.ServeHTTP(resp2, req2)
	assert.Equal(t, http.StatusTooManyRequests, resp2.Code)
}

func TestNewRateLimiterFromEnv_Defaults(t *testing.T) {
	os.Unsetenv("RATE_LIMIT_RPS")
	os.Unsetenv("RATE_LIMIT_BURST")

	rl := NewRateLimiterFromEnv()
	assert.Equal(t, float64(10), float64(rl.rate))
	assert.Equal(t, 20, rl.burst)
}

func TestNewRateLimiterFromEnv_Overrides(t *testing.T) {
	os.Setenv("RATE_LIMIT_RPS", "2.5")
	os.Setenv("RATE_LIMIT_BURST", "5")
	defer os.Unsetenv("RATE_LIMIT_RPS")
	defer os.Unsetenv("RATE_LIMIT_BURST")

	rl := NewRateLimiterFromEnv()
	assert.Equal(t, 2.5, float64(rl.rate))
	assert.Equal(t, 5, rl.burst)
}
