package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(limiter.LimitMiddleware())
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doGet(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiterCapsRequestsPerWindow(t *testing.T) {
	limiter := NewRateLimiter(NewMemoryStore(), time.Minute, 3)
	router := newLimitedRouter(limiter)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, doGet(router).Code)
	}

	w := doGet(router)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewRateLimiter(NewMemoryStore(), 50*time.Millisecond, 1)
	router := newLimitedRouter(limiter)

	require.Equal(t, http.StatusOK, doGet(router).Code)
	require.Equal(t, http.StatusTooManyRequests, doGet(router).Code)

	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, http.StatusOK, doGet(router).Code)
}

func TestMemoryStoreCountsPerKey(t *testing.T) {
	store := NewMemoryStore()

	count, err := store.Incr("a", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.Incr("a", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = store.Incr("b", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
