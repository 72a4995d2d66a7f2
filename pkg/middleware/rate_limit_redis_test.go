package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisRateLimitMiddleware(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})

	gin.SetMode(gin.TestMode)
	g := gin.New()
	// 0.001 rps over a 1h window + burst 2 => 5 allowed per window; the
	// huge window keeps the whole test inside a single bucket
	g.POST("/api/bookings", RedisRateLimitMiddleware(client, 0.001, 2, time.Hour), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	allowed, rejected := 0, 0
	for i := 0; i < 8; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.RemoteAddr = "10.4.4.4:700"
		g.ServeHTTP(w, req)
		switch w.Code {
		case http.StatusOK:
			allowed++
		case http.StatusTooManyRequests:
			rejected++
		default:
			t.Fatalf("unexpected status %d", w.Code)
		}
	}

	require.Equal(t, 5, allowed)
	require.Equal(t, 3, rejected)
}

func TestRedisRateLimitMiddlewareNilClientFallsBack(t *testing.T) {
	h := RedisRateLimitMiddleware(nil, 1, 1, time.Second)
	require.NotNil(t, h)
}
