package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func adminTestEngine(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	g.GET("/api/admin/ping", AdminGuard(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return g
}

func TestAdminGuardAcceptsQueryToken(t *testing.T) {
	g := adminTestEngine("s3cret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping?token=s3cret", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdminGuardAcceptsHeaderToken(t *testing.T) {
	g := adminTestEngine("s3cret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set("x-admin-token", "s3cret")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdminGuardRejects(t *testing.T) {
	g := adminTestEngine("s3cret")

	cases := []struct {
		name  string
		query string
		hdr   string
	}{
		{"absent", "", ""},
		{"wrong query", "?token=wrong", ""},
		{"wrong header", "", "wrong"},
		{"prefix only", "?token=s3cre", ""},
		{"empty header", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/admin/ping"+tc.query, nil)
			if tc.hdr != "" {
				req.Header.Set("x-admin-token", tc.hdr)
			}
			g.ServeHTTP(w, req)
			require.Equal(t, http.StatusUnauthorized, w.Code)
			require.JSONEq(t, `{"success":false,"error":"unauthorized"}`, w.Body.String())
		})
	}
}
