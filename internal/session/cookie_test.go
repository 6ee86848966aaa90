package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCookieRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/read", func(c *gin.Context) {
		id, _ := ID(c)
		c.String(http.StatusOK, id)
	})
	r.POST("/ensure", func(c *gin.Context) {
		id, ok := Ensure(c, CookieOptions{Path: "/site/", MaxAge: 60})
		if !ok {
			c.Status(http.StatusNoContent)
			return
		}
		c.String(http.StatusOK, id)
	})
	return r
}

func TestEnsure_IssuesCookie(t *testing.T) {
	r := newCookieRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ensure", nil))

	require.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(w.Body.String())
	require.NoError(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, w.Body.String(), cookies[0].Value)
	assert.Equal(t, "/site/", cookies[0].Path)
	assert.True(t, cookies[0].HttpOnly)
}

func TestEnsure_ReusesValidCookie(t *testing.T) {
	r := newCookieRouter()
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodPost, "/ensure", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: id})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, id, w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}

func TestMiddleware_IgnoresInvalidCookie(t *testing.T) {
	r := newCookieRouter()
	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-uuid"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Body.String())
}

func TestDoNotTrack(t *testing.T) {
	r := newCookieRouter()
	req := httptest.NewRequest(http.MethodPost, "/ensure", nil)
	req.Header.Set("DNT", "1")
	req.AddCookie(&http.Cookie{Name: CookieName, Value: uuid.NewString()})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Result().Cookies())
}
