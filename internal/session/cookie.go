package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CookieName carries the opaque visitor id.
const CookieName = "portfolio_session"

const contextKey = "portfolio.session_id"

// CookieOptions controls how the session cookie is issued.
type CookieOptions struct {
	Path   string
	Secure bool
	MaxAge int
}

// Middleware puts a valid session id from the request cookie into the gin context.
// Requests sending DNT: 1 are never tracked.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if doNotTrack(c) {
			c.Next()
			return
		}
		if id, err := c.Cookie(CookieName); err == nil {
			if _, err := uuid.Parse(id); err == nil {
				c.Set(contextKey, id)
			}
		}
		c.Next()
	}
}

// ID returns the session id for the request, if any.
func ID(c *gin.Context) (string, bool) {
	id := c.GetString(contextKey)
	return id, id != ""
}

// Ensure returns the request's session id, issuing a new cookie when there is none.
// It returns false when the visitor opted out with DNT.
func Ensure(c *gin.Context, opts CookieOptions) (string, bool) {
	if doNotTrack(c) {
		return "", false
	}
	if id, ok := ID(c); ok {
		return id, true
	}
	id := uuid.NewString()
	path := opts.Path
	if path == "" {
		path = "/"
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, id, opts.MaxAge, path, "", opts.Secure, true)
	c.Set(contextKey, id)
	return id, true
}

func doNotTrack(c *gin.Context) bool {
	return c.GetHeader("DNT") == "1"
}
