package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const sessionContextKey = "sessionID"

// SessionConfig describes the session cookie
type SessionConfig struct {
	CookieName string
	Path       string
	TTL        time.Duration
}

// Session assigns every client a session id cookie, renewing its expiry on each request
func Session(config SessionConfig) echo.MiddlewareFunc {
	if config.CookieName == "" {
		config.CookieName = "weather_session"
	}
	if config.Path == "" {
		config.Path = "/"
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := ""
			if cookie, err := c.Cookie(config.CookieName); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					sessionID = cookie.Value
				}
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			cookie := &http.Cookie{
				Name:     config.CookieName,
				Value:    sessionID,
				Path:     config.Path,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			}
			if config.TTL > 0 {
				cookie.MaxAge = int(config.TTL.Seconds())
			}
			c.SetCookie(cookie)
			c.Set(sessionContextKey, sessionID)
			return next(c)
		}
	}
}

// SessionID returns the id assigned by the Session middleware, or "" outside of it
func SessionID(c echo.Context) string {
	id, _ := c.Get(sessionContextKey).(string)
	return id
}
