package cart

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const SessionCookie = "storefront_session"

const sessionMaxAge = 30 * 24 * time.Hour

// SessionID returns the visitor's session id from the request cookie.
func SessionID(r *http.Request) (string, bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// EnsureSession returns the existing session id or mints a new one and sets
// the cookie on the response.
func EnsureSession(w http.ResponseWriter, r *http.Request) string {
	if id, ok := SessionID(r); ok {
		return id
	}
	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
