package auth

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the opaque session marker.
const SessionCookieName = "session_token"

const (
	// RegistrationSessionTTL bounds the cookie issued at registration.
	RegistrationSessionTTL = 24 * time.Hour
	// LoginSessionTTL bounds the cookie issued at login.
	LoginSessionTTL = 7 * 24 * time.Hour
)

// NewSessionToken generates a fresh opaque session marker. The same value is
// persisted on the user record and mirrored in the client cookie; the auth
// gate rejects any bearer token whose cookie no longer matches.
func NewSessionToken() string {
	return uuid.New().String()
}

// RegistrationCookie builds the session cookie set at registration: same-site
// only, plain transport allowed, 24h.
func RegistrationCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Now().Add(RegistrationSessionTTL),
	}
}

// LoginCookie builds the session cookie set at login: cross-site capable, so
// it requires secure transport, domain-scoped, 7 days.
func LoginCookie(token, domain string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		Domain:   domain,
		Path:     "/",
		Expires:  time.Now().Add(LoginSessionTTL),
	}
}

// ClearSessionCookie builds an expired cookie that removes the session marker
// from the client. The marker stored on the user record is left untouched and
// stays valid until the next login rotates it.
func ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	}
}
