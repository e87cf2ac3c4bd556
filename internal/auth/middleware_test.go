package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"inkwell/internal/model"
)

// stubFinder serves a fixed set of users by id.
type stubFinder struct {
	users map[uuid.UUID]*model.User
}

func (f *stubFinder) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newGateServer(t *testing.T, secret string, finder UserFinder) *echo.Echo {
	t.Helper()
	e := echo.New()
	secured := e.Group("", TokenValidator(secret), SessionGuard(finder))
	secured.GET("/me", func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return echo.NewHTTPError(http.StatusInternalServerError, "identity missing")
		}
		return c.JSON(http.StatusOK, user)
	})
	return e
}

func TestAuthGate(t *testing.T) {
	const secret = "test-secret"

	user := &model.User{
		ID:           uuid.New(),
		Email:        "a@x.com",
		Username:     "alice",
		SessionToken: NewSessionToken(),
	}
	finder := &stubFinder{users: map[uuid.UUID]*model.User{user.ID: user}}

	jwtService := NewJWTService(secret)
	token, err := jwtService.GenerateToken(user.ID)
	assert.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		cookie     *http.Cookie
		wantStatus int
	}{
		{
			name:       "missing authorization header",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed token",
			authHeader: "Bearer garbage",
			cookie:     &http.Cookie{Name: SessionCookieName, Value: user.SessionToken},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing session cookie",
			authHeader: "Bearer " + token,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "session cookie mismatch",
			authHeader: "Bearer " + token,
			cookie:     &http.Cookie{Name: SessionCookieName, Value: "stale-value"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "valid token and matching session",
			authHeader: "Bearer " + token,
			cookie:     &http.Cookie{Name: SessionCookieName, Value: user.SessionToken},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newGateServer(t, secret, finder)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				// Every failure branch reports the same generic body.
				assert.Contains(t, rec.Body.String(), "not authorized")
			}
		})
	}
}

func TestAuthGate_DeletedUser(t *testing.T) {
	const secret = "test-secret"

	jwtService := NewJWTService(secret)
	token, err := jwtService.GenerateToken(uuid.New())
	assert.NoError(t, err)

	e := newGateServer(t, secret, &stubFinder{users: map[uuid.UUID]*model.User{}})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "anything"})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not authorized")
}

// A token issued before a session rotation keeps validating cryptographically
// but fails the session cross-check once the stored marker changes.
func TestAuthGate_TokenInvalidatedByNewerLogin(t *testing.T) {
	const secret = "test-secret"

	user := &model.User{
		ID:           uuid.New(),
		SessionToken: NewSessionToken(),
	}
	finder := &stubFinder{users: map[uuid.UUID]*model.User{user.ID: user}}

	jwtService := NewJWTService(secret)
	oldToken, err := jwtService.GenerateToken(user.ID)
	assert.NoError(t, err)
	oldCookie := &http.Cookie{Name: SessionCookieName, Value: user.SessionToken}

	e := newGateServer(t, secret, finder)

	// Accepted before rotation.
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+oldToken)
	req.AddCookie(oldCookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// A second login rotates the stored marker.
	user.SessionToken = NewSessionToken()

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+oldToken)
	req.AddCookie(oldCookie)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not authorized")
}
