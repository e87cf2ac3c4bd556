package auth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "inkwell/internal/errors"
	"inkwell/internal/model"
)

// userContextKey is where SessionGuard stores the resolved identity.
const userContextKey = "currentUser"

// UserFinder resolves the identity embedded in a bearer token.
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// TokenValidator verifies the Authorization bearer header: presence, signature
// and expiry. Failures are reported with the same generic body as every other
// authentication failure so a caller cannot tell which check rejected it.
func TokenValidator(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			kind := apperrors.ErrInvalidToken
			if errors.Is(err, echojwt.ErrJWTMissing) {
				kind = apperrors.ErrMissingToken
			}
			httpErr := apperrors.MapErrorToHTTP(kind)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	})
}

// SessionGuard runs after TokenValidator. It resolves the token's user against
// the credential store, cross-checks the request's session cookie against the
// session marker persisted for that user and, on success, attaches the
// identity to the request context. A marker mismatch covers logout-elsewhere,
// invalidation of pre-login tokens and cookie tampering.
func SessionGuard(users UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolveIdentity(c, users)
			if err != nil {
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

func resolveIdentity(c echo.Context, users UserFinder) (*model.User, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, apperrors.ErrMissingToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := users.FindByID(c.Request().Context(), id)
	if err != nil {
		return nil, apperrors.ErrIdentityNotFound
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value != user.SessionToken {
		return nil, apperrors.ErrSessionMismatch
	}

	return user, nil
}

// CurrentUser returns the identity attached by SessionGuard.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(userContextKey).(*model.User)
	return user, ok
}
