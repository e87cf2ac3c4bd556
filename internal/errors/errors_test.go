package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP_FlattensClientErrors(t *testing.T) {
	for _, err := range []error{
		ErrValidation,
		ErrEmailTaken,
		ErrUsernameTaken,
		ErrNotFound,
		ErrUserNotFound,
		ErrInvalidCredentials,
		ErrForbidden,
	} {
		httpErr := MapErrorToHTTP(err)
		assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode, err.Error())
	}
}

func TestMapErrorToHTTP_AuthErrorsShareOneBody(t *testing.T) {
	var bodies []ErrorResponse
	for _, err := range []error{
		ErrMissingToken,
		ErrInvalidToken,
		ErrIdentityNotFound,
		ErrSessionMismatch,
	} {
		assert.True(t, IsAuthError(err))
		httpErr := MapErrorToHTTP(err)
		assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
		bodies = append(bodies, httpErr.ToErrorResponse())
	}

	// Indistinguishable to clients: same message, same code.
	for _, body := range bodies[1:] {
		assert.Equal(t, bodies[0], body)
	}
}

func TestMapErrorToHTTP_WrappedAndUnknown(t *testing.T) {
	httpErr := MapErrorToHTTP(fmt.Errorf("check email: %w", ErrEmailTaken))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "EMAIL_TAKEN", httpErr.Code)

	httpErr = MapErrorToHTTP(fmt.Errorf("connection reset"))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", httpErr.Code)
}
