package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation is returned when a required field is missing or malformed.
	ErrValidation = errors.New("please complete all the fields")
	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("email already exists")
	// ErrUsernameTaken is returned when registering with a username already in use.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrUserNotFound is returned when no user matches the given identifier.
	ErrUserNotFound = errors.New("user doesn't exist")
	// ErrInvalidCredentials is returned when password verification fails.
	ErrInvalidCredentials = errors.New("email or password incorrect")
	// ErrMissingToken is returned when the Authorization header is absent.
	ErrMissingToken = errors.New("access token not found")
	// ErrInvalidToken is returned when the bearer token is malformed, unsigned or expired.
	ErrInvalidToken = errors.New("invalid access token")
	// ErrIdentityNotFound is returned by the auth gate when the user embedded in
	// a valid token no longer exists, e.g. deleted after issuance.
	ErrIdentityNotFound = errors.New("token identity not found")
	// ErrSessionMismatch is returned when the session cookie does not match the
	// session marker stored for the user, e.g. after a newer login elsewhere.
	ErrSessionMismatch = errors.New("session token mismatch")
	// ErrForbidden is returned when the authenticated user does not own the resource.
	ErrForbidden = errors.New("user not allowed")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// IsAuthError reports whether err belongs to the authentication class. These
// errors are deliberately indistinguishable to clients so a caller cannot
// probe which check failed.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrIdentityNotFound) ||
		errors.Is(err, ErrSessionMismatch)
}

// MapErrorToHTTP maps domain errors to HTTP errors. Every client-side failure
// collapses to 400, matching the API's historical contract; the finer-grained
// sentinels above exist for internal use and tests. Authentication failures
// additionally share a single generic body.
func MapErrorToHTTP(err error) *HTTPError {
	if IsAuthError(err) {
		return NewHTTPError(http.StatusBadRequest, "not authorized", "NOT_AUTHORIZED")
	}
	switch {
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, ErrValidation.Error(), "MISSING_FIELD")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, ErrEmailTaken.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusBadRequest, ErrUsernameTaken.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusBadRequest, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusBadRequest, ErrNotFound.Error(), "NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusBadRequest, ErrForbidden.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
