package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell/internal/auth"
	"inkwell/internal/errors"
	"inkwell/internal/model"
	"inkwell/internal/service"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService  service.AuthService
	cookieDomain string
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookieDomain string) *AuthHandler {
	return &AuthHandler{authService: authService, cookieDomain: cookieDomain}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents a successful registration or login. Token is the
// signed bearer credential; the opaque session marker travels only in the
// cookie.
type AuthResponse struct {
	Email          string          `json:"email"`
	Username       string          `json:"username"`
	ProfilePicture string          `json:"profile_picture"`
	Articles       []model.Article `json:"articles,omitempty"`
	Token          string          `json:"_token"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrValidation)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.Email, req.Username, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.SetCookie(auth.RegistrationCookie(user.SessionToken))

	return c.JSON(http.StatusOK, AuthResponse{
		Email:          user.Email,
		Username:       user.Username,
		ProfilePicture: user.ProfilePicture,
		Token:          token,
	})
}

// Login godoc
// @Summary Log in an existing user
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrValidation)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.SetCookie(auth.LoginCookie(user.SessionToken, h.cookieDomain))

	return c.JSON(http.StatusOK, AuthResponse{
		Email:          user.Email,
		Username:       user.Username,
		ProfilePicture: user.ProfilePicture,
		Articles:       user.Articles,
		Token:          token,
	})
}

// Logout godoc
// @Summary Log out the current user
// @Tags users
// @Produce json
// @Success 200 {object} map[string]string
// @Router /users/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Clears the client cookie only. The stored session marker stays valid
	// until the next login rotates it.
	c.SetCookie(auth.ClearSessionCookie())
	return c.JSON(http.StatusOK, map[string]string{
		"message": "user logged out",
	})
}
