package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"inkwell/internal/auth"
	"inkwell/internal/cache"
	apperrors "inkwell/internal/errors"
	"inkwell/internal/model"
	"inkwell/internal/repository"
)

// AuthService handles registration and login. Logout has no server-side
// effect: the handler only clears the client cookie, so the stored session
// marker remains valid until the next login rotates it.
type AuthService interface {
	Register(ctx context.Context, email, username, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	cache      *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, cache *cache.Client) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		cache:      cache,
	}
}

// Register creates a user with a hashed password and a fresh session marker,
// and returns the user together with a signed bearer token. The caller mirrors
// the marker into the session cookie, so cookie and stored marker start out
// identical.
func (s *authService) Register(ctx context.Context, email, username, password string) (*model.User, string, error) {
	if email == "" || username == "" || password == "" {
		return nil, "", apperrors.ErrValidation
	}

	if err := s.checkAvailable(ctx, email, username); err != nil {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:          email,
		Username:       username,
		PasswordHash:   hash,
		ProfilePicture: model.DefaultProfilePicture,
		SessionToken:   auth.NewSessionToken(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials, rotates the session marker (invalidating any
// previously issued session once the gate re-checks it) and returns a fresh
// bearer token.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrUserNotFound
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if err := auth.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	sessionToken := auth.NewSessionToken()
	if err := s.users.UpdateSessionToken(ctx, user.ID, sessionToken); err != nil {
		return nil, "", fmt.Errorf("rotate session token: %w", err)
	}
	user.SessionToken = sessionToken
	_ = s.cache.Delete(ctx, userCacheKey(user.ID))

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

func (s *authService) checkAvailable(ctx context.Context, email, username string) error {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return apperrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check email: %w", err)
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return apperrors.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check username: %w", err)
	}

	return nil
}
