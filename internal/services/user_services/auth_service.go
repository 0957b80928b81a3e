// File: internal/services/user_services/auth_service.go
package user_services

import (
	"context"
	"errors"

	"github.com/medibot-health/go-medibot/internal/auth"
	"github.com/medibot-health/go-medibot/internal/domain"
	userrepo "github.com/medibot-health/go-medibot/internal/repository/user"
)

var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService handles registration, login, and token validation.
type AuthService struct {
	userRepo  userrepo.UserRepository
	jwtSecret []byte
}

func NewAuthService(userRepo userrepo.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
	}
}

// Register creates an account and returns the stored user.
func (s *AuthService) Register(ctx context.Context, username, password, email, role, language string) (*domain.User, error) {
	if role == "" {
		role = domain.RolePatient
	}
	if language == "" {
		language = "en"
	}

	taken, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	user := &domain.User{
		Username: username,
		Email:    email,
		Role:     role,
		Language: language,
	}
	if err := user.HashPassword(password); err != nil {
		return nil, err
	}
	if err := user.IsValid(); err != nil {
		return nil, err
	}

	return s.userRepo.Create(ctx, user)
}

// Login checks credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		// Indistinguishable from a bad password on purpose.
		return "", nil, ErrInvalidCredentials
	}
	if err := user.ValidatePassword(password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(user.ID, user.Role, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ValidateJWTToken returns the user ID carried by a valid token.
func (s *AuthService) ValidateJWTToken(token string) (uint, error) {
	return auth.ValidateToken(token, s.jwtSecret)
}
