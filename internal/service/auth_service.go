package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio/internal/model"
	"portfolio/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUsernameTaken is returned by Signup for a duplicate username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials is returned by Login for a bad username or
	// password. Callers must not distinguish which.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const tokenTTL = 24 * time.Hour

// AuthService handles admin signup and login.
type AuthService interface {
	Signup(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	users     repository.UserRepository
	jwtSecret string
	logger    zerolog.Logger
}

// NewAuthService returns an AuthService issuing HS256 tokens.
func NewAuthService(users repository.UserRepository, jwtSecret string, logger zerolog.Logger) AuthService {
	return &authService{
		users:     users,
		jwtSecret: jwtSecret,
		logger:    logger.With().Str("service", "AuthService").Logger(),
	}
}

// Signup creates an account with a bcrypt-hashed password. The store enforces
// username uniqueness atomically, so concurrent signups for the same name
// cannot both succeed.
func (s *authService) Signup(ctx context.Context, username, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, model.InsertUser{Username: username, Password: string(hash)})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.logger.Info().Str("user_id", user.ID).Msg("User signed up")
	return user, nil
}

// Login verifies the password and returns a signed token with the user id as
// subject.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("lookup username: %w", err)
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
