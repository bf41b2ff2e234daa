package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/learnhub-ng/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository defines methods for user data access
type UserRepository interface {
	// Create inserts a new user into the database
	Create(ctx context.Context, user *models.User) error
	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, userID int) (*models.User, error)
	// ExistsByEmail checks if a user with the given email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// TokenGenerator generates and validates JWT token pairs
type TokenGenerator interface {
	// GenerateTokens generates an access and refresh token pair for a user
	GenerateTokens(userID int, role string) (string, string, error)
	// ValidateRefreshToken validates a refresh token and returns the userID
	ValidateRefreshToken(tokenString string) (int, error)
}

type authService struct {
	userRepo       UserRepository
	tokenGenerator TokenGenerator
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokenGenerator TokenGenerator) *authService {
	return &authService{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
	}
}

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Register creates a new account and returns access and refresh tokens
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (string, string, error) {
	if req.Name == "" {
		return "", "", models.Validation("name is required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailRegex.MatchString(email) {
		return "", "", models.Validation("invalid email address")
	}

	if len(req.Password) < 8 {
		return "", "", models.Validation("password must be at least 8 characters")
	}

	if !req.Role.IsValid() {
		return "", "", models.Validation("role must be student or teacher")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return "", "", fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return "", "", models.Conflict("an account with this email already exists")
	}

	// Hash password
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         req.Role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", "", fmt.Errorf("failed to create user: %w", err)
	}

	return s.tokenGenerator.GenerateTokens(user.ID, string(user.Role))
}

// Login validates credentials and returns access and refresh tokens
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		// Same answer as a wrong password so accounts cannot be probed
		return "", "", models.Validation("invalid email or password")
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", "", models.Validation("invalid email or password")
	}

	return s.tokenGenerator.GenerateTokens(user.ID, string(user.Role))
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	userID, err := s.tokenGenerator.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", "", models.Validation("invalid or expired refresh token")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", "", fmt.Errorf("failed to get user: %w", err)
	}

	return s.tokenGenerator.GenerateTokens(user.ID, string(user.Role))
}

// GetProfile retrieves the viewer's profile
func (s *authService) GetProfile(ctx context.Context, userID int) (*models.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.Profile{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}
