package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redmonkez12/go-task-api/internal/logging"
	"github.com/redmonkez12/go-task-api/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// Service handles authentication business logic
type Service struct {
	userRepo      *user.Repository
	tokenService  TokenService
	logger        *logging.Logger
	tokenDuration time.Duration
}

func NewService(
	userRepo *user.Repository,
	tokenService TokenService,
	logger *logging.Logger,
	tokenDuration time.Duration,
) *Service {
	return &Service{
		userRepo:      userRepo,
		tokenService:  tokenService,
		logger:        logger,
		tokenDuration: tokenDuration,
	}
}

// UserSummary is the minimal user shape returned with a token
type UserSummary struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthTokens is the result of a successful login or registration
type AuthTokens struct {
	Token     string      `json:"token"`
	TokenType string      `json:"type"`
	ExpiresIn int64       `json:"expires_in"`
	User      UserSummary `json:"user"`
}

// Login authenticates a user by email and password and issues an access token
func (s *Service) Login(ctx context.Context, email, password string) (*AuthTokens, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	existingUser, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !VerifyPassword(existingUser.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(existingUser)
}

// Register creates a new user account and logs it in immediately.
// The follow-up authentication re-runs the login path against the stored
// record, so the persisted hash is verified before a token is trusted.
func (s *Service) Register(ctx context.Context, name, email, password, passwordConfirm string) (*AuthTokens, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, user.ErrDuplicateEmail
	}

	if password != passwordConfirm {
		return nil, ErrPasswordMismatch
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := s.userRepo.Create(ctx, name, email, passwordHash)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return nil, user.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", newUser.ID)

	return s.Login(ctx, email, password)
}

// issueTokens creates an access token and packages it with the user summary
func (s *Service) issueTokens(u *user.User) (*AuthTokens, error) {
	token, err := s.tokenService.CreateToken(u.ID, u.Email, s.tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	return &AuthTokens{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.tokenDuration.Seconds()),
		User: UserSummary{
			ID:    u.ID,
			Email: u.Email,
			Name:  u.Name,
		},
	}, nil
}
