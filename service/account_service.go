package service

import (
	"context"
	"errors"
	"strings"

	"hireedocs-backend/models"
	"hireedocs-backend/repository"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// AccountService handles owner registration and login
type AccountService struct {
	userRepo *repository.UserRepository
}

// AccountServiceOption is a functional option for AccountService
type AccountServiceOption func(*AccountService)

// WithUserRepository sets the user repository
func WithUserRepository(repo *repository.UserRepository) AccountServiceOption {
	return func(s *AccountService) {
		s.userRepo = repo
	}
}

// NewAccountService creates a new account service
func NewAccountService(opts ...AccountServiceOption) *AccountService {
	s := &AccountService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterRequest represents a request to register an owner account
type RegisterRequest struct {
	Email    string
	Password string
	Name     string
}

// RegisterResult represents the result of registering
type RegisterResult struct {
	User *models.User
}

// Register creates an owner account with a bcrypt-hashed password
func (s *AccountService) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &RegisterResult{User: user}, nil
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResult represents a successful login
type LoginResult struct {
	User *models.User
}

// Login verifies credentials. Unknown email and wrong password return the
// same error.
func (s *AccountService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &LoginResult{User: user}, nil
}
