package service

import (
	"context"
	"errors"
	"time"

	"github.com/tylerhq/tyler-go/internal/crypto"
	"github.com/tylerhq/tyler-go/internal/model"
	"github.com/tylerhq/tyler-go/internal/repository"
)

var (
	ErrSignupFieldsRequired   = errors.New("email, password, and full name are required")
	ErrPasswordFieldsRequired = errors.New("current password and new password are required")
	ErrEmailTaken             = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrWrongPassword          = errors.New("current password is incorrect")
	ErrUserNotFound           = repository.ErrUserNotFound
)

// UserStore is the account persistence surface the services depend on.
// *repository.UserRepository satisfies it; tests use an in-memory fake.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
	UpdateProfile(ctx context.Context, id int64, fullName, phone, bio string) (*model.User, error)
}

// AuthService handles signup, signin, password change, and profile logic.
type AuthService struct {
	users     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Signup registers a new account and returns it with an auth token.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (model.AuthResponse, error) {
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return model.AuthResponse{}, ErrSignupFieldsRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{User: model.PublicUser(user), Token: token}, nil
}

// Signin authenticates an account and returns it with a fresh token.
// Unknown email and wrong password report the same error so the endpoint
// cannot be used to enumerate accounts.
func (s *AuthService) Signin(ctx context.Context, req model.SigninRequest) (model.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{User: model.PublicUser(user), Token: token}, nil
}

// ChangePassword replaces the password of an authenticated account after
// verifying the current one. Outstanding tokens stay valid until expiry.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req model.ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return ErrPasswordFieldsRequired
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	match, err := crypto.VerifyPassword(req.CurrentPassword, user.PasswordHash)
	if err != nil {
		return err
	}
	if !match {
		return ErrWrongPassword
	}

	hash, err := crypto.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.users.UpdatePassword(ctx, userID, hash)
}

// GetProfile returns the account data for an authenticated user.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return model.PublicUser(user), nil
}

// UpdateProfile overwrites the editable profile fields.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, req model.UpdateProfileRequest) (model.UserResponse, error) {
	user, err := s.users.UpdateProfile(ctx, userID, req.FullName, req.Phone, req.Bio)
	if err != nil {
		return model.UserResponse{}, err
	}
	return model.PublicUser(user), nil
}
