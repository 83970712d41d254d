package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contact-directory/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Validator checks a request DTO against its struct tags and reports
// failures as a *models.ValidationError.
type Validator interface {
	Validate(s interface{}) error
}

// ServiceInterface defines methods for user account business logic.
type ServiceInterface interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.UserResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (*models.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.UserResponse, error)
}

type Service struct {
	userRepo  RepositoryInterface
	validator Validator
	jwtSecret string
	tokenTTL  time.Duration
}

func NewService(userRepo RepositoryInterface, validator Validator, jwtSecret string, tokenTTL time.Duration) ServiceInterface {
	return &Service{
		userRepo:  userRepo,
		validator: validator,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.UserResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	// 1. Check if the username is already taken.
	_, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("service.Register.FindByUsername: %w", err)
	}
	if err == nil {
		// User was found, username is taken
		return nil, models.ErrConflict
	}

	// 2. Hash the password.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("service.Register.HashPassword: %w", err)
	}

	// 3. Persist the new user. The repository maps a concurrent duplicate
	// username onto models.ErrConflict.
	newUser := &models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: string(hashedPassword),
	}
	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, models.ErrConflict
		}
		return nil, fmt.Errorf("service.Register.Create: %w", err)
	}

	return toUserResponse(created), nil
}

func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	// An unknown username and a wrong password are indistinguishable to the
	// caller.
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("service.Login.FindByUsername: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	return s.generateAuthResponse(user)
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*models.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("service.GetProfile: %w", err)
	}
	return toUserResponse(user), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.UserResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	var passwordHash *string
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("service.UpdateProfile.HashPassword: %w", err)
		}
		h := string(hashed)
		passwordHash = &h
	}

	updated, err := s.userRepo.Update(ctx, userID, req.Name, passwordHash)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("service.UpdateProfile: %w", err)
	}
	return toUserResponse(updated), nil
}

// generateAuthResponse signs a fresh access token carrying the caller
// identity claims used by the auth middleware.
func (s *Service) generateAuthResponse(user *models.User) (*models.AuthResponse, error) {
	claims := &models.JwtCustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := accessToken.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("service.generateAuthResponse: %w", err)
	}

	return &models.AuthResponse{
		AccessToken: signed,
		User:        toUserResponse(user),
	}, nil
}

func toUserResponse(user *models.User) *models.UserResponse {
	return &models.UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}
