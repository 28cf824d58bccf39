package services

import (
	"context"
	"errors"

	"cloakroom-backend/internal/auth"
	"cloakroom-backend/internal/cache"
	"cloakroom-backend/internal/models"
	"cloakroom-backend/internal/repositories"
)

type UserService struct {
	Repo       *repositories.UserRepository
	JWTManager *auth.JWTManager
}

func NewUserService(repo *repositories.UserRepository, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		Repo:       repo,
		JWTManager: jwtManager,
	}
}

// Signup creates a new operator account with a hashed password
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, errors.New("name, email, and password are required")
	}

	existingUser, _ := s.Repo.GetByEmail(ctx, req.Email)
	if existingUser != nil && existingUser.ID != 0 {
		return nil, errors.New("user with this email already exists")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

// Login authenticates an operator and returns a JWT token
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}

	user, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}
	if !user.IsActive {
		return nil, errors.New("account is disabled")
	}

	// A cached credential hash skips the bcrypt compare on repeat logins
	if userID, ok := cache.GetCachedAuth(ctx, req.Email, req.Password); !ok || int(userID) != user.ID {
		if !auth.VerifyPassword(user.PasswordHash, req.Password) {
			cache.InvalidateAuth(ctx, req.Email, req.Password)
			return nil, errors.New("invalid email or password")
		}
		cache.CacheAuth(ctx, req.Email, req.Password, int64(user.ID))
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}
