package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Skotchmaster/catalog_service/internal/hash"
	"github.com/Skotchmaster/catalog_service/internal/models"
	"github.com/Skotchmaster/catalog_service/internal/repo"
	"github.com/Skotchmaster/catalog_service/internal/tokens"
	"gorm.io/gorm"
)

type UserService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	User  *models.User
	Token string
}

func validateCredentials(username, password string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}
	return nil
}

func (s *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetUsers(ctx)
}

// Register is the self-service create. The role is forced to customer no
// matter what the caller submitted.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}
	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Username:     username,
		PasswordHash: pwHash,
		Role:         models.RoleCustomer,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies the credentials and exchanges them for a bearer token. Bad
// username and bad password come back as the same error.
func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}
	user, err := s.Repo.UserExists(ctx, username, password)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	token, err := tokens.SignAccessToken(user.ID, user.Username, user.Role, s.JWTSecret)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: token}, nil
}

type UpdateUserRequest struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Version  int    `json:"version"`
}

// UpdateUser replaces the whole row, re-hashing the submitted password. Role
// is taken as given here, the route is manager-only.
func (s *UserService) UpdateUser(ctx context.Context, id uint, req UpdateUserRequest) (*models.User, error) {
	if req.ID != id {
		return nil, ErrNotFound
	}
	if err := validateCredentials(req.Username, req.Password); err != nil {
		return nil, err
	}
	switch req.Role {
	case models.RoleCustomer, models.RoleEmployee, models.RoleManager:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		ID:           req.ID,
		Username:     req.Username,
		PasswordHash: pwHash,
		Role:         req.Role,
		Version:      req.Version,
	}
	if err := s.Repo.ReplaceUser(ctx, &user); err != nil {
		switch {
		case errors.Is(err, repo.ErrStaleVersion):
			return nil, ErrStaleWrite
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}
	return &user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
