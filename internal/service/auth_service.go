package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/auriter/internal/auth"
	"github.com/lshigami/auriter/internal/dto"
	"github.com/lshigami/auriter/internal/model"
	"github.com/lshigami/auriter/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	SetRole(ctx context.Context, user *model.User, req dto.SetRoleRequest) (*dto.SetRoleResponse, error)
	Me(user *model.User) dto.UserResponse
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.JWTMaker
}

func NewAuthService(userRepo repository.UserRepository, tokens *auth.JWTMaker) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := normalizeEmail(req.Email)
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, newError(ErrInvalidInput, "User already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleJobSeeker,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, _, err := s.tokens.CreateUserToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	log.Info().Uint("userID", user.ID).Msg("User registered")
	return &dto.RegisterResponse{Success: true, Token: token, RequiresRole: true}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(ErrUnauthorized, "Invalid credentials")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if err := auth.ComparePassword(user.PasswordHash, req.Password); err != nil {
		return nil, newError(ErrUnauthorized, "Invalid credentials")
	}

	token, _, err := s.tokens.CreateUserToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Success: true, Token: token, Role: user.Role}, nil
}

func (s *authService) SetRole(ctx context.Context, user *model.User, req dto.SetRoleRequest) (*dto.SetRoleResponse, error) {
	switch req.Role {
	case model.RoleJobSeeker:
	case model.RoleRecruiter:
		if req.Company == nil || strings.TrimSpace(req.Company.Name) == "" {
			return nil, newError(ErrInvalidInput, "Company information is required for recruiters")
		}
		user.CompanyName = strings.TrimSpace(req.Company.Name)
		user.CompanyWebsite = strings.TrimSpace(req.Company.Website)
		user.CompanyDescription = strings.TrimSpace(req.Company.Description)
	default:
		return nil, newError(ErrInvalidInput, "Invalid role")
	}
	user.Role = req.Role
	user.RoleSelected = true

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user role: %w", err)
	}
	token, _, err := s.tokens.CreateUserToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.SetRoleResponse{Success: true, Token: token, User: s.Me(user)}, nil
}

func (s *authService) Me(user *model.User) dto.UserResponse {
	var out dto.UserResponse
	if err := copier.Copy(&out, user); err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to map user")
	}
	return out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
