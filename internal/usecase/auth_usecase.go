package usecase

import (
	"context"
	"strings"
	"time"

	"dormigo/internal/domain/entity"
	"dormigo/internal/domain/repository"
	"dormigo/internal/infrastructure/auth"
	"dormigo/pkg/errors"
	"dormigo/pkg/logger"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenService
}

func NewAuthUseCase(userRepo repository.UserRepository, tokens *auth.TokenService) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

type SignUpInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	University  string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

// SignUp registers a new student account. It does not issue a token; the
// client logs in afterwards.
func (uc *AuthUseCase) SignUp(ctx context.Context, input SignUpInput) (*entity.User, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, errors.Conflict("Email already exists")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		Email:        strings.ToLower(input.Email),
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PhoneNumber:  input.PhoneNumber,
		University:   input.University,
		Role:         entity.RoleStudent,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	return user, nil
}

// Login checks credentials and returns the user together with a bearer token.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	if !user.IsActive {
		return nil, errors.Unauthorized("Account is disabled", nil)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		logger.Warn("Login failed for %s: bad password", email)
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}

	token, err := uc.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}
