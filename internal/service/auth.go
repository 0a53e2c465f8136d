package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golden-catering/internal/auth"
	"golden-catering/internal/dto"
	"golden-catering/internal/model"
	"golden-catering/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrEmailExists = errors.New("email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response never reveals which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	GoogleLogin(ctx context.Context, email, name, googleID string) (*dto.AuthResponse, error)
}

type authServiceImpl struct {
	userRepo repository.UserRepository
	tokens   *auth.JWTManager
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokens *auth.JWTManager,
) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, name, email, password string) error {
	user := &model.User{
		Name:  name,
		Email: email,
	}

	if password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		user.Password = &hash
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Google-only accounts have no hash and can never password-login.
	if user.Password == nil || !auth.CheckPassword(*user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User: dto.UserSummary{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

func (s *authServiceImpl) GoogleLogin(ctx context.Context, email, name, googleID string) (*dto.AuthResponse, error) {
	var userID int64

	user, err := s.userRepo.FindByEmailOrGoogleID(ctx, email, googleID)
	switch {
	case err == nil:
		// Existing account, possibly a password account upgrading to
		// Google sign-in through the shared email.
		userID = user.ID
		if err := s.userRepo.TouchLastLogin(ctx, userID); err != nil {
			return nil, fmt.Errorf("touch last login: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		created := &model.User{
			Name:     name,
			Email:    email,
			GoogleID: &googleID,
			Verified: true,
		}
		if err := s.userRepo.Create(ctx, created); err != nil {
			return nil, fmt.Errorf("create google user: %w", err)
		}
		userID = created.ID
	default:
		return nil, fmt.Errorf("find user: %w", err)
	}

	token, err := s.tokens.Generate(userID)
	if err != nil {
		return nil, err
	}

	verified := true
	return &dto.AuthResponse{
		Token: token,
		User: dto.UserSummary{
			ID:       userID,
			Name:     name,
			Email:    email,
			Verified: &verified,
		},
	}, nil
}

// isUniqueViolation pattern-matches the sqlite unique-constraint error so a
// duplicate email surfaces as a 400 rather than a generic 500.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
