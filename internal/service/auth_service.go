package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"portfolio/internal/auth"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// DefaultRole is assigned to users registered without an explicit role.
const DefaultRole = "user"

// AuthService handles registration, credential verification and JWT sessions.
type AuthService interface {
	Register(ctx context.Context, username, email, password, role string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (accessToken, refreshToken string, user *model.User, err error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
	ChangePassword(ctx context.Context, userID uint, newPassword string) (bool, error)
}

type authService struct {
	userRepo    repository.UserRepository
	credentials *CredentialStore
	jwtService  *auth.JWTService
	tokenStore  auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	credentials *CredentialStore,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		credentials: credentials,
		jwtService:  jwtService,
		tokenStore:  tokenStore,
	}
}

// Register creates a new user with a fresh salt and hashed password. Username
// and email collisions are reported as distinct conflicts so the caller can
// prompt for a different value.
func (s *authService) Register(ctx context.Context, username, email, password, role string) (*model.User, error) {
	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, apperrors.ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	salt, err := s.credentials.GenerateSalt()
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = DefaultRole
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: s.credentials.HashPassword(password, salt),
		Salt:         salt,
		Role:         role,
		Active:       true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate verifies username and password. Unknown user, inactive account
// and wrong password all collapse into ErrInvalidCredentials so the response
// shape never reveals which check failed.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !user.Active {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !s.credentials.VerifyPassword(password, user.Salt, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates the user, stamps last-login and issues access and
// refresh tokens.
func (s *authService) Login(ctx context.Context, username, password string) (string, string, *model.User, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", "", nil, err
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return "", "", nil, fmt.Errorf("update last login: %w", err)
	}
	user.LastLogin = &now

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.ID, user.Username, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, user, nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}
	if claims.ID == "" {
		return "", apperrors.ErrInvalidCredentials
	}

	storedUserID, storedUsername, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}
	if storedUserID != claims.UserID || storedUsername != claims.Username {
		return "", apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.UserID, claims.Username, claims.Role)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return apperrors.ErrInvalidCredentials
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}

// ChangePassword regenerates salt and hash for the user. Returns false, not an
// error, when the user does not exist.
func (s *authService) ChangePassword(ctx context.Context, userID uint, newPassword string) (bool, error) {
	salt, err := s.credentials.GenerateSalt()
	if err != nil {
		return false, err
	}
	updated, err := s.userRepo.UpdatePassword(ctx, userID, salt, s.credentials.HashPassword(newPassword, salt))
	if err != nil {
		return false, fmt.Errorf("update password: %w", err)
	}
	return updated, nil
}
