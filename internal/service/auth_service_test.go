package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"portfolio/internal/auth"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uint, salt, passwordHash string) (bool, error) {
	args := m.Called(ctx, id, salt, passwordHash)
	return args.Bool(0), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, username string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, username, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func newTestAuthService(repo *MockUserRepository, tokenStore *MockTokenStore) AuthService {
	return NewAuthService(repo, NewCredentialStore(), auth.NewJWTService("test-secret"), tokenStore)
}

// storedUser builds a user row the way Register would have persisted it.
func storedUser(id uint, username, password string, active bool) *model.User {
	store := NewCredentialStore()
	salt, _ := store.GenerateSalt()
	return &model.User{
		ID:           id,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: store.HashPassword(password, salt),
		Salt:         salt,
		Role:         "user",
		Active:       active,
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		email         string
		role          string
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedRole  string
	}{
		{
			name:     "successful registration with default role",
			username: "alice",
			email:    "alice@x.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", mock.Anything, "alice@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: "user",
		},
		{
			name:     "explicit role is kept",
			username: "root",
			email:    "root@x.com",
			role:     "admin",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "root").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", mock.Anything, "root@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: "admin",
		},
		{
			name:     "duplicate username is a conflict",
			username: "alice",
			email:    "new@x.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(&model.User{Username: "alice"}, nil)
			},
			expectedError: apperrors.ErrDuplicateUsername,
		},
		{
			name:     "duplicate email is a distinct conflict",
			username: "bob",
			email:    "alice@x.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "bob").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", mock.Anything, "alice@x.com").Return(&model.User{Email: "alice@x.com"}, nil)
			},
			expectedError: apperrors.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := newTestAuthService(mockRepo, new(MockTokenStore))
			user, err := service.Register(context.Background(), tt.username, tt.email, "secret1", tt.role)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
				assert.Equal(t, tt.expectedRole, user.Role)
				assert.True(t, user.Active)
				assert.NotEmpty(t, user.Salt)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotContains(t, user.PasswordHash, "secret1")
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_RegisterThenAuthenticate(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound).Once()
	mockRepo.On("FindByEmail", mock.Anything, "alice@x.com").Return(nil, gorm.ErrRecordNotFound).Once()

	var created *model.User
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.User)
			created.ID = 7
		}).Return(nil)

	service := newTestAuthService(mockRepo, new(MockTokenStore))
	_, err := service.Register(context.Background(), "alice", "alice@x.com", "secret1", "")
	assert.NoError(t, err)

	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(created, nil)

	// Same plaintext succeeds.
	user, err := service.Authenticate(context.Background(), "alice", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)

	// A different plaintext fails.
	user, err = service.Authenticate(context.Background(), "alice", "secret2")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestAuthService_Authenticate(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		password  string
		setupMock func(*MockUserRepository)
	}{
		{
			name:     "unknown user",
			username: "ghost",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
			},
		},
		{
			name:     "inactive account fails even with the right password",
			username: "alice",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(storedUser(1, "alice", "secret1", false), nil)
			},
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(storedUser(1, "alice", "secret1", true), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := newTestAuthService(mockRepo, new(MockTokenStore))
			user, err := service.Authenticate(context.Background(), tt.username, tt.password)

			// All failure modes collapse into the same outcome.
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
			assert.Nil(t, user)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockTokenStore := new(MockTokenStore)

	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(storedUser(3, "alice", "secret1", true), nil)
	mockRepo.On("UpdateLastLogin", mock.Anything, uint(3), mock.AnythingOfType("time.Time")).Return(nil)
	mockTokenStore.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(3), "alice", auth.RefreshTokenExpiry).Return(nil)

	service := newTestAuthService(mockRepo, mockTokenStore)
	accessToken, refreshToken, user, err := service.Login(context.Background(), "alice", "secret1")

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotNil(t, user)
	assert.NotNil(t, user.LastLogin)

	mockRepo.AssertExpectations(t)
	mockTokenStore.AssertExpectations(t)
}

func TestAuthService_ChangePassword(t *testing.T) {
	tests := []struct {
		name        string
		userID      uint
		rowsMatched bool
		want        bool
	}{
		{"existing user", 1, true, true},
		{"missing user returns false, not an error", 99, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockRepo.On("UpdatePassword", mock.Anything, tt.userID, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
				Return(tt.rowsMatched, nil)

			service := newTestAuthService(mockRepo, new(MockTokenStore))
			updated, err := service.ChangePassword(context.Background(), tt.userID, "newsecret")

			assert.NoError(t, err)
			assert.Equal(t, tt.want, updated)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(5, "alice", "user")
	assert.NoError(t, err)

	t.Run("valid refresh token", func(t *testing.T) {
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(5), "alice", nil)

		service := newTestAuthService(new(MockUserRepository), mockTokenStore)
		accessToken, err := service.RefreshToken(context.Background(), refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		mockTokenStore.AssertExpectations(t)
	})

	t.Run("token missing from store", func(t *testing.T) {
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(0), "", assert.AnError)

		service := newTestAuthService(new(MockUserRepository), mockTokenStore)
		_, err := service.RefreshToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("garbage token", func(t *testing.T) {
		service := newTestAuthService(new(MockUserRepository), new(MockTokenStore))
		_, err := service.RefreshToken(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
