package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"storefront/internal/auth"
	"storefront/internal/errors"
	"storefront/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		email         string
		password      string
		phoneNumber   string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:        "successful registration",
			username:    "alice",
			email:       "a@x.com",
			password:    "secret1",
			phoneNumber: "555-1234",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:        "username already in use",
			username:    "alice",
			email:       "other@x.com",
			password:    "secret1",
			phoneNumber: "555-1234",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(&model.User{ID: 1, Username: "alice"}, nil)
			},
			expectedError: errors.ErrUsernameTaken,
		},
		{
			name:        "email already in use",
			username:    "bob",
			email:       "a@x.com",
			password:    "secret1",
			phoneNumber: "555-1234",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "bob").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{ID: 1, Email: "a@x.com"}, nil)
			},
			expectedError: errors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tokenStore := new(MockTokenStore)
			tt.setupMock(userRepo)

			svc := NewAuthService(userRepo, auth.NewJWTService("test-secret"), tokenStore)
			user, token, err := svc.Register(context.Background(), tt.username, tt.email, tt.password, tt.phoneNumber)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.username, user.Username)
				// password is stored one-way hashed, never verbatim
				assert.NotEqual(t, tt.password, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
			}
			userRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcryptCost)
	assert.NoError(t, err)
	alice := &model.User{ID: 1, Username: "alice", Email: "a@x.com", PasswordHash: string(hashed)}

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "alice",
			password: "secret1",
			setupMock: func(users *MockUserRepository, tokens *MockTokenStore) {
				users.On("FindByUsername", mock.Anything, "alice").Return(alice, nil)
				tokens.On("StoreRefreshToken", mock.Anything, mock.AnythingOfType("string"), uint(1), "alice", auth.RefreshTokenExpiry).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "secret1",
			setupMock: func(users *MockUserRepository, tokens *MockTokenStore) {
				users.On("FindByUsername", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			setupMock: func(users *MockUserRepository, tokens *MockTokenStore) {
				users.On("FindByUsername", mock.Anything, "alice").Return(alice, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tokenStore := new(MockTokenStore)
			tt.setupMock(userRepo, tokenStore)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(userRepo, jwtService, tokenStore)
			user, accessToken, refreshToken, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, accessToken)
			assert.NotEmpty(t, refreshToken)

			// the access token carries the profile snapshot
			claims, err := jwtService.ValidateToken(accessToken)
			assert.NoError(t, err)
			assert.Equal(t, uint(1), claims.UserID)
			assert.Equal(t, "alice", claims.Username)
			assert.Equal(t, "a@x.com", claims.Email)

			userRepo.AssertExpectations(t)
			tokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	alice := &model.User{ID: 1, Username: "alice", Email: "a@x.com"}

	t.Run("valid refresh token", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(alice)
		assert.NoError(t, err)

		userRepo := new(MockUserRepository)
		tokenStore := new(MockTokenStore)
		tokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(1), "alice", nil)
		userRepo.On("FindByID", mock.Anything, uint(1)).Return(alice, nil)

		svc := NewAuthService(userRepo, jwtService, tokenStore)
		accessToken, err := svc.RefreshToken(context.Background(), refreshToken)
		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
	})

	t.Run("revoked refresh token", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(alice)
		assert.NoError(t, err)

		userRepo := new(MockUserRepository)
		tokenStore := new(MockTokenStore)
		tokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(0), "", assert.AnError)

		svc := NewAuthService(userRepo, jwtService, tokenStore)
		_, err = svc.RefreshToken(context.Background(), refreshToken)
		assert.ErrorIs(t, err, errors.ErrInvalidRefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), jwtService, new(MockTokenStore))
		_, err := svc.RefreshToken(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, errors.ErrInvalidRefreshToken)
	})
}
