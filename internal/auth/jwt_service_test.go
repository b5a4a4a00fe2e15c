package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"storefront/internal/model"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")
	user := &model.User{ID: 1, Username: "alice", Email: "a@x.com", PhoneNumber: "555-1234"}

	token, err := svc.GenerateAccessToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "555-1234", claims.PhoneNumber)

	// 6 hour validity window
	assert.WithinDuration(t, time.Now().Add(AccessTokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateAccessToken(&model.User{ID: 1, Username: "alice"})
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RefreshTokenID(t *testing.T) {
	svc := NewJWTService("test-secret")

	tokenID, token, err := svc.GenerateRefreshToken(&model.User{ID: 1, Username: "alice"})
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	extracted, err := svc.ExtractTokenID(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, extracted)

	// access tokens carry no JTI
	accessToken, err := svc.GenerateAccessToken(&model.User{ID: 1, Username: "alice"})
	assert.NoError(t, err)
	_, err = svc.ExtractTokenID(accessToken)
	assert.Error(t, err)
}
