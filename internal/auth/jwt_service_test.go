package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_AccessTokenRoundtrip(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateAccessToken(42, "alice", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Empty(t, claims.ID) // access tokens carry no JTI
}

func TestJWTService_RefreshTokenCarriesID(t *testing.T) {
	service := NewJWTService("test-secret")

	tokenID, token, err := service.GenerateRefreshToken(42, "alice", "user")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	extracted, err := service.ExtractTokenID(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, extracted)
}

func TestJWTService_ValidateToken(t *testing.T) {
	service := NewJWTService("test-secret")
	token, err := service.GenerateAccessToken(1, "alice", "user")
	assert.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		service *JWTService
		wantErr bool
	}{
		{"valid token", token, service, false},
		{"garbage token", "not-a-token", service, true},
		{"wrong secret", token, NewJWTService("other-secret"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.service.ValidateToken(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
