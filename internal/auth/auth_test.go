package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ukydev/garage-service/internal/models"
)

func TestNewService(t *testing.T) {
	service := NewService("", 0)
	assert.NotNil(t, service)
	assert.NotEmpty(t, service.jwtSecret)
	assert.Equal(t, 24*time.Hour, service.tokenExp)

	service = NewService("custom-secret", time.Hour)
	assert.Equal(t, []byte("custom-secret"), service.jwtSecret)
	assert.Equal(t, time.Hour, service.tokenExp)
}

func TestService_HashPassword(t *testing.T) {
	service := NewService("", 0)

	password := "testpassword123"
	hash, err := service.HashPassword(password)

	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
}

func TestService_CheckPassword(t *testing.T) {
	service := NewService("", 0)

	password := "testpassword123"
	hash, _ := service.HashPassword(password)

	// Test correct password
	assert.True(t, service.CheckPassword(password, hash))

	// Test incorrect password
	assert.False(t, service.CheckPassword("wrongpassword", hash))
}

func TestService_GenerateToken(t *testing.T) {
	service := NewService("", 0)

	user := &models.User{
		ID:       uuid.NewString(),
		Username: "testuser",
		Role:     models.RoleAdmin,
	}

	token, err := service.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestService_ValidateToken(t *testing.T) {
	service := NewService("", 0)

	user := &models.User{
		ID:       uuid.NewString(),
		Username: "testuser",
		Role:     models.RoleMechanic,
	}

	token, _ := service.GenerateToken(user)

	// Test valid token
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Role, claims.Role)

	// Test invalid token
	_, err = service.ValidateToken("invalid-token")
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)

	// Test token with Bearer prefix
	_, err = service.ValidateToken("Bearer " + token)
	assert.NoError(t, err)

	// Test token signed with a different secret
	other := NewService("some-other-secret", 0)
	foreign, _ := other.GenerateToken(user)
	_, err = service.ValidateToken(foreign)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_ValidateToken_Expired(t *testing.T) {
	service := NewService("", 0)
	service.tokenExp = -time.Hour

	user := &models.User{
		ID:       uuid.NewString(),
		Username: "testuser",
		Role:     models.RoleCustomer,
	}

	token, _ := service.GenerateToken(user)
	_, err := service.ValidateToken(token)
	assert.Equal(t, ErrExpiredToken, err)
}

func TestService_ExtractTokenFromHeader(t *testing.T) {
	service := NewService("", 0)

	// Test valid header
	token := "valid-token"
	header := "Bearer " + token
	extracted, err := service.ExtractTokenFromHeader(header)
	assert.NoError(t, err)
	assert.Equal(t, token, extracted)

	// Test empty header
	_, err = service.ExtractTokenFromHeader("")
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)

	// Test malformed header
	_, err = service.ExtractTokenFromHeader("Bearer")
	assert.Equal(t, ErrInvalidToken, err)
	_, err = service.ExtractTokenFromHeader("Basic abc123")
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_ValidatePassword(t *testing.T) {
	service := NewService("", 0)

	assert.NoError(t, service.ValidatePassword("longenough1"))
	assert.Error(t, service.ValidatePassword("short"))
}

func TestService_ValidateUsername(t *testing.T) {
	service := NewService("", 0)

	assert.NoError(t, service.ValidateUsername("mechanic1"))
	assert.Error(t, service.ValidateUsername("ab"))
	assert.Error(t, service.ValidateUsername(string(make([]byte, 51))))
}
