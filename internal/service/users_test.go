package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukydev/garage-service/internal/auth"
	"github.com/ukydev/garage-service/internal/models"
	"github.com/ukydev/garage-service/internal/store"
)

func newUserFixture(t *testing.T) (*UserService, store.DocumentStore) {
	t.Helper()
	documentStore := store.NewFileStore(filepath.Join(t.TempDir(), "garage.json"))
	authService := auth.NewService("test-secret", 0)
	return NewUserService(documentStore, authService), documentStore
}

func validRegistration() models.RegisterRequest {
	return models.RegisterRequest{
		Username: "mike",
		Password: "workshop-pass-1",
		FullName: "Mike Mechanic",
		Mobile:   "0700333444",
		Role:     models.RoleMechanic,
	}
}

func TestUserService_Register(t *testing.T) {
	users, documentStore := newUserFixture(t)
	ctx := context.Background()

	userID, err := users.Register(ctx, validRegistration())
	assert.NoError(t, err)
	assert.NotEmpty(t, userID)

	doc, _ := documentStore.Load(ctx)
	assert.Len(t, doc.Users, 1)
	created := doc.Users[0]
	assert.Equal(t, userID, created.ID)
	assert.Equal(t, models.RoleMechanic, created.Role)
	// Secrets are stored hashed, never verbatim.
	assert.NotEmpty(t, created.PasswordHash)
	assert.NotEqual(t, "workshop-pass-1", created.PasswordHash)
}

func TestUserService_RegisterValidation(t *testing.T) {
	users, documentStore := newUserFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(req *models.RegisterRequest)
	}{
		{"missing username", func(req *models.RegisterRequest) { req.Username = "" }},
		{"missing password", func(req *models.RegisterRequest) { req.Password = "" }},
		{"missing full name", func(req *models.RegisterRequest) { req.FullName = "" }},
		{"missing mobile", func(req *models.RegisterRequest) { req.Mobile = "" }},
		{"admin role not registrable", func(req *models.RegisterRequest) { req.Role = models.RoleAdmin }},
		{"unknown role", func(req *models.RegisterRequest) { req.Role = "janitor" }},
		{"short username", func(req *models.RegisterRequest) { req.Username = "ab" }},
		{"weak password", func(req *models.RegisterRequest) { req.Password = "short" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegistration()
			tt.mutate(&req)
			_, err := users.Register(ctx, req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	doc, _ := documentStore.Load(ctx)
	assert.Empty(t, doc.Users)
}

func TestUserService_RegisterDuplicateUsername(t *testing.T) {
	users, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := users.Register(ctx, validRegistration())
	assert.NoError(t, err)

	req := validRegistration()
	req.FullName = "Another Mike"
	_, err = users.Register(ctx, req)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUserService_Authenticate(t *testing.T) {
	users, _ := newUserFixture(t)
	ctx := context.Background()

	userID, err := users.Register(ctx, validRegistration())
	assert.NoError(t, err)

	user, token, err := users.Authenticate(ctx, "mike", "workshop-pass-1")
	assert.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.NotEmpty(t, token)

	_, _, err = users.Authenticate(ctx, "mike", "wrong-pass")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, _, err = users.Authenticate(ctx, "nobody", "workshop-pass-1")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
