package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ukydev/garage-service/internal/auth"
	"github.com/ukydev/garage-service/internal/models"
	"github.com/ukydev/garage-service/internal/store"
)

// UserService handles user registration and credential checks. Users are
// created only through admin-invoked registration (or the seed tool) and
// are immutable afterwards.
type UserService struct {
	store store.DocumentStore
	auth  *auth.Service
}

// NewUserService creates a new user service
func NewUserService(documentStore store.DocumentStore, authService *auth.Service) *UserService {
	return &UserService{
		store: documentStore,
		auth:  authService,
	}
}

// Register creates a new user and returns its id. Only mechanic and
// customer roles may be registered over the API.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	if req.Username == "" || req.Password == "" || req.FullName == "" || req.Mobile == "" {
		return "", validationErr("username, password, full name and mobile are required")
	}
	if !models.IsRegistrableRole(req.Role) {
		return "", validationErr("role must be mechanic or customer")
	}
	if err := s.auth.ValidateUsername(req.Username); err != nil {
		return "", validationErr("%s", err)
	}
	if err := s.auth.ValidatePassword(req.Password); err != nil {
		return "", validationErr("%s", err)
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return "", err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		Mobile:       req.Mobile,
		Role:         req.Role,
		CreatedAt:    time.Now(),
	}

	err = s.store.Update(ctx, func(doc *models.Document) error {
		if doc.FindUserByUsername(req.Username) != nil {
			return fmt.Errorf("%w: username already exists", ErrConflict)
		}
		doc.Users = append(doc.Users, user)
		return nil
	})
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

// Authenticate verifies a username/password pair and returns the user with
// a signed session token.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, string, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, "", err
	}

	user := doc.FindUserByUsername(username)
	if user == nil {
		return nil, "", auth.ErrInvalidCredentials
	}
	if !s.auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", auth.ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
