package handlers

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/garage-service/internal/auth"
	"github.com/ukydev/garage-service/internal/models"
	"github.com/ukydev/garage-service/internal/service"
)

// AuthHandler handles login and admin-invoked user registration
type AuthHandler struct {
	users *service.UserService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(users *service.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, token, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeServiceError(w, err)
		return
	}

	log.WithFields(log.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("user logged in")

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Token: token,
		User:  user.Public(),
	})
}

// Register handles admin-invoked user registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, err := h.users.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.WithFields(log.Fields{
		"user_id": userID,
		"role":    req.Role,
	}).Info("user registered")

	writeJSON(w, http.StatusCreated, models.RegisterResponse{UserID: userID})
}
