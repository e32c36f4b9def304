package models

import (
	"time"
)

// Role represents user roles in the system
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleMechanic Role = "mechanic"
	RoleCustomer Role = "customer"
)

// User represents a user in the system. Role is fixed at creation.
type User struct {
	ID           string    `json:"id" bson:"id"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"password_hash" bson:"password_hash"`
	FullName     string    `json:"full_name" bson:"full_name"`
	Mobile       string    `json:"mobile" bson:"mobile"`
	Role         Role      `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// Public returns a copy of the user safe to serve to clients.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterRequest represents an admin-invoked user registration request
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Mobile   string `json:"mobile"`
	Role     Role   `json:"role"`
}

// RegisterResponse carries the id of the newly created user
type RegisterResponse struct {
	UserID string `json:"user_id"`
}

// Claims represents JWT claims
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Exp      int64  `json:"exp"`
}

// IsValidRole checks if a role is valid
func IsValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleMechanic, RoleCustomer:
		return true
	default:
		return false
	}
}

// IsRegistrableRole checks if a role may be assigned through registration.
// Admin accounts are created only by the seed tool, never over the API.
func IsRegistrableRole(role Role) bool {
	return role == RoleMechanic || role == RoleCustomer
}
