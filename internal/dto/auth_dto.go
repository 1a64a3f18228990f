package dto

import (
	"time"

	"github.com/noah-isme/edumanage-api/internal/models"
)

// RegisterRequest describes the payload for creating an account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=educator student"`
}

// LoginRequest describes the payload for signing in. Role must match the stored role.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=educator student"`
}

// UserResponse is the public view of a user. The secret is never exposed.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionResponse reports who, if anyone, is signed in.
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user"`
}

// NewUserResponse converts a model into a DTO.
func NewUserResponse(model models.User) UserResponse {
	return UserResponse{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Role:      string(model.Role),
		CreatedAt: model.CreatedAt,
	}
}

// NewSessionResponse converts an optional user into a session DTO.
func NewSessionResponse(user *models.User) SessionResponse {
	if user == nil {
		return SessionResponse{}
	}
	response := NewUserResponse(*user)
	return SessionResponse{Authenticated: true, User: &response}
}
