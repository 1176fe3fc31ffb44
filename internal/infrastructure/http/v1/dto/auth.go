package dto

import (
	"time"

	"accountease/internal/domain/auth"
)

// RegisterRequest for user registration.
type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	DisplayName  string `json:"displayName"`
	BusinessName string `json:"businessName"`
}

// ToAuthRequest converts to domain request.
func (r RegisterRequest) ToAuthRequest() auth.RegisterRequest {
	return auth.RegisterRequest{
		Email:        r.Email,
		Password:     r.Password,
		DisplayName:  r.DisplayName,
		BusinessName: r.BusinessName,
	}
}

// LoginRequest for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ToCredentials converts to domain credentials.
func (r LoginRequest) ToCredentials() auth.Credentials {
	return auth.Credentials{Email: r.Email, Password: r.Password}
}

// UserResponse is the public user representation.
type UserResponse struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	DisplayName  string     `json:"displayName,omitempty"`
	BusinessName string     `json:"businessName,omitempty"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// FromUser creates UserResponse from domain user.
func FromUser(u *auth.User) UserResponse {
	return UserResponse{
		ID:           u.ID.String(),
		Email:        u.Email,
		DisplayName:  u.DisplayName,
		BusinessName: u.BusinessName,
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt,
	}
}

// SessionResponse carries the signed access token.
type SessionResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	TokenType   string    `json:"tokenType"`
}

// FromSession creates SessionResponse from domain session.
func FromSession(s *auth.Session) SessionResponse {
	return SessionResponse{
		AccessToken: s.AccessToken,
		ExpiresAt:   s.ExpiresAt,
		TokenType:   s.TokenType,
	}
}

// LoginResponse combines session and user.
type LoginResponse struct {
	Session SessionResponse `json:"session"`
	User    UserResponse    `json:"user"`
}
