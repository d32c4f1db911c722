package dto

import "github.com/campusnotes/notes-client/internal/models"

// LoginRequest is the credential payload sent to POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// RegisterRequest is the payload sent to POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// AuthCheckResponse is returned by GET /auth/check-auth.
type AuthCheckResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
}

// LoginResponse is returned by a successful POST /auth/login.
type LoginResponse struct {
	User *models.User `json:"user"`
}

// ErrorResponse is the backend's application-level failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}
