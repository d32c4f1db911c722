package api

import (
	"context"
	"net/http"

	"github.com/campusnotes/notes-client/internal/dto"
	"github.com/campusnotes/notes-client/internal/models"
)

// CheckAuth asks the backend whether the jarred session cookie identifies a
// user. A nil user with nil error means "not authenticated".
func (c *Client) CheckAuth(ctx context.Context) (*models.User, error) {
	var res dto.AuthCheckResponse
	if err := c.doJSON(ctx, http.MethodGet, "/auth/check-auth", nil, nil, &res); err != nil {
		return nil, err
	}
	if !res.Authenticated {
		return nil, nil
	}
	return res.User, nil
}

// Login submits credentials and returns the authenticated user. The session
// cookie issued by the backend lands in the client's jar.
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*models.User, error) {
	var res dto.LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, req, &res); err != nil {
		return nil, err
	}
	return res.User, nil
}

// Register creates an account. It does not authenticate the user.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/register", nil, req, nil)
}

// Logout asks the backend to terminate the session.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}
