package controller

import (
	"context"

	"go.uber.org/zap"

	"github.com/campusnotes/notes-client/internal/dto"
	"github.com/campusnotes/notes-client/internal/models"
	"github.com/campusnotes/notes-client/internal/notify"
	appErrors "github.com/campusnotes/notes-client/pkg/errors"
)

// CheckAuthStatus asks the backend whether the session cookie identifies a
// user. Failures are logged, never surfaced; the user is simply treated as
// unauthenticated.
func (c *Controller) CheckAuthStatus(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checkAuthStatus(ctx)
}

func (c *Controller) checkAuthStatus(ctx context.Context) {
	user, err := c.backend.CheckAuth(ctx)
	if err != nil {
		c.log.Warn("auth_check_failed", zap.Error(err))
		c.session.SetUser(nil)
		return
	}
	c.session.SetUser(user)
}

// Login submits credentials. Success sets the user, notifies, navigates
// home. Failure surfaces the server message when one exists.
func (c *Controller) Login(ctx context.Context, req dto.LoginRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notifier.Begin()
	user, err := c.backend.Login(ctx, req)
	c.notifier.End()

	if err != nil {
		c.notifier.Push(failureMessage(err, "Login failed", "Login failed. Please try again."), notify.LevelError)
		return
	}

	c.session.SetUser(user)
	c.notifier.Push("Login successful!", notify.LevelSuccess)
	c.showPage(ctx, models.ViewHome)
}

// Register creates an account and navigates to the login view on success.
// It never authenticates as a side effect.
func (c *Controller) Register(ctx context.Context, req dto.RegisterRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notifier.Begin()
	err := c.backend.Register(ctx, req)
	c.notifier.End()

	if err != nil {
		c.notifier.Push(failureMessage(err, "Registration failed", "Registration failed. Please try again."), notify.LevelError)
		return
	}

	c.notifier.Push("Registration successful! Please login.", notify.LevelSuccess)
	c.showPage(ctx, models.ViewLogin)
}

// Logout terminates the backend session. Local state is cleared regardless
// of the network outcome; the user's intent is unambiguous and a stale
// authenticated view is worse than a failed server-side cleanup.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.backend.Logout(ctx)

	c.session.SetUser(nil)

	if err != nil {
		c.log.Warn("logout_failed", zap.Error(err))
		c.notifier.Push("Logout failed", notify.LevelError)
	} else {
		c.notifier.Push("Logged out successfully", notify.LevelSuccess)
	}

	c.showPage(ctx, models.ViewHome)
}

// failureMessage picks the user-facing text for a failed operation: the
// backend's own message when it sent one, a generic fallback otherwise, and
// a retry hint for transport failures.
func failureMessage(err error, fallback, networkFallback string) string {
	if appErrors.IsNetwork(err) {
		return networkFallback
	}
	return appErrors.BackendMessage(err, fallback)
}
