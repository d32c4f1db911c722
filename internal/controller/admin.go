package controller

import (
	"context"

	"github.com/campusnotes/notes-client/internal/models"
	"github.com/campusnotes/notes-client/internal/notify"
	"github.com/campusnotes/notes-client/internal/render"
	appErrors "github.com/campusnotes/notes-client/pkg/errors"
)

// LoadAdmin fetches the moderation queue and repaints the admin container.
func (c *Controller) LoadAdmin(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadAdmin(ctx)
}

func (c *Controller) loadAdmin(ctx context.Context) {
	gen := c.router.Begin(models.ViewAdmin)

	c.notifier.Begin()
	notes, err := c.backend.AdminNotes(ctx)
	c.notifier.End()

	if err != nil {
		if appErrors.IsNetwork(err) {
			c.notifier.Push("Failed to load admin data", notify.LevelError)
		} else {
			c.notifier.Push("Failed to load notes", notify.LevelError)
		}
		return
	}
	if !c.router.Current(models.ViewAdmin, gen) {
		return
	}

	c.surface.Paint(render.ContainerAdminContent, render.AdminNotes(notes))
}

// ApproveNote posts an approval and reloads the moderation listing.
func (c *Controller) ApproveNote(ctx context.Context, noteID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.backend.ApproveNote(ctx, noteID); err != nil {
		c.notifier.Push("Failed to approve note", notify.LevelError)
		return
	}

	c.notifier.Push("Note approved successfully", notify.LevelSuccess)
	c.loadAdmin(ctx)
}

// RejectNote deletes a submission after an explicit confirmation. Without
// confirmation no request is sent and the listing is untouched. There is
// no undo.
func (c *Controller) RejectNote(ctx context.Context, noteID int, confirmed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !confirmed {
		return
	}

	if err := c.backend.RejectNote(ctx, noteID); err != nil {
		c.notifier.Push("Failed to reject note", notify.LevelError)
		return
	}

	c.notifier.Push("Note rejected successfully", notify.LevelSuccess)
	c.loadAdmin(ctx)
}
