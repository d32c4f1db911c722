package controller

import (
	"context"
	"io"

	"github.com/campusnotes/notes-client/internal/dto"
	"github.com/campusnotes/notes-client/internal/notify"
)

// Upload posts a multipart submission with the current user's ID attached
// when authenticated. Acceptance rules stay with the backend; the client
// performs no type or size checks.
func (c *Controller) Upload(ctx context.Context, form dto.UploadForm, fileName string, file io.Reader) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var userID *int
	if user := c.session.User(); user != nil {
		id := user.ID
		userID = &id
	}

	c.notifier.Begin()
	err := c.backend.Upload(ctx, form.Fields(), fileName, file, userID)
	c.notifier.End()

	if err != nil {
		c.notifier.Push(failureMessage(err, "Upload failed", "Upload failed. Please try again."), notify.LevelError)
		return
	}

	c.notifier.Push("Note uploaded successfully! It will be reviewed by admin.", notify.LevelSuccess)
	c.uploadLabel = UploadPlaceholder
}
