package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/campusnotes/notes-client/internal/models"
	"github.com/campusnotes/notes-client/internal/notify"
	"github.com/campusnotes/notes-client/internal/render"
)

// LoadNotes fetches a page of the public listing with the session's filters
// applied and repaints the browse containers.
func (c *Controller) LoadNotes(ctx context.Context, page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadNotes(ctx, page)
}

func (c *Controller) loadNotes(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	gen := c.router.Begin(models.ViewBrowse)

	c.notifier.Begin()
	result, err := c.backend.ListNotes(ctx, page, c.perPage, c.session.Filters())
	c.notifier.End()

	if err != nil {
		c.notifier.Push("Failed to load notes", notify.LevelError)
		return
	}
	if !c.router.Current(models.ViewBrowse, gen) {
		return
	}

	c.session.SetPageCursor(models.ViewBrowse, result.CurrentPage)
	c.surface.Paint(render.ContainerNotesGrid, render.Notes(result.Notes, render.RolePublic))
	c.surface.Paint(render.ContainerNotesPagination, render.Pagination(*result, browseHref))
}

// LoadMyNotes fetches a page of the caller's own notes. Filters never
// apply here.
func (c *Controller) LoadMyNotes(ctx context.Context, page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadMyNotes(ctx, page)
}

func (c *Controller) loadMyNotes(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	gen := c.router.Begin(models.ViewMyNotes)

	c.notifier.Begin()
	result, err := c.backend.ListMyNotes(ctx, page, c.perPage)
	c.notifier.End()

	if err != nil {
		c.notifier.Push("Failed to load your notes", notify.LevelError)
		return
	}
	if !c.router.Current(models.ViewMyNotes, gen) {
		return
	}

	c.session.SetPageCursor(models.ViewMyNotes, result.CurrentPage)
	c.surface.Paint(render.ContainerMyNotesGrid, render.Notes(result.Notes, render.RoleOwner))
	c.surface.Paint(render.ContainerMyNotesPagination, render.Pagination(*result, myNotesHref))
}

// SearchNotes stores the search term alongside any existing filters and
// reloads the public listing from page one.
func (c *Controller) SearchNotes(ctx context.Context, term string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	filters := c.session.Filters()
	filters[models.FilterSearch] = term
	c.session.SetFilters(filters)

	c.loadNotes(ctx, 1)
}

// ApplyFilters replaces the filter set wholesale and reloads the public
// listing from page one. Empty values are pruned before use.
func (c *Controller) ApplyFilters(ctx context.Context, subject, course, semester, search string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session.SetFilters(models.FilterSet{
		models.FilterSubject:  subject,
		models.FilterCourse:   course,
		models.FilterSemester: semester,
		models.FilterSearch:   search,
	})

	c.loadNotes(ctx, 1)
}

// Download streams a note's file from the backend. The caller owns the
// returned body. Failures surface as a toast in addition to the error.
func (c *Controller) Download(ctx context.Context, noteID int) (io.ReadCloser, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	body, contentType, err := c.backend.Download(ctx, noteID)
	if err != nil {
		c.notifier.Push("Download failed", notify.LevelError)
		return nil, "", err
	}
	return body, contentType, nil
}

func browseHref(page int) string {
	return fmt.Sprintf("/browse?page=%d", page)
}

func myNotesHref(page int) string {
	return fmt.Sprintf("/my-notes?page=%d", page)
}
