package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusnotes/notes-client/internal/models"
)

func TestRouterStartsAtHome(t *testing.T) {
	r := NewRouter(nil)
	assert.Equal(t, models.ViewHome, r.Active())
}

func TestShowPageActivatesExactlyOneView(t *testing.T) {
	r := NewRouter(nil)

	r.ShowPage(models.ViewBrowse)
	assert.Equal(t, models.ViewBrowse, r.Active())

	r.ShowPage(models.ViewAdmin)
	assert.Equal(t, models.ViewAdmin, r.Active())
}

func TestShowPageUnknownNameDeactivatesPrevious(t *testing.T) {
	dispatched := []models.ViewName{}
	r := NewRouter(func(name models.ViewName) {
		dispatched = append(dispatched, name)
	})

	r.ShowPage(models.ViewBrowse)
	r.ShowPage(models.ViewName("no-such-view"))

	assert.Equal(t, models.ViewName(""), r.Active())
	// the load dispatch is still attempted for unknown names
	assert.Equal(t, []models.ViewName{models.ViewBrowse, "no-such-view"}, dispatched)
}

func TestGenerationTokensInvalidateStaleLoads(t *testing.T) {
	r := NewRouter(nil)

	first := r.Begin(models.ViewBrowse)
	assert.True(t, r.Current(models.ViewBrowse, first))

	second := r.Begin(models.ViewBrowse)
	assert.False(t, r.Current(models.ViewBrowse, first), "stale token must not repaint")
	assert.True(t, r.Current(models.ViewBrowse, second))

	// generations are tracked per view
	other := r.Begin(models.ViewMyNotes)
	assert.True(t, r.Current(models.ViewBrowse, second))
	assert.True(t, r.Current(models.ViewMyNotes, other))
}
