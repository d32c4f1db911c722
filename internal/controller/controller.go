// Package controller implements the client session controller: it holds
// one browser session's state, routes view transitions, issues backend
// requests, and paints render output onto the surface. One Controller
// corresponds to one backend session (the API client's cookie jar).
package controller

import (
	"context"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/campusnotes/notes-client/internal/dto"
	"github.com/campusnotes/notes-client/internal/models"
	"github.com/campusnotes/notes-client/internal/notify"
	"github.com/campusnotes/notes-client/internal/render"
	"github.com/campusnotes/notes-client/internal/session"
	"github.com/campusnotes/notes-client/internal/view"
)

// Placeholder shown in the upload form's file chooser when no file is
// selected.
const UploadPlaceholder = "Choose file or drag and drop"

type backend interface {
	CheckAuth(ctx context.Context) (*models.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (*models.User, error)
	Register(ctx context.Context, req dto.RegisterRequest) error
	Logout(ctx context.Context) error
	Upload(ctx context.Context, fields map[string]string, fileName string, file io.Reader, userID *int) error
	ListNotes(ctx context.Context, page, perPage int, filters models.FilterSet) (*models.PageResult, error)
	ListMyNotes(ctx context.Context, page, perPage int) (*models.PageResult, error)
	AdminNotes(ctx context.Context) ([]models.NoteRecord, error)
	ApproveNote(ctx context.Context, noteID int) error
	RejectNote(ctx context.Context, noteID int) error
	Subjects(ctx context.Context) ([]string, error)
	Courses(ctx context.Context) ([]string, error)
	Semesters(ctx context.Context) ([]string, error)
	Download(ctx context.Context, noteID int) (io.ReadCloser, string, error)
}

// Controller ties session state, router, fetchers, and renderers together.
// Operations serialize on the internal mutex; handler logic never overlaps
// for one session.
type Controller struct {
	mu sync.Mutex

	backend  backend
	session  *session.State
	router   *view.Router
	surface  render.Surface
	notifier *notify.Center
	log      *zap.Logger
	perPage  int

	uploadLabel string

	// loadCtx carries the context of the operation currently driving a
	// router transition; the router's load dispatch runs synchronously
	// under the same lock. pendingPage overrides the default page-1 load
	// for deep links into a paginated view.
	loadCtx     context.Context
	pendingPage int
}

func New(b backend, surface render.Surface, notifier *notify.Center, log *zap.Logger, perPage int) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	if perPage <= 0 {
		perPage = 12
	}

	c := &Controller{
		backend:     b,
		session:     session.NewState(),
		surface:     surface,
		notifier:    notifier,
		log:         log,
		perPage:     perPage,
		uploadLabel: UploadPlaceholder,
	}
	c.router = view.NewRouter(c.dispatchLoad)
	return c
}

// Startup runs the initialisation sequence: filter vocabulary, silent auth
// check, home view.
func (c *Controller) Startup(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loadFilterVocab(ctx)
	c.checkAuthStatus(ctx)
	c.showPage(ctx, models.ViewHome)
}

// ShowPage transitions to the named view and runs its load action.
func (c *Controller) ShowPage(ctx context.Context, name models.ViewName) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showPage(ctx, name)
}

// ShowPageAt transitions to a paginated view with the load landing on the
// given page instead of the default first page.
func (c *Controller) ShowPageAt(ctx context.Context, name models.ViewName, page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingPage = page
	c.showPage(ctx, name)
}

func (c *Controller) showPage(ctx context.Context, name models.ViewName) {
	c.loadCtx = ctx
	c.router.ShowPage(name)
	c.loadCtx = nil
	c.pendingPage = 0
}

// dispatchLoad is the router's load hook. Views without remote data are
// no-ops, including unrecognised names.
func (c *Controller) dispatchLoad(name models.ViewName) {
	ctx := c.loadCtx
	if ctx == nil {
		ctx = context.Background()
	}
	page := c.pendingPage
	if page < 1 {
		page = 1
	}

	switch name {
	case models.ViewBrowse:
		c.loadNotes(ctx, page)
	case models.ViewMyNotes:
		c.loadMyNotes(ctx, page)
	case models.ViewAdmin:
		c.loadAdmin(ctx)
	}
}

// ActiveView returns the currently visible view.
func (c *Controller) ActiveView() models.ViewName {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.router.Active()
}

// User returns the session's current user, or nil.
func (c *Controller) User() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.User()
}

// Filters returns the session's active filter set.
func (c *Controller) Filters() models.FilterSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Filters()
}

// Visibility projects the current user onto the UI element groups.
func (c *Controller) Visibility() session.Visibility {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Visibility()
}

// UploadLabel returns the upload view's file-chooser label.
func (c *Controller) UploadLabel() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uploadLabel
}

// SetUploadLabel records the chosen file's name for the upload view.
func (c *Controller) SetUploadLabel(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if name == "" {
		name = UploadPlaceholder
	}
	c.uploadLabel = name
}

// Toasts returns the unexpired notifications.
func (c *Controller) Toasts() []notify.Toast {
	return c.notifier.Active()
}

// Busy reports whether any operation is still in flight.
func (c *Controller) Busy() bool {
	return c.notifier.Busy()
}
