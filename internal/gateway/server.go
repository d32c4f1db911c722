// Package gateway serves the client as server-rendered pages: one
// controller per browser session, identified by a signed cookie, painting
// into an in-memory surface the shell template composes into full
// documents.
package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campusnotes/notes-client/internal/dto"
	"github.com/campusnotes/notes-client/internal/models"
	"github.com/campusnotes/notes-client/internal/render"
	"github.com/campusnotes/notes-client/pkg/config"
	"github.com/campusnotes/notes-client/pkg/logger"
	"github.com/campusnotes/notes-client/pkg/middleware/requestid"
)

const contextSessionKey = "browserSession"

// Server is the web gateway.
type Server struct {
	cfg      *config.Config
	log      *zap.Logger
	metrics  *Metrics
	registry *sessionRegistry
	engine   *gin.Engine
}

// New assembles the gin engine, middleware, and routes.
func New(cfg *config.Config, log *zap.Logger) *Server {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := NewMetrics()
	s := &Server{
		cfg:      cfg,
		log:      log,
		metrics:  metrics,
		registry: newSessionRegistry(cfg, log, metrics),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestid.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(metrics.Middleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.Metrics.Enabled {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	pages := r.Group("/", s.withSession())
	{
		pages.GET("/", s.handlePage(models.ViewHome))
		pages.GET("/browse", s.handleBrowse)
		pages.GET("/upload", s.handlePage(models.ViewUpload))
		pages.GET("/my-notes", s.handleMyNotes)
		pages.GET("/admin", s.handlePage(models.ViewAdmin))
		pages.GET("/login", s.handlePage(models.ViewLogin))
		pages.GET("/register", s.handlePage(models.ViewRegister))
		pages.GET("/view/:name", s.handleNamedPage)

		pages.POST("/login", s.handleLogin)
		pages.POST("/register", s.handleRegister)
		pages.POST("/logout", s.handleLogout)
		pages.POST("/upload", s.handleUpload)
		pages.POST("/browse/filters", s.handleFilters)
		pages.POST("/browse/search", s.handleSearch)

		pages.GET("/notes/:id/download", s.handleDownload)
		pages.POST("/admin/notes/:id/approve", s.handleApprove)
		pages.POST("/admin/notes/:id/reject", s.handleReject)
	}

	s.engine = r
	return s
}

// Run starts the HTTP listener and the session janitor.
func (s *Server) Run(ctx context.Context) error {
	go s.registry.janitor(ctx, time.Minute)

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.log.Sugar().Infow("gateway starting", "addr", addr, "env", s.cfg.Env)
	return s.engine.Run(addr)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// withSession resolves or creates the browser session identified by the
// signed cookie.
func (s *Server) withSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *browserSession

		if raw, err := c.Cookie(s.cfg.Session.CookieName); err == nil {
			if id, err := parseSessionID(s.cfg.Session.Secret, raw); err == nil {
				sess = s.registry.Get(id)
			}
		}

		if sess == nil {
			created, err := s.registry.Create(c.Request.Context())
			if err != nil {
				s.log.Error("session_create_failed", zap.Error(err))
				c.String(http.StatusInternalServerError, "session unavailable")
				c.Abort()
				return
			}
			sess = created

			token, err := signSessionID(s.cfg.Session.Secret, sess.id, s.cfg.Session.TTL)
			if err != nil {
				s.log.Error("session_sign_failed", zap.Error(err))
				c.String(http.StatusInternalServerError, "session unavailable")
				c.Abort()
				return
			}
			c.SetCookie(s.cfg.Session.CookieName, token, int(s.cfg.Session.TTL.Seconds()), "/", "", false, true)
		}

		c.Set(contextSessionKey, sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) *browserSession {
	v, _ := c.Get(contextSessionKey)
	sess, _ := v.(*browserSession)
	return sess
}

// renderPage composes the full document from the session's painted
// containers and the controller's transient state.
func (s *Server) renderPage(c *gin.Context, sess *browserSession) {
	ctrl := sess.ctrl
	user := ctrl.User()

	data := pageData{
		Active:      ctrl.ActiveView(),
		Vis:         ctrl.Visibility(),
		Toasts:      ctrl.Toasts(),
		Busy:        ctrl.Busy(),
		UploadLabel: ctrl.UploadLabel(),
		Search:      ctrl.Filters()[models.FilterSearch],

		NotesGrid:         sess.surface.Content(render.ContainerNotesGrid),
		NotesPagination:   sess.surface.Content(render.ContainerNotesPagination),
		MyNotesGrid:       sess.surface.Content(render.ContainerMyNotesGrid),
		MyNotesPagination: sess.surface.Content(render.ContainerMyNotesPagination),
		AdminContent:      sess.surface.Content(render.ContainerAdminContent),
		SubjectOptions:    sess.surface.Content(render.ContainerSubjectFilter),
		CourseOptions:     sess.surface.Content(render.ContainerCourseFilter),
		SemesterOptions:   sess.surface.Content(render.ContainerSemesterFilter),
	}
	if user != nil {
		data.Username = user.Username
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := shellTmpl.Execute(c.Writer, data); err != nil {
		s.log.Error("render_failed", zap.Error(err))
	}
}

// handlePage shows a static view (no load action beyond the router's own).
func (s *Server) handlePage(name models.ViewName) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		sess.ctrl.ShowPage(c.Request.Context(), name)
		s.renderPage(c, sess)
	}
}

// handleNamedPage routes arbitrary view names, including unknown ones; the
// router deactivates the previous view either way.
func (s *Server) handleNamedPage(c *gin.Context) {
	sess := currentSession(c)
	sess.ctrl.ShowPage(c.Request.Context(), models.ViewName(c.Param("name")))
	s.renderPage(c, sess)
}

func (s *Server) handleBrowse(c *gin.Context) {
	sess := currentSession(c)
	page := pageParam(c)
	sess.ctrl.ShowPageAt(c.Request.Context(), models.ViewBrowse, page)
	s.renderPage(c, sess)
}

func (s *Server) handleMyNotes(c *gin.Context) {
	sess := currentSession(c)
	page := pageParam(c)
	sess.ctrl.ShowPageAt(c.Request.Context(), models.ViewMyNotes, page)
	s.renderPage(c, sess)
}

func (s *Server) handleLogin(c *gin.Context) {
	sess := currentSession(c)

	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		sess.ctrl.ShowPage(c.Request.Context(), models.ViewLogin)
		s.renderPage(c, sess)
		return
	}

	sess.ctrl.Login(c.Request.Context(), req)
	s.renderPage(c, sess)
}

func (s *Server) handleRegister(c *gin.Context) {
	sess := currentSession(c)

	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		sess.ctrl.ShowPage(c.Request.Context(), models.ViewRegister)
		s.renderPage(c, sess)
		return
	}

	sess.ctrl.Register(c.Request.Context(), req)
	s.renderPage(c, sess)
}

func (s *Server) handleLogout(c *gin.Context) {
	sess := currentSession(c)
	sess.ctrl.Logout(c.Request.Context())
	s.renderPage(c, sess)
}

func (s *Server) handleUpload(c *gin.Context) {
	sess := currentSession(c)

	var form dto.UploadForm
	if err := c.ShouldBind(&form); err != nil {
		sess.ctrl.ShowPage(c.Request.Context(), models.ViewUpload)
		s.renderPage(c, sess)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		sess.ctrl.ShowPage(c.Request.Context(), models.ViewUpload)
		s.renderPage(c, sess)
		return
	}
	file, err := header.Open()
	if err != nil {
		sess.ctrl.ShowPage(c.Request.Context(), models.ViewUpload)
		s.renderPage(c, sess)
		return
	}
	defer file.Close()

	sess.ctrl.SetUploadLabel(header.Filename)
	sess.ctrl.Upload(c.Request.Context(), form, header.Filename, file)
	s.renderPage(c, sess)
}

func (s *Server) handleFilters(c *gin.Context) {
	sess := currentSession(c)
	sess.ctrl.ApplyFilters(c.Request.Context(),
		c.PostForm("subject"),
		c.PostForm("course"),
		c.PostForm("semester"),
		c.PostForm("search"),
	)
	s.renderPage(c, sess)
}

func (s *Server) handleSearch(c *gin.Context) {
	sess := currentSession(c)
	sess.ctrl.SearchNotes(c.Request.Context(), c.PostForm("search"))
	s.renderPage(c, sess)
}

func (s *Server) handleDownload(c *gin.Context) {
	sess := currentSession(c)

	noteID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		s.renderPage(c, sess)
		return
	}

	body, contentType, err := sess.ctrl.Download(c.Request.Context(), noteID)
	if err != nil {
		s.renderPage(c, sess)
		return
	}
	defer body.Close()

	name := c.Query("name")
	if name == "" {
		name = "note"
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		s.log.Warn("download_stream_failed", zap.Error(err))
	}
}

func (s *Server) handleApprove(c *gin.Context) {
	sess := currentSession(c)
	if noteID, err := strconv.Atoi(c.Param("id")); err == nil {
		sess.ctrl.ApproveNote(c.Request.Context(), noteID)
	}
	s.renderPage(c, sess)
}

func (s *Server) handleReject(c *gin.Context) {
	sess := currentSession(c)
	if noteID, err := strconv.Atoi(c.Param("id")); err == nil {
		confirmed := c.PostForm("confirmed") == "1"
		sess.ctrl.RejectNote(c.Request.Context(), noteID, confirmed)
	}
	s.renderPage(c, sess)
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
