package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campusnotes/notes-client/internal/api"
	"github.com/campusnotes/notes-client/internal/controller"
	"github.com/campusnotes/notes-client/internal/notify"
	"github.com/campusnotes/notes-client/internal/render"
	"github.com/campusnotes/notes-client/pkg/config"
	appErrors "github.com/campusnotes/notes-client/pkg/errors"
)

// browserSession is one browser's controller plus its document stand-in.
type browserSession struct {
	id       string
	ctrl     *controller.Controller
	surface  *render.MemorySurface
	lastSeen time.Time
}

// sessionRegistry owns the live browser sessions. Each session gets its own
// API client (and therefore its own backend cookie jar); the registry is
// purely in-memory, so sessions vanish on restart just as the original
// client's state vanished on reload.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*browserSession

	cfg     *config.Config
	log     *zap.Logger
	metrics *Metrics
	ttl     time.Duration
}

func newSessionRegistry(cfg *config.Config, log *zap.Logger, metrics *Metrics) *sessionRegistry {
	return &sessionRegistry{
		sessions: make(map[string]*browserSession),
		cfg:      cfg,
		log:      log,
		metrics:  metrics,
		ttl:      cfg.Session.TTL,
	}
}

// Get returns the session for id, or nil when it is unknown or expired.
func (r *sessionRegistry) Get(id string) *browserSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil
	}
	if time.Since(s.lastSeen) > r.ttl {
		delete(r.sessions, id)
		return nil
	}
	s.lastSeen = time.Now()
	return s
}

// Create builds a fresh browser session and runs the controller's startup
// sequence (filter vocabulary, silent auth check, home view).
func (r *sessionRegistry) Create(ctx context.Context) (*browserSession, error) {
	backend, err := api.New(r.cfg.Backend, r.log, r.metrics)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "create backend client")
	}

	surface := render.NewMemorySurface()
	notifier := notify.NewCenter(r.log)
	ctrl := controller.New(backend, surface, notifier, r.log, r.cfg.Backend.PerPage)
	ctrl.Startup(ctx)

	s := &browserSession{
		id:       uuid.NewString(),
		ctrl:     ctrl,
		surface:  surface,
		lastSeen: time.Now(),
	}

	r.mu.Lock()
	r.sessions[s.id] = s
	size := len(r.sessions)
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.SetActiveSessions(size)
	}
	r.log.Info("session_created", zap.String("session_id", s.id))
	return s, nil
}

// Sweep drops sessions idle beyond the TTL. Run periodically.
func (r *sessionRegistry) Sweep() {
	r.mu.Lock()
	for id, s := range r.sessions {
		if time.Since(s.lastSeen) > r.ttl {
			delete(r.sessions, id)
		}
	}
	size := len(r.sessions)
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.SetActiveSessions(size)
	}
}

// janitor sweeps until ctx is done.
func (r *sessionRegistry) janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// sessionClaims is the signed payload of the gateway's session cookie.
type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// signSessionID wraps a session ID in an HMAC-signed token for the cookie.
func signSessionID(secret, sessionID string, ttl time.Duration) (string, error) {
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// parseSessionID validates the cookie token and extracts the session ID.
func parseSessionID(secret, raw string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || claims.SessionID == "" {
		return "", appErrors.Clone(appErrors.ErrUnauthorized, "invalid session token")
	}
	return claims.SessionID, nil
}
