// Package notify implements the transient notification stack and the
// shared loading indicator.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Level classifies a toast for presentation.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// TTL is how long a toast stays visible. Toasts are purely additive and
// auto-expire; nothing dismisses them early.
const TTL = 5 * time.Second

// Toast is one transient notification.
type Toast struct {
	ID        string
	Message   string
	Level     Level
	ExpiresAt time.Time
}

// Center stacks toasts and counts in-flight operations. The loading
// indicator is busy while the count is above zero, so one operation's
// completion can no longer hide the indicator while another is pending.
type Center struct {
	mu       sync.Mutex
	toasts   []Toast
	inflight int
	now      func() time.Time
	log      *zap.Logger
}

func NewCenter(log *zap.Logger) *Center {
	if log == nil {
		log = zap.NewNop()
	}
	return &Center{now: time.Now, log: log}
}

// Push adds a toast to the stack.
func (c *Center) Push(message string, level Level) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.toasts = append(c.toasts, Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Level:     level,
		ExpiresAt: c.now().Add(TTL),
	})
	c.log.Debug("toast", zap.String("level", string(level)), zap.String("message", message))
}

// Active returns the unexpired toasts, pruning the rest.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if t.ExpiresAt.After(now) {
			kept = append(kept, t)
		}
	}
	c.toasts = kept

	out := make([]Toast, len(kept))
	copy(out, kept)
	return out
}

// Begin marks one operation in flight.
func (c *Center) Begin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight++
}

// End marks one operation complete.
func (c *Center) End() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight > 0 {
		c.inflight--
	}
}

// Busy reports whether any operation is still in flight.
func (c *Center) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight > 0
}
