// Package view implements the router over the client's top-level screens.
// At most one view is active at a time; switching views triggers the load
// action associated with the newly shown view.
package view

import "github.com/campusnotes/notes-client/internal/models"

// Router tracks the active view and a per-view generation counter used to
// discard stale fetch completions: a response repaints only if the
// generation it captured is still current.
type Router struct {
	active models.ViewName
	gens   map[models.ViewName]uint64
	onLoad func(models.ViewName)
}

// NewRouter creates a router starting at the home view. onLoad is invoked
// on every transition with the target name; views without remote data
// ignore the dispatch.
func NewRouter(onLoad func(models.ViewName)) *Router {
	return &Router{
		active: models.ViewHome,
		gens:   make(map[models.ViewName]uint64),
		onLoad: onLoad,
	}
}

// Active returns the currently visible view, or "" when the last transition
// targeted an unknown name.
func (r *Router) Active() models.ViewName {
	return r.active
}

// ShowPage transitions to the named view. The previous view is always
// deactivated; an unknown name activates nothing but the load dispatch is
// still attempted.
func (r *Router) ShowPage(name models.ViewName) {
	if name.Known() {
		r.active = name
	} else {
		r.active = ""
	}

	if r.onLoad != nil {
		r.onLoad(name)
	}
}

// Begin starts a load for a view and returns the generation token the
// eventual completion must present to Current.
func (r *Router) Begin(view models.ViewName) uint64 {
	r.gens[view]++
	return r.gens[view]
}

// Current reports whether a completion holding gen may still repaint the
// view's container.
func (r *Router) Current(view models.ViewName, gen uint64) bool {
	return r.gens[view] == gen
}
