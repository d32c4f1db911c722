// Package session holds the client-side session state: the authenticated
// user, the active filter set, and per-view page cursors. Nothing here
// performs I/O and nothing here can fail; every method is a pure state
// transition. The state lives for one browser session and is never
// persisted.
package session

import "github.com/campusnotes/notes-client/internal/models"

type State struct {
	user    *models.User
	filters models.FilterSet
	cursors map[models.ViewName]int
}

func NewState() *State {
	return &State{
		filters: models.FilterSet{},
		cursors: make(map[models.ViewName]int),
	}
}

// User returns the current user, or nil when unauthenticated.
func (s *State) User() *models.User {
	return s.user
}

// SetUser replaces the current user wholesale. Callers owning a UI must
// recompute visibility after every transition.
func (s *State) SetUser(u *models.User) {
	s.user = u
}

// Filters returns a copy of the active filter set.
func (s *State) Filters() models.FilterSet {
	return s.filters.Clone()
}

// SetFilters replaces the filter set wholesale, pruning empty values so the
// stored set never carries a key without a constraint.
func (s *State) SetFilters(f models.FilterSet) {
	s.filters = f.Prune()
}

// ClearFilters drops every active constraint.
func (s *State) ClearFilters() {
	s.filters = models.FilterSet{}
}

// PageCursor returns the last loaded page for a view, defaulting to 1.
func (s *State) PageCursor(view models.ViewName) int {
	if page, ok := s.cursors[view]; ok {
		return page
	}
	return 1
}

// SetPageCursor records the page a view currently shows.
func (s *State) SetPageCursor(view models.ViewName, page int) {
	s.cursors[view] = page
}

// Reset returns the state to its startup shape: no user, no filters, no
// cursors.
func (s *State) Reset() {
	s.user = nil
	s.filters = models.FilterSet{}
	s.cursors = make(map[models.ViewName]int)
}

// Visibility is the pure projection of the current user onto the three
// disjoint element groups the UI toggles.
type Visibility struct {
	Auth  bool // elements requiring an authenticated user
	Anon  bool // elements requiring no user
	Admin bool // elements requiring an admin user
}

// Visibility computes the element-group visibility for the current user.
// Idempotent; it must be applied after every user transition and nowhere
// else.
func (s *State) Visibility() Visibility {
	return Visibility{
		Auth:  s.user != nil,
		Anon:  s.user == nil,
		Admin: s.user != nil && s.user.IsAdmin,
	}
}
