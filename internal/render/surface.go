// Package render projects note records and pagination envelopes into HTML
// fragments. Renderers are pure: they return content for a named container
// and never touch the document themselves; a Surface adapter performs the
// actual paint. All server-provided text passes through html/template's
// contextual escaping, so untrusted fields can never inject markup.
package render

import "html/template"

// Container identities the client paints into.
const (
	ContainerNotesGrid         = "notes-grid"
	ContainerNotesPagination   = "pagination"
	ContainerMyNotesGrid       = "my-notes-grid"
	ContainerMyNotesPagination = "my-notes-pagination"
	ContainerAdminContent      = "admin-content"
	ContainerSubjectFilter     = "subject-filter"
	ContainerCourseFilter      = "course-filter"
	ContainerSemesterFilter    = "semester-filter"
)

// Surface is the rendering port: container identity in, content out.
type Surface interface {
	Paint(container string, content template.HTML)
}

// MemorySurface retains the latest content per container. The gateway uses
// it as the document stand-in when composing full pages; tests use it to
// observe paints.
type MemorySurface struct {
	containers map[string]template.HTML
}

func NewMemorySurface() *MemorySurface {
	return &MemorySurface{containers: make(map[string]template.HTML)}
}

// Paint stores the content for a container, replacing any previous paint.
func (s *MemorySurface) Paint(container string, content template.HTML) {
	s.containers[container] = content
}

// Content returns the last painted content for a container.
func (s *MemorySurface) Content(container string) template.HTML {
	return s.containers[container]
}

// Role selects how much a listing reveals about each note.
type Role int

const (
	// RolePublic shows approved content only, with no status badge.
	RolePublic Role = iota
	// RoleOwner adds the approved/pending badge to the caller's own notes.
	RoleOwner
	// RoleAdmin adds the badge plus moderation actions on pending notes.
	RoleAdmin
)
