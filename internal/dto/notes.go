package dto

import "github.com/campusnotes/notes-client/internal/models"

// AdminNotesResponse is returned by GET /admin/all-notes; the moderation
// listing is not paginated.
type AdminNotesResponse struct {
	Notes []models.NoteRecord `json:"notes"`
}

// VocabResponse carries one of the filter enumerations. The backend wraps
// each list under its own key (subjects/courses/semesters); exactly one of
// the fields is populated per endpoint.
type VocabResponse struct {
	Subjects  []string `json:"subjects,omitempty"`
	Courses   []string `json:"courses,omitempty"`
	Semesters []string `json:"semesters,omitempty"`
}

// UploadForm is the multipart form submitted alongside the file.
type UploadForm struct {
	Title       string `form:"title" binding:"required"`
	Subject     string `form:"subject" binding:"required"`
	Course      string `form:"course" binding:"required"`
	Semester    string `form:"semester" binding:"required"`
	Description string `form:"description"`
}

// Fields flattens the form into multipart field values.
func (u UploadForm) Fields() map[string]string {
	return map[string]string{
		"title":       u.Title,
		"subject":     u.Subject,
		"course":      u.Course,
		"semester":    u.Semester,
		"description": u.Description,
	}
}
