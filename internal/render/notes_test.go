package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusnotes/notes-client/internal/models"
)

func note(id int, approved bool) models.NoteRecord {
	return models.NoteRecord{
		ID:         id,
		Title:      "Linear Algebra Summary",
		Subject:    "Math",
		Course:     "MATH201",
		Semester:   "Fall 2025",
		UserID:     9,
		FileName:   "summary.pdf",
		IsApproved: approved,
	}
}

func TestNotesEmptyListRendersPlaceholder(t *testing.T) {
	out := string(Notes(nil, RolePublic))
	assert.Equal(t, noNotesPlaceholder, out)

	out = string(Notes([]models.NoteRecord{}, RoleAdmin))
	assert.Equal(t, noNotesPlaceholder, out)
}

func TestNotesPublicRoleShowsNoBadge(t *testing.T) {
	out := string(Notes([]models.NoteRecord{note(1, true)}, RolePublic))
	assert.NotContains(t, out, "status-badge")
	assert.NotContains(t, out, "Approve")
}

func TestNotesOwnerRoleShowsStatusBadge(t *testing.T) {
	out := string(Notes([]models.NoteRecord{note(1, false)}, RoleOwner))
	assert.Contains(t, out, "status-pending")
	assert.Contains(t, out, "Pending")
	assert.NotContains(t, out, "Approve</button>")

	out = string(Notes([]models.NoteRecord{note(2, true)}, RoleOwner))
	assert.Contains(t, out, "status-approved")
	assert.Contains(t, out, "Approved")
}

func TestNotesAdminRoleModerationOnlyForPending(t *testing.T) {
	out := string(Notes([]models.NoteRecord{note(3, false)}, RoleAdmin))
	assert.Contains(t, out, "/admin/notes/3/approve")
	assert.Contains(t, out, "/admin/notes/3/reject")

	out = string(Notes([]models.NoteRecord{note(4, true)}, RoleAdmin))
	assert.NotContains(t, out, "/approve")
	assert.NotContains(t, out, "/reject")
}

func TestNotesEscapesServerProvidedText(t *testing.T) {
	hostile := note(5, true)
	hostile.Title = `<script>alert("xss")</script>`
	hostile.Description = `<img src=x onerror="steal()">`
	hostile.UploaderName = `<b>evil</b>`

	out := string(Notes([]models.NoteRecord{hostile}, RolePublic))

	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<img")
	assert.NotContains(t, out, "<b>evil</b>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestNotesUploaderFallback(t *testing.T) {
	n := note(6, true)
	n.UploaderName = ""
	out := string(Notes([]models.NoteRecord{n}, RolePublic))
	assert.Contains(t, out, "User #9")
}

func TestNotesFileLabelPreference(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		original string
		want     string
	}{
		{"pdf stored name wins", "abc123.pdf", "notes.docx", "abc123.pdf"},
		{"original beats non-pdf stored", "abc123.bin", "notes.docx", "notes.docx"},
		{"stored when nothing else", "abc123.bin", "", "abc123.bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := note(7, true)
			n.FileName = tt.stored
			n.OriginalFileName = tt.original
			out := string(Notes([]models.NoteRecord{n}, RolePublic))
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestNotesWithoutFileOmitsDownload(t *testing.T) {
	n := note(8, true)
	n.FileName = ""
	out := string(Notes([]models.NoteRecord{n}, RolePublic))
	assert.False(t, strings.Contains(out, "Download</a>"))
}

func TestAdminNotesRendersTypeAndDate(t *testing.T) {
	n := note(9, false)
	n.FileName = "slides.pptx"
	n.UploadDate = "2025-11-02T10:00:00"

	out := string(AdminNotes([]models.NoteRecord{n}))

	assert.Contains(t, out, "Type: PPTX")
	assert.Contains(t, out, "Uploaded: 2025-11-02T10:00:00")
	assert.Contains(t, out, "status-pending")
	assert.Contains(t, out, "/admin/notes/9/approve")
}

func TestAdminNotesApprovedHasNoActions(t *testing.T) {
	out := string(AdminNotes([]models.NoteRecord{note(10, true)}))
	assert.NotContains(t, out, "/approve")
	assert.Contains(t, out, "status-approved")
}

func TestMemorySurfaceKeepsLatestPaint(t *testing.T) {
	s := NewMemorySurface()
	s.Paint(ContainerNotesGrid, "<p>one</p>")
	s.Paint(ContainerNotesGrid, "<p>two</p>")

	assert.EqualValues(t, "<p>two</p>", s.Content(ContainerNotesGrid))
	assert.EqualValues(t, "", s.Content(ContainerAdminContent))
}

func TestOptionsEscapesValues(t *testing.T) {
	out := string(Options([]string{"Math", `<script>x</script>`}))
	assert.Contains(t, out, `<option value="Math">Math</option>`)
	assert.NotContains(t, out, "<script>")
}
