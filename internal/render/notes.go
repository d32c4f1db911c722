package render

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/campusnotes/notes-client/internal/models"
)

// Placeholder rendered instead of an empty container when a listing has no
// items.
const noNotesPlaceholder = `<div class="no-notes">No notes found.</div>`

var noteCardTmpl = template.Must(template.New("note-card").Parse(`{{range .}}<div class="note-card">
  <div class="note-header">
    <div>
      <div class="note-title">{{.Title}}</div>
      {{if .ShowBadge}}<span class="status-badge {{.BadgeClass}}">{{.BadgeLabel}}</span>{{end}}
    </div>
  </div>
  <div class="note-meta">
    <span class="meta-subject">{{.Subject}}</span>
    <span class="meta-course">{{.Course}}</span>
    <span class="meta-semester">{{.Semester}}</span>
  </div>
  {{if .Description}}<div class="note-description">{{.Description}}</div>{{end}}
  <div class="note-meta">
    <span class="meta-uploader">{{.Uploader}}</span>
    <span class="meta-downloads">{{.Downloads}} downloads</span>
    <span class="meta-file">{{.FileLabel}}</span>
  </div>
  <div class="note-actions">
    {{if .DownloadHref}}<a class="btn btn-primary" href="{{.DownloadHref}}" download="{{.DownloadName}}">Download</a>{{end}}
    {{if .ShowModeration}}<form method="post" action="{{.ApproveHref}}"><button class="btn btn-primary" type="submit">Approve</button></form>
    <form method="post" action="{{.RejectHref}}" onsubmit="return confirm('Are you sure you want to reject this note? This action cannot be undone.')"><input type="hidden" name="confirmed" value="1"><button class="btn btn-danger" type="submit">Reject</button></form>{{end}}
  </div>
</div>
{{end}}`))

type noteCard struct {
	Title          string
	Subject        string
	Course         string
	Semester       string
	Description    string
	Uploader       string
	Downloads      int
	FileLabel      string
	DownloadHref   string
	DownloadName   string
	ShowBadge      bool
	BadgeClass     string
	BadgeLabel     string
	ShowModeration bool
	ApproveHref    string
	RejectHref     string
}

// Notes renders a listing into note cards. An empty listing yields the
// fixed "no results" placeholder, never an empty container. The role flag
// controls the status badge (owner and admin) and the moderation actions
// (admin only, pending notes only).
func Notes(items []models.NoteRecord, role Role) template.HTML {
	if len(items) == 0 {
		return template.HTML(noNotesPlaceholder)
	}

	cards := make([]noteCard, 0, len(items))
	for _, note := range items {
		card := noteCard{
			Title:       note.Title,
			Subject:     note.Subject,
			Course:      note.Course,
			Semester:    note.Semester,
			Description: note.Description,
			Uploader:    uploaderLabel(note),
			Downloads:   note.Downloads(),
			FileLabel:   fileLabel(note),
		}
		if note.FileName != "" {
			card.DownloadName = note.DownloadName()
			card.DownloadHref = fmt.Sprintf("/notes/%d/download?name=%s", note.ID, url.QueryEscape(card.DownloadName))
		}
		if role == RoleOwner || role == RoleAdmin {
			card.ShowBadge = true
			if note.IsApproved {
				card.BadgeClass = "status-approved"
				card.BadgeLabel = "Approved"
			} else {
				card.BadgeClass = "status-pending"
				card.BadgeLabel = "Pending"
			}
		}
		if role == RoleAdmin && !note.IsApproved {
			card.ShowModeration = true
			card.ApproveHref = fmt.Sprintf("/admin/notes/%d/approve", note.ID)
			card.RejectHref = fmt.Sprintf("/admin/notes/%d/reject", note.ID)
		}
		cards = append(cards, card)
	}

	var sb strings.Builder
	if err := noteCardTmpl.Execute(&sb, cards); err != nil {
		return template.HTML(noNotesPlaceholder)
	}
	return template.HTML(sb.String())
}

func uploaderLabel(note models.NoteRecord) string {
	if note.UploaderName != "" {
		return note.UploaderName
	}
	return fmt.Sprintf("User #%d", note.UserID)
}

// fileLabel prefers a PDF stored name, then the original upload name, then
// whatever name the backend kept.
func fileLabel(note models.NoteRecord) string {
	if note.FileName != "" && strings.HasSuffix(note.FileName, ".pdf") {
		return note.FileName
	}
	if note.OriginalFileName != "" {
		return note.OriginalFileName
	}
	if note.FileName != "" {
		return note.FileName
	}
	return "N/A"
}
