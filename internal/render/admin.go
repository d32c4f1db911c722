package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/campusnotes/notes-client/internal/models"
)

var adminCardTmpl = template.Must(template.New("admin-card").Parse(`<div class="notes-grid">
{{range .}}<div class="note-card">
  <div class="note-title">{{.Title}}</div>
  <div class="note-meta">
    <span class="meta-subject">{{.Subject}}</span>
    <span class="meta-course">{{.Course}}</span>
    <span class="meta-semester">{{.Semester}}</span>
  </div>
  {{if .Description}}<div class="note-description">{{.Description}}</div>{{end}}
  <div class="note-meta">
    <span class="meta-uploader">Uploader: {{.Uploader}}</span>
    <span class="meta-uploaded">Uploaded: {{.Uploaded}}</span>
    <span class="meta-filetype">Type: {{.FileType}}</span>
    <span class="status-badge {{.BadgeClass}}">{{.BadgeLabel}}</span>
  </div>
  <div class="note-actions">
    {{if .ShowModeration}}<form method="post" action="{{.ApproveHref}}"><button class="btn btn-primary" type="submit">Approve</button></form>
    <form method="post" action="{{.RejectHref}}" onsubmit="return confirm('Are you sure you want to reject this note? This action cannot be undone.')"><input type="hidden" name="confirmed" value="1"><button class="btn btn-danger" type="submit">Reject</button></form>{{end}}
  </div>
</div>
{{end}}</div>`))

type adminCard struct {
	Title          string
	Subject        string
	Course         string
	Semester       string
	Description    string
	Uploader       string
	Uploaded       string
	FileType       string
	BadgeClass     string
	BadgeLabel     string
	ShowModeration bool
	ApproveHref    string
	RejectHref     string
}

// AdminNotes renders the moderation queue. Every card carries the status
// badge; approve/reject controls appear on pending notes only.
func AdminNotes(items []models.NoteRecord) template.HTML {
	if len(items) == 0 {
		return template.HTML(noNotesPlaceholder)
	}

	cards := make([]adminCard, 0, len(items))
	for _, note := range items {
		card := adminCard{
			Title:       note.Title,
			Subject:     note.Subject,
			Course:      note.Course,
			Semester:    note.Semester,
			Description: note.Description,
			Uploader:    uploaderLabel(note),
			Uploaded:    uploadedLabel(note),
			FileType:    fileTypeLabel(note),
		}
		if note.IsApproved {
			card.BadgeClass = "status-approved"
			card.BadgeLabel = "Approved"
		} else {
			card.BadgeClass = "status-pending"
			card.BadgeLabel = "Pending"
			card.ShowModeration = true
			card.ApproveHref = fmt.Sprintf("/admin/notes/%d/approve", note.ID)
			card.RejectHref = fmt.Sprintf("/admin/notes/%d/reject", note.ID)
		}
		cards = append(cards, card)
	}

	var sb strings.Builder
	if err := adminCardTmpl.Execute(&sb, cards); err != nil {
		return template.HTML(noNotesPlaceholder)
	}
	return template.HTML(sb.String())
}

func uploadedLabel(note models.NoteRecord) string {
	if note.UploadDate == "" {
		return "N/A"
	}
	return note.UploadDate
}

// fileTypeLabel is the uppercased file extension of the stored name.
func fileTypeLabel(note models.NoteRecord) string {
	if note.FileName == "" {
		return "N/A"
	}
	idx := strings.LastIndex(note.FileName, ".")
	if idx < 0 || idx == len(note.FileName)-1 {
		return "N/A"
	}
	return strings.ToUpper(note.FileName[idx+1:])
}
