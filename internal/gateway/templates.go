package gateway

import (
	"html/template"

	"github.com/campusnotes/notes-client/internal/models"
	"github.com/campusnotes/notes-client/internal/notify"
	"github.com/campusnotes/notes-client/internal/session"
)

// pageData feeds the shell template: the active view, the visibility
// projection, the session's painted containers, and the transient state.
type pageData struct {
	Active      models.ViewName
	Vis         session.Visibility
	Username    string
	Toasts      []notify.Toast
	Busy        bool
	UploadLabel string
	Search      string

	NotesGrid         template.HTML
	NotesPagination   template.HTML
	MyNotesGrid       template.HTML
	MyNotesPagination template.HTML
	AdminContent      template.HTML
	SubjectOptions    template.HTML
	CourseOptions     template.HTML
	SemesterOptions   template.HTML
}

var shellTmpl = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>NotesShare</title>
  <link rel="stylesheet" href="/static/styles.css">
</head>
<body>
<nav class="navbar">
  <a class="nav-link{{if eq .Active "home"}} active{{end}}" href="/">Home</a>
  <a class="nav-link{{if eq .Active "browse"}} active{{end}}" href="/browse">Browse</a>
  {{if .Vis.Auth}}
  <a class="nav-link{{if eq .Active "upload"}} active{{end}}" href="/upload">Upload</a>
  <a class="nav-link{{if eq .Active "my-notes"}} active{{end}}" href="/my-notes">My Notes</a>
  {{end}}
  {{if .Vis.Admin}}<a class="nav-link{{if eq .Active "admin"}} active{{end}}" href="/admin">Admin</a>{{end}}
  {{if .Vis.Anon}}
  <a class="nav-link{{if eq .Active "login"}} active{{end}}" href="/login">Login</a>
  <a class="nav-link{{if eq .Active "register"}} active{{end}}" href="/register">Register</a>
  {{end}}
  {{if .Vis.Auth}}
  <span class="nav-user">{{.Username}}</span>
  <form class="nav-logout" method="post" action="/logout"><button type="submit">Logout</button></form>
  {{end}}
</nav>

{{if .Busy}}<div id="loading" class="loading-overlay">Loading...</div>{{end}}

<div id="toast-container">
  {{range .Toasts}}<div class="toast {{.Level}}">{{.Message}}</div>{{end}}
</div>

<main>
{{if eq .Active "home"}}
<section class="page" id="home-page">
  <h1>Share and discover study notes</h1>
  <p>Browse approved notes from other students or upload your own.</p>
  <a class="btn btn-primary" href="/browse">Browse Notes</a>
</section>
{{end}}

{{if eq .Active "browse"}}
<section class="page" id="browse-page">
  <form class="filters" method="post" action="/browse/filters">
    <input id="search-input" type="text" name="search" placeholder="Search notes..." value="{{.Search}}">
    <select id="subject-filter" name="subject"><option value="">All Subjects</option>{{.SubjectOptions}}</select>
    <select id="course-filter" name="course"><option value="">All Courses</option>{{.CourseOptions}}</select>
    <select id="semester-filter" name="semester"><option value="">All Semesters</option>{{.SemesterOptions}}</select>
    <button class="btn" type="submit">Apply Filters</button>
  </form>
  <div id="notes-grid" class="notes-grid">{{.NotesGrid}}</div>
  <div id="pagination" class="pagination">{{.NotesPagination}}</div>
</section>
{{end}}

{{if eq .Active "upload"}}
<section class="page" id="upload-page">
  <form id="upload-form" method="post" action="/upload" enctype="multipart/form-data">
    <input type="text" name="title" placeholder="Title" required>
    <input type="text" name="subject" placeholder="Subject" required>
    <input type="text" name="course" placeholder="Course" required>
    <input type="text" name="semester" placeholder="Semester" required>
    <textarea name="description" placeholder="Description (optional)"></textarea>
    <label class="file-upload-text"><span>{{.UploadLabel}}</span>
      <input id="note-file" type="file" name="file" required>
    </label>
    <button class="btn btn-primary" type="submit">Upload</button>
  </form>
</section>
{{end}}

{{if eq .Active "my-notes"}}
<section class="page" id="my-notes-page">
  <div id="my-notes-grid" class="notes-grid">{{.MyNotesGrid}}</div>
  <div id="my-notes-pagination" class="pagination">{{.MyNotesPagination}}</div>
</section>
{{end}}

{{if eq .Active "admin"}}
<section class="page" id="admin-page">
  <div id="admin-content">{{.AdminContent}}</div>
</section>
{{end}}

{{if eq .Active "login"}}
<section class="page" id="login-page">
  <form id="login-form" method="post" action="/login">
    <input type="text" name="username" placeholder="Username" required>
    <input type="password" name="password" placeholder="Password" required>
    <button class="btn btn-primary" type="submit">Login</button>
  </form>
</section>
{{end}}

{{if eq .Active "register"}}
<section class="page" id="register-page">
  <form id="register-form" method="post" action="/register">
    <input type="text" name="username" placeholder="Username" required>
    <input type="email" name="email" placeholder="Email" required>
    <input type="password" name="password" placeholder="Password" required>
    <button class="btn btn-primary" type="submit">Register</button>
  </form>
</section>
{{end}}
</main>
</body>
</html>
`))
