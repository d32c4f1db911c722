package models

// NoteRecord is a note as returned by the backend list endpoints. It is
// read-only display data; the authoritative copy lives server-side.
type NoteRecord struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Subject          string `json:"subject"`
	Course           string `json:"course"`
	Semester         string `json:"semester"`
	Description      string `json:"description,omitempty"`
	UploaderName     string `json:"uploader_name,omitempty"`
	UserID           int    `json:"user_id"`
	DownloadCount    *int   `json:"download_count,omitempty"`
	FileName         string `json:"file_name,omitempty"`
	OriginalFileName string `json:"original_file_name,omitempty"`
	IsApproved       bool   `json:"is_approved"`
	UploadDate       string `json:"upload_date,omitempty"`
}

// Downloads returns the download counter, defaulting to zero when the
// backend omitted the field.
func (n NoteRecord) Downloads() int {
	if n.DownloadCount == nil {
		return 0
	}
	return *n.DownloadCount
}

// DownloadName is the filename offered to the browser on download:
// original name first, stored name second, then a neutral fallback.
func (n NoteRecord) DownloadName() string {
	if n.OriginalFileName != "" {
		return n.OriginalFileName
	}
	if n.FileName != "" {
		return n.FileName
	}
	return "note"
}

// PageResult is the pagination envelope returned by list endpoints.
type PageResult struct {
	Notes       []NoteRecord `json:"notes"`
	CurrentPage int          `json:"current_page"`
	Pages       int          `json:"pages"`
	Total       int          `json:"total"`
	PerPage     int          `json:"per_page,omitempty"`
}
