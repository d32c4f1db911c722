package models

// ViewName identifies one of the mutually exclusive top-level screens.
type ViewName string

const (
	ViewHome     ViewName = "home"
	ViewBrowse   ViewName = "browse"
	ViewUpload   ViewName = "upload"
	ViewMyNotes  ViewName = "my-notes"
	ViewAdmin    ViewName = "admin"
	ViewLogin    ViewName = "login"
	ViewRegister ViewName = "register"
)

// KnownViews enumerates every view the router can activate.
var KnownViews = []ViewName{
	ViewHome,
	ViewBrowse,
	ViewUpload,
	ViewMyNotes,
	ViewAdmin,
	ViewLogin,
	ViewRegister,
}

// Known reports whether v is a recognised view name.
func (v ViewName) Known() bool {
	for _, known := range KnownViews {
		if v == known {
			return true
		}
	}
	return false
}
