package render

import (
	"html/template"
	"strings"
)

// Options renders the replaceable tail of a filter select: one option per
// vocabulary value. The control's first ("any") option belongs to the page
// shell and is never replaced.
func Options(values []string) template.HTML {
	var sb strings.Builder
	for _, value := range values {
		escaped := template.HTMLEscapeString(value)
		sb.WriteString(`<option value="` + escaped + `">` + escaped + `</option>`)
	}
	return template.HTML(sb.String())
}
